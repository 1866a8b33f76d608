// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package construct

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id)
}

// Integer type: `int`
func TInt() *types.Int {
	return types.IntType
}

// Boolean type: `bool`
func TBool() *types.Bool {
	return types.BoolType
}

// Function type: `int -> int`
func TArrow(arg, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg, Return: ret}
}

// Curried function type: `int -> int -> int`
func TArrowN(ret types.Type, args ...types.Type) types.Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &types.Arrow{Arg: args[i], Return: t}
	}
	return t
}

// Array type: `array[int]`
func TArray(elem types.Type) *types.Array {
	return &types.Array{Elem: elem}
}

// Record type: `{a : int, b : bool}`
func TRecord(fields ...TField) *types.Record {
	b := types.NewTypeMapBuilder()
	for _, f := range fields {
		b.Set(f.Label, f.Type)
	}
	return &types.Record{Fields: b.Build()}
}

// Paired label and type
type TField struct {
	Label string
	Type  types.Type
}

// Paired label and type
func Field(label string, t types.Type) TField {
	return TField{Label: label, Type: t}
}

// Polytype: `forall 'a. 'a -> 'a`. vars must be sorted and unique.
func TScheme(vars []int, body types.Type) *types.Scheme {
	return &types.Scheme{Vars: vars, Body: body}
}

// Expressions:

// Integer literal
func Int(value int64) *ast.IntLit {
	return &ast.IntLit{Value: value}
}

// Boolean literal
func Bool(value bool) *ast.BoolLit {
	return &ast.BoolLit{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f(x)`
func Call(f, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `f(x)(y)`
func CallN(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `fn (x) -> x`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Array literal: `[1, 2, 3]`
func Array(elems ...ast.Expr) *ast.ArrayLit {
	return &ast.ArrayLit{Elems: elems}
}

// Record literal: `{a = 1, b = 2}`
func Record(fields ...ast.LabelValue) *ast.RecordLit {
	return &ast.RecordLit{Fields: fields}
}

// Paired label and value
func LabelValue(label string, value ast.Expr) ast.LabelValue {
	return ast.LabelValue{Label: label, Value: value}
}
