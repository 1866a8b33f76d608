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

package ast

// Expr is the base for all expressions. The set of expressions is closed.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*ArrayLit)(nil)
	_ Expr = (*RecordLit)(nil)
)

// IsNil reports whether e is nil or a nil pointer to an expression.
func IsNil(e Expr) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *IntLit:
		return e == nil
	case *BoolLit:
		return e == nil
	case *Var:
		return e == nil
	case *Func:
		return e == nil
	case *Call:
		return e == nil
	case *Let:
		return e == nil
	case *ArrayLit:
		return e == nil
	case *RecordLit:
		return e == nil
	}
	return false
}

func (*IntLit) isExpr()    {}
func (*BoolLit) isExpr()   {}
func (*Var) isExpr()       {}
func (*Func) isExpr()      {}
func (*Call) isExpr()      {}
func (*Let) isExpr()       {}
func (*ArrayLit) isExpr()  {}
func (*RecordLit) isExpr() {}

// Integer literal: `1`
type IntLit struct {
	Value int64
}

// "IntLit"
func (e *IntLit) ExprName() string { return "IntLit" }

// Boolean literal: `true`
type BoolLit struct {
	Value bool
}

// "BoolLit"
func (e *BoolLit) ExprName() string { return "BoolLit" }

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Abstraction: `fn (x) -> x`
type Func struct {
	Param string
	Body  Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Application: `f(x)`
type Call struct {
	Func Expr
	Arg  Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Let-binding: `let a = 1 in e`
//
// The bound value is generalized before the body is checked. Bindings are not recursive.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Array literal: `[1, 2, 3]`
type ArrayLit struct {
	Elems []Expr
}

// "ArrayLit"
func (e *ArrayLit) ExprName() string { return "ArrayLit" }

// Record literal: `{a = 1, b = true}`
//
// Fields are checked in declaration order.
type RecordLit struct {
	Fields []LabelValue
}

// "RecordLit"
func (e *RecordLit) ExprName() string { return "RecordLit" }

// Paired label and value
type LabelValue struct {
	Label string
	Value Expr
}
