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

// Equal reports whether a and b are structurally identical expressions.
//
// Record literal fields are compared by label, independent of declaration order.
func Equal(a, b Expr) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	switch a := a.(type) {
	case *IntLit:
		bl, ok := b.(*IntLit)
		return ok && a.Value == bl.Value

	case *BoolLit:
		bl, ok := b.(*BoolLit)
		return ok && a.Value == bl.Value

	case *Var:
		bv, ok := b.(*Var)
		return ok && a.Name == bv.Name

	case *Func:
		bf, ok := b.(*Func)
		return ok && a.Param == bf.Param && Equal(a.Body, bf.Body)

	case *Call:
		bc, ok := b.(*Call)
		return ok && Equal(a.Func, bc.Func) && Equal(a.Arg, bc.Arg)

	case *Let:
		bl, ok := b.(*Let)
		return ok && a.Var == bl.Var && Equal(a.Value, bl.Value) && Equal(a.Body, bl.Body)

	case *ArrayLit:
		ba, ok := b.(*ArrayLit)
		if !ok || len(a.Elems) != len(ba.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], ba.Elems[i]) {
				return false
			}
		}
		return true

	case *RecordLit:
		br, ok := b.(*RecordLit)
		if !ok || len(a.Fields) != len(br.Fields) {
			return false
		}
		values := make(map[string]Expr, len(br.Fields))
		for _, f := range br.Fields {
			values[f.Label] = f.Value
		}
		if len(values) != len(br.Fields) {
			// duplicate labels; fall back to declaration order
			for i := range a.Fields {
				if a.Fields[i].Label != br.Fields[i].Label || !Equal(a.Fields[i].Value, br.Fields[i].Value) {
					return false
				}
			}
			return true
		}
		for _, f := range a.Fields {
			v, ok := values[f.Label]
			if !ok || !Equal(f.Value, v) {
				return false
			}
		}
		return true

	}
	return false
}
