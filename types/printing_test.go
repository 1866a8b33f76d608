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

package types

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		t    Type
		want string
	}{
		{IntType, "int"},
		{BoolType, "bool"},
		{NewVar(3), "'_3"},
		{NewVar(200), "'_200"},
		{arrow(IntType, arrow(BoolType, IntType)), "int -> bool -> int"},
		{arrow(arrow(IntType, BoolType), IntType), "(int -> bool) -> int"},
		{&Array{Elem: arrow(IntType, IntType)}, "array[int -> int]"},
		{NewRecord(map[string]Type{"b": BoolType, "a": &Array{Elem: NewVar(3)}}), "{a : array['_3], b : bool}"},
		{NewRecord(nil), "{}"},
		{&Scheme{Vars: []int{4, 7}, Body: arrow(NewVar(4), arrow(NewVar(7), NewVar(9)))}, "forall 'a 'b. 'a -> 'b -> '_9"},
		{arrow(&Scheme{Vars: []int{0}, Body: NewVar(0)}, IntType), "(forall 'a. 'a) -> int"},
	}
	for _, c := range cases {
		if got := TypeString(c.t); got != c.want {
			t.Fatalf("expected %s, found %s", c.want, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	ty := arrow(NewVar(5), arrow(NewVar(3), NewVar(5)))
	n := Normalize(ty)
	if !Equal(n, arrow(NewVar(0), arrow(NewVar(1), NewVar(0)))) {
		t.Fatalf("normalized: %s", TypeString(n))
	}
	// renaming-equivalent types normalize identically:
	other := arrow(NewVar(11), arrow(NewVar(12), NewVar(11)))
	if !Equal(Normalize(other), n) {
		t.Fatalf("expected %s to normalize like %s", TypeString(other), TypeString(ty))
	}
	// but types which differ in variable sharing do not:
	unshared := arrow(NewVar(11), arrow(NewVar(12), NewVar(13)))
	if Equal(Normalize(unshared), n) {
		t.Fatalf("expected %s to differ from %s", TypeString(unshared), TypeString(ty))
	}
}

func TestEqualRecordsIgnoreInsertionOrder(t *testing.T) {
	b1 := NewTypeMapBuilder()
	b1.Set("x", IntType)
	b1.Set("y", BoolType)
	b2 := NewTypeMapBuilder()
	b2.Set("y", BoolType)
	b2.Set("x", IntType)
	if !Equal(&Record{Fields: b1.Build()}, &Record{Fields: b2.Build()}) {
		t.Fatalf("expected equal records")
	}
	if Equal(NewRecord(map[string]Type{"x": IntType}), NewRecord(map[string]Type{"y": IntType})) {
		t.Fatalf("expected unequal records")
	}
	if Equal(arrow(IntType, IntType), &Array{Elem: IntType}) {
		t.Fatalf("expected unequal variants")
	}
}

func TestNewScheme(t *testing.T) {
	if ty := NewScheme(nil, IntType); ty != IntType {
		t.Fatalf("expected no vacuous scheme, found %s", TypeString(ty))
	}
	s, ok := NewScheme([]int{3, 1, 3}, arrow(NewVar(1), NewVar(3))).(*Scheme)
	if !ok || len(s.Vars) != 2 || s.Vars[0] != 1 || s.Vars[1] != 3 {
		t.Fatalf("expected sorted unique vars, found %v", s)
	}
	if !s.Bound(3) || s.Bound(2) {
		t.Fatalf("unexpected bound vars %v", s.Vars)
	}
	if MaxVarId(s) != 3 || MaxVarId(IntType) != -1 {
		t.Fatalf("unexpected max var id")
	}
}
