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

// Equal reports whether a and b are structurally identical.
//
// Record fields are compared by label, independent of order. Type-variables are compared by id;
// use Normalize on both sides to compare up to renaming.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Int:
		_, ok := b.(*Int)
		return ok

	case *Bool:
		_, ok := b.(*Bool)
		return ok

	case *Var:
		bv, ok := b.(*Var)
		return ok && a.Id == bv.Id

	case *Arrow:
		ba, ok := b.(*Arrow)
		return ok && Equal(a.Arg, ba.Arg) && Equal(a.Return, ba.Return)

	case *Array:
		ba, ok := b.(*Array)
		return ok && Equal(a.Elem, ba.Elem)

	case *Record:
		br, ok := b.(*Record)
		if !ok || a.Fields.Len() != br.Fields.Len() {
			return false
		}
		equal := true
		a.Fields.Range(func(label string, at Type) bool {
			bt, ok := br.Fields.Get(label)
			equal = ok && Equal(at, bt)
			return equal
		})
		return equal

	case *Scheme:
		bs, ok := b.(*Scheme)
		if !ok || len(a.Vars) != len(bs.Vars) {
			return false
		}
		for i := range a.Vars {
			if a.Vars[i] != bs.Vars[i] {
				return false
			}
		}
		return Equal(a.Body, bs.Body)

	case nil:
		return b == nil
	}
	return false
}

// Normalize renumbers type-variables in t from 0, in order of first occurrence.
//
// Two types are equal up to consistent renaming of variables when their normalized forms are Equal.
func Normalize(t Type) Type {
	ids := make(map[int]int, 8)
	return normalize(ids, t)
}

func normalize(ids map[int]int, t Type) Type {
	switch t := t.(type) {
	case *Var:
		return &Var{Id: renumber(ids, t.Id)}

	case *Arrow:
		arg := normalize(ids, t.Arg)
		return &Arrow{Arg: arg, Return: normalize(ids, t.Return)}

	case *Array:
		return &Array{Elem: normalize(ids, t.Elem)}

	case *Record:
		b := NewTypeMapBuilder()
		t.Fields.Range(func(label string, ft Type) bool {
			b.Set(label, normalize(ids, ft))
			return true
		})
		return &Record{Fields: b.Build()}

	case *Scheme:
		body := normalize(ids, t.Body)
		vars := make([]int, len(t.Vars))
		for i, v := range t.Vars {
			vars[i] = renumber(ids, v)
		}
		return &Scheme{Vars: sortedUnique(vars), Body: body}
	}
	return t
}

func renumber(ids map[int]int, id int) int {
	if n, ok := ids[id]; ok {
		return n
	}
	n := len(ids)
	ids[id] = n
	return n
}
