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
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// FreeVars returns the ids of type-variables in t which are not bound by an enclosing Scheme.
func FreeVars(t Type) *set.Set[int] {
	ftv := set.New[int](4)
	collectFreeVars(ftv, t)
	return ftv
}

// FreeVarsList returns the union of free type-variables over ts.
func FreeVarsList(ts []Type) *set.Set[int] {
	ftv := set.New[int](4)
	for _, t := range ts {
		collectFreeVars(ftv, t)
	}
	return ftv
}

// Occurs reports whether the type-variable id occurs free in t.
func Occurs(id int, t Type) bool {
	return FreeVars(t).Contains(id)
}

// SortedVars returns the members of vars in ascending order.
func SortedVars(vars *set.Set[int]) []int {
	ids := vars.Slice()
	slices.Sort(ids)
	return ids
}

func collectFreeVars(ftv *set.Set[int], t Type) {
	switch t := t.(type) {
	case *Var:
		ftv.Insert(t.Id)

	case *Arrow:
		collectFreeVars(ftv, t.Arg)
		collectFreeVars(ftv, t.Return)

	case *Array:
		collectFreeVars(ftv, t.Elem)

	case *Record:
		t.Fields.Range(func(_ string, ft Type) bool {
			collectFreeVars(ftv, ft)
			return true
		})

	case *Scheme:
		body := FreeVars(t.Body)
		for _, id := range t.Vars {
			body.Remove(id)
		}
		ftv.InsertSet(body)

	case *Int, *Bool:
	}
}

func sortedUnique(ids []int) []int {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
