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

package hm

import (
	"slices"

	"github.com/wdamron/hm/types"
)

// Unify computes a substitution which makes a and b structurally equal.
//
// Schemes must be instantiated before unification; a bare *types.Scheme only unifies with an
// identical scheme.
func Unify(a, b types.Type) (types.Subst, error) {
	if types.Equal(a, b) {
		return types.EmptySubst(), nil
	}
	_, aScheme := a.(*types.Scheme)
	_, bScheme := b.(*types.Scheme)
	if aScheme || bScheme {
		return types.EmptySubst(), &UnificationMismatchError{a, b}
	}
	if tv, ok := a.(*types.Var); ok {
		return bindVar(tv, b)
	}
	if tv, ok := b.(*types.Var); ok {
		return bindVar(tv, a)
	}

	switch a := a.(type) {
	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		s1, err := Unify(a.Arg, b.Arg)
		if err != nil {
			return s1, err
		}
		s2, err := Unify(types.Apply(a.Return, s1), types.Apply(b.Return, s1))
		if err != nil {
			return s2, err
		}
		return types.Compose(s2, s1), nil

	case *types.Array:
		b, ok := b.(*types.Array)
		if !ok {
			break
		}
		return Unify(a.Elem, b.Elem)

	case *types.Record:
		b, ok := b.(*types.Record)
		if !ok {
			break
		}
		return unifyRecords(a, b)
	}

	return types.EmptySubst(), &UnificationMismatchError{a, b}
}

func bindVar(tv *types.Var, t types.Type) (types.Subst, error) {
	if types.Occurs(tv.Id, t) {
		return types.EmptySubst(), &InfiniteTypeError{tv, t}
	}
	return types.SingletonSubst(tv.Id, t), nil
}

// Fields are unified in label order; each field is unified under the substitution produced by
// the preceding fields.
func unifyRecords(a, b *types.Record) (types.Subst, error) {
	aLabels, bLabels := a.Labels(), b.Labels()
	if !slices.Equal(aLabels, bLabels) {
		return types.EmptySubst(), &RecordFieldMismatchError{aLabels, bLabels}
	}
	s := types.EmptySubst()
	for _, label := range aLabels {
		at, _ := a.Fields.Get(label)
		bt, _ := b.Fields.Get(label)
		si, err := Unify(types.Apply(at, s), types.Apply(bt, s))
		if err != nil {
			return si, err
		}
		s = types.Compose(si, s)
	}
	return s, nil
}

func (ti *InferenceContext) unify(a, b types.Type) (types.Subst, error) {
	s, err := Unify(a, b)
	if ti.logger == nil {
		return s, err
	}
	if err != nil {
		ti.debug("unify failed", "left", types.TypeString(a), "right", types.TypeString(b), "err", err)
		return s, err
	}
	ti.debug("unify", "left", types.TypeString(a), "right", types.TypeString(b), "subst", s.String())
	return s, nil
}
