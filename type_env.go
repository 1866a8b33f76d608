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
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/hm/types"
)

var emptyEnv = immutable.NewSortedMap(nil)

// TypeEnv is an immutable type-environment containing mappings from identifiers to declared
// types. A binding may be a monotype or a *types.Scheme.
//
// Extending a type-environment produces a new environment; the receiver is never modified, so a
// single environment may be shared across concurrent inference calls.
type TypeEnv struct {
	m *immutable.SortedMap
	// one past the highest type-variable id bound in the environment
	nextVarId int
}

// Create an empty type-environment.
func NewTypeEnv() TypeEnv { return TypeEnv{m: emptyEnv} }

// NextVarId returns the lowest type-variable id which does not occur in any binding.
func (e TypeEnv) NextVarId() int { return e.nextVarId }

// NewVar allocates a type-variable which does not occur in e. The returned environment reserves
// the variable's id.
func (e TypeEnv) NewVar() (TypeEnv, *types.Var) {
	tv := types.NewVar(e.nextVarId)
	e.nextVarId++
	return e, tv
}

// Get the number of bindings.
func (e TypeEnv) Len() int {
	if e.m == nil {
		return 0
	}
	return e.m.Len()
}

// Lookup the type for an identifier.
func (e TypeEnv) Lookup(name string) (types.Type, bool) {
	if e.m == nil {
		return nil, false
	}
	t, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Iterate over bindings in name order.
// If f returns false, iteration will be stopped.
func (e TypeEnv) Range(f func(string, types.Type) bool) {
	if e.m == nil {
		return
	}
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

// Extend returns a copy of e where name is bound to t. An existing binding for name is shadowed.
func (e TypeEnv) Extend(name string, t types.Type) TypeEnv {
	m := e.m
	if m == nil {
		m = emptyEnv
	}
	next := e.nextVarId
	if id := types.MaxVarId(t); id >= next {
		next = id + 1
	}
	return TypeEnv{m: m.Set(name, t), nextVarId: next}
}

// Declare a type for an identifier. All free type-variables in t will be generalized.
func (e TypeEnv) Declare(name string, t types.Type) TypeEnv {
	return e.Extend(name, types.NewScheme(types.SortedVars(types.FreeVars(t)), t))
}

// Declare a type for an identifier. Type-variables will not be generalized.
func (e TypeEnv) Assign(name string, t types.Type) TypeEnv { return e.Extend(name, t) }

// Remove the binding for an identifier.
func (e TypeEnv) Remove(name string) TypeEnv {
	if e.m == nil {
		return e
	}
	return TypeEnv{m: e.m.Delete(name), nextVarId: e.nextVarId}
}

// Apply a substitution to every binding in the environment.
func (e TypeEnv) Apply(s types.Subst) TypeEnv {
	if s.Empty() || e.Len() == 0 {
		return e
	}
	b := immutable.NewSortedMapBuilder(emptyEnv)
	next := e.nextVarId
	e.Range(func(name string, t types.Type) bool {
		t = types.Apply(t, s)
		if id := types.MaxVarId(t); id >= next {
			next = id + 1
		}
		b.Set(name, t)
		return true
	})
	return TypeEnv{m: b.Map(), nextVarId: next}
}

// FreeVars returns the union of free type-variables over all bindings.
func (e TypeEnv) FreeVars() *set.Set[int] {
	ftv := set.New[int](e.Len())
	e.Range(func(_ string, t types.Type) bool {
		ftv.InsertSet(types.FreeVars(t))
		return true
	})
	return ftv
}
