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
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap(nil)

// Subst is an immutable set of simultaneous replacements from type-variable ids to types.
type Subst struct {
	m *immutable.SortedMap
}

func EmptySubst() Subst { return Subst{emptySubstMap} }

// Create a substitution with a single replacement.
func SingletonSubst(id int, t Type) Subst {
	return Subst{emptySubstMap.Set(id, t)}
}

// Create a substitution from an unordered map.
func NewSubst(m map[int]Type) Subst {
	b := immutable.NewSortedMapBuilder(emptySubstMap)
	for id, t := range m {
		b.Set(id, t)
	}
	return Subst{b.Map()}
}

func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

func (s Subst) Empty() bool { return s.Len() == 0 }

// Get the replacement for a type-variable id.
func (s Subst) Get(id int) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over replacements in ascending id order.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(int, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Without returns a copy of s excluding the given ids.
func (s Subst) Without(ids ...int) Subst {
	if s.Empty() {
		return s
	}
	m := s.m
	for _, id := range ids {
		if _, ok := m.Get(id); ok {
			m = m.Delete(id)
		}
	}
	return Subst{m}
}

// Equal reports whether a and b contain the same replacements.
func (s Subst) Equal(other Subst) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.Range(func(id int, t Type) bool {
		u, ok := other.Get(id)
		equal = ok && Equal(t, u)
		return equal
	})
	return equal
}

func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(id int, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeString(&Var{Id: id}))
		sb.WriteString(" := ")
		sb.WriteString(TypeString(t))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// Apply rewrites every free type-variable in t which is replaced by s.
//
// Variables bound by a Scheme are excluded from s before the scheme body is rewritten.
func Apply(t Type, s Subst) Type {
	if s.Empty() {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if u, ok := s.Get(t.Id); ok {
			return u
		}
		return t

	case *Arrow:
		return &Arrow{Arg: Apply(t.Arg, s), Return: Apply(t.Return, s)}

	case *Array:
		return &Array{Elem: Apply(t.Elem, s)}

	case *Record:
		return &Record{Fields: t.Fields.Map(func(ft Type) Type { return Apply(ft, s) })}

	case *Scheme:
		return &Scheme{Vars: t.Vars, Body: Apply(t.Body, s.Without(t.Vars...))}

	case *Int, *Bool:
		return t
	}
	panic("unexpected type " + t.TypeName())
}

// ApplyList applies s to each type in ts.
func ApplyList(ts []Type, s Subst) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Apply(t, s)
	}
	return out
}

// Compose returns the substitution which applies s2, then s1.
//
// Each replacement in s2 is rewritten by s1, then the replacements in s1 are added; s1 takes
// priority for ids present in both.
func Compose(s1, s2 Subst) Subst {
	if s2.Empty() {
		return s1
	}
	if s1.Empty() {
		return s2
	}
	b := immutable.NewSortedMapBuilder(emptySubstMap)
	s2.Range(func(id int, t Type) bool {
		b.Set(id, Apply(t, s1))
		return true
	})
	s1.Range(func(id int, t Type) bool {
		b.Set(id, t)
		return true
	})
	return Subst{b.Map()}
}
