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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyMap}

// TypeMap contains immutable mappings from labels to types. Entries are sorted by label.
type TypeMap struct {
	m *immutable.SortedMap
}

// Create a TypeMap with a single entry.
func SingletonTypeMap(label string, t Type) TypeMap {
	return TypeMap{emptyMap.Set(label, t)}
}

// Create a TypeMap from an unordered map.
func NewFlatTypeMap(m map[string]Type) TypeMap {
	b := NewTypeMapBuilder()
	for name, t := range m {
		b.Set(name, t)
	}
	return b.Build()
}

// Get the number of entries in the map.
func (m TypeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type for a label.
func (m TypeMap) Get(label string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the map, in label order.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Convert the map to a builder for modification, without mutating the existing map.
//
// Entries are copied into a builder over the empty map, so nodes of m are never shared with it.
func (m TypeMap) Builder() TypeMapBuilder {
	b := NewTypeMapBuilder()
	m.Range(func(label string, t Type) bool {
		b.Set(label, t)
		return true
	})
	return b
}

// Map every entry through f, producing a new map with the same labels.
func (m TypeMap) Map(f func(Type) Type) TypeMap {
	if m.Len() == 0 {
		return m
	}
	b := NewTypeMapBuilder()
	m.Range(func(label string, t Type) bool {
		b.Set(label, f(t))
		return true
	})
	return b.Build()
}

// TypeMapBuilder enables in-place updates of a map before finalization.
type TypeMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTypeMapBuilder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b TypeMapBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Set the type for the given label in the builder.
func (b TypeMapBuilder) Set(label string, t Type) TypeMapBuilder {
	b.b.Set(label, t)
	return b
}

// Delete the given label and corresponding type from the builder.
func (b TypeMapBuilder) Delete(label string) TypeMapBuilder {
	b.b.Delete(label)
	return b
}

// Finalize the builder into an immutable map.
func (b TypeMapBuilder) Build() TypeMap {
	if b.b == nil {
		return EmptyTypeMap
	}
	return TypeMap{b.b.Map()}
}
