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

// Type is the base interface for all types. The set of types is closed.
type Type interface {
	TypeName() string
	isType()
}

var (
	_ Type = (*Int)(nil)
	_ Type = (*Bool)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Array)(nil)
	_ Type = (*Record)(nil)
	_ Type = (*Scheme)(nil)
)

func (t *Int) TypeName() string    { return "Int" }
func (t *Bool) TypeName() string   { return "Bool" }
func (t *Var) TypeName() string    { return "Var" }
func (t *Arrow) TypeName() string  { return "Arrow" }
func (t *Array) TypeName() string  { return "Array" }
func (t *Record) TypeName() string { return "Record" }
func (t *Scheme) TypeName() string { return "Scheme" }

func (*Int) isType()    {}
func (*Bool) isType()   {}
func (*Var) isType()    {}
func (*Arrow) isType()  {}
func (*Array) isType()  {}
func (*Record) isType() {}
func (*Scheme) isType() {}

// Integer type: `int`
type Int struct{}

// Boolean type: `bool`
type Bool struct{}

var (
	IntType  = &Int{}
	BoolType = &Bool{}
)

// Type variable. Ids are issued by a single counter per inference run.
type Var struct {
	Id int
}

func NewVar(id int) *Var { return &Var{Id: id} }

// Function type: `int -> int`
type Arrow struct {
	Arg    Type
	Return Type
}

// Array type: `array[int]`
type Array struct {
	Elem Type
}

// Record type: `{a : int, b : bool}`
//
// Field sets are exact; there are no row variables.
type Record struct {
	Fields TypeMap
}

// Polytype: `forall 'a. 'a -> 'a`
//
// Vars are sorted and unique. A Scheme must be instantiated before it is unified.
type Scheme struct {
	Vars []int
	Body Type
}

// Create a record type from a label→type mapping.
func NewRecord(fields map[string]Type) *Record {
	return &Record{Fields: NewFlatTypeMap(fields)}
}

// Create a scheme quantified over vars. If vars is empty, body is returned unchanged.
func NewScheme(vars []int, body Type) Type {
	if len(vars) == 0 {
		return body
	}
	return &Scheme{Vars: sortedUnique(vars), Body: body}
}

// Bound reports whether id is quantified by s.
func (s *Scheme) Bound(id int) bool {
	for _, v := range s.Vars {
		if v == id {
			return true
		}
	}
	return false
}

// Labels returns the record's field names in sorted order.
func (t *Record) Labels() []string {
	labels := make([]string, 0, t.Fields.Len())
	t.Fields.Range(func(label string, _ Type) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// MaxVarId returns the highest type-variable id occurring anywhere in t (free or bound), or -1.
func MaxVarId(t Type) int {
	highest := -1
	var walk func(Type)
	walk = func(t Type) {
		switch t := t.(type) {
		case *Var:
			if t.Id > highest {
				highest = t.Id
			}
		case *Arrow:
			walk(t.Arg)
			walk(t.Return)
		case *Array:
			walk(t.Elem)
		case *Record:
			t.Fields.Range(func(_ string, ft Type) bool {
				walk(ft)
				return true
			})
		case *Scheme:
			for _, v := range t.Vars {
				if v > highest {
					highest = v
				}
			}
			walk(t.Body)
		}
	}
	walk(t)
	return highest
}
