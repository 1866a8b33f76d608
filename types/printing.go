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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{bound: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.bound {
		delete(p.bound, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
// Free type-variables are printed by id ('_0, '_1, ...); variables bound by a Scheme are named
// 'a, 'b, ... in quantifier order.
func TypeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

type typePrinter struct {
	bound map[int]string
	sb    strings.Builder
}

var _names [128]string
var _unboundNames [128]string

func init() {
	for i := range _names {
		_names[i] = varName(uint(i))
	}
	for i := range _unboundNames {
		_unboundNames[i] = "'_" + strconv.Itoa(i)
	}
}

func varName(i uint) string {
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(byte(97+i%26))
}

func getVarName(i uint) string {
	if i < uint(len(_names)) {
		return _names[i]
	}
	return varName(i)
}

func getUnboundVarName(id int) string {
	if id >= 0 && id < len(_unboundNames) {
		return _unboundNames[id]
	}
	return "'_" + strconv.Itoa(id)
}

func (p *typePrinter) nextName() string {
	return getVarName(uint(len(p.bound)))
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Int:
		p.sb.WriteString("int")

	case *Bool:
		p.sb.WriteString("bool")

	case *Var:
		if name, ok := p.bound[t.Id]; ok {
			p.sb.WriteString(name)
			return
		}
		p.sb.WriteString(getUnboundVarName(t.Id))

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Array:
		p.sb.WriteString("array[")
		typeString(p, false, t.Elem)
		p.sb.WriteByte(']')

	case *Record:
		p.sb.WriteByte('{')
		i := 0
		t.Fields.Range(func(label string, ft Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(label)
			p.sb.WriteString(" : ")
			typeString(p, false, ft)
			i++
			return true
		})
		p.sb.WriteByte('}')

	case *Scheme:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("forall")
		for _, id := range t.Vars {
			name, ok := p.bound[id]
			if !ok {
				name = p.nextName()
				p.bound[id] = name
			}
			p.sb.WriteByte(' ')
			p.sb.WriteString(name)
		}
		p.sb.WriteString(". ")
		typeString(p, false, t.Body)
		if simple {
			p.sb.WriteByte(')')
		}
	}
}
