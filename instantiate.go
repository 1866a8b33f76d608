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
	"github.com/wdamron/hm/types"
)

// Instantiate replaces the bound type-variables of a scheme with fresh type-variables.
//
// Each use of a let-bound name is instantiated separately, so uses may specialize independently.
func (ti *InferenceContext) Instantiate(scheme *types.Scheme) types.Type {
	fresh := ti.varTracker.NewList(len(scheme.Vars))
	m := make(map[int]types.Type, len(scheme.Vars))
	for i, id := range scheme.Vars {
		m[id] = fresh[i]
	}
	t := types.Apply(scheme.Body, types.NewSubst(m))
	if ti.logger != nil {
		ti.debug("instantiate", "scheme", types.TypeString(scheme), "type", types.TypeString(t))
	}
	return t
}
