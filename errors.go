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
	"strings"

	"github.com/wdamron/hm/types"
)

// UnboundVariableError is returned when a variable is not bound in the type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "Variable " + e.Name + " not found"
}

// InfiniteTypeError is returned when unification would bind a type-variable to a type which
// contains the same variable.
type InfiniteTypeError struct {
	Var  *types.Var
	Type types.Type
}

func (e *InfiniteTypeError) Error() string {
	return "Infinite type: " + types.TypeString(e.Var) + " occurs in " + types.TypeString(e.Type)
}

// UnificationMismatchError is returned when two types cannot be made equal.
type UnificationMismatchError struct {
	Left  types.Type
	Right types.Type
}

func (e *UnificationMismatchError) Error() string {
	return "Failed to unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}

// RecordFieldMismatchError is returned when two record types have different sets of labels.
// Labels are sorted.
type RecordFieldMismatchError struct {
	Expected []string
	Actual   []string
}

func (e *RecordFieldMismatchError) Error() string {
	return "Record labels {" + strings.Join(e.Expected, ", ") + "} do not match {" + strings.Join(e.Actual, ", ") + "}"
}

// DuplicateFieldError is returned when a record literal declares the same label more than once.
type DuplicateFieldError struct {
	Label string
}

func (e *DuplicateFieldError) Error() string {
	return "Duplicate label " + e.Label + " in record"
}
