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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hm/construct"
	"github.com/wdamron/hm/types"
)

func TestUnifyReflexive(t *testing.T) {
	ts := []types.Type{
		types.IntType,
		types.BoolType,
		types.NewVar(0),
		construct.TArrow(types.NewVar(0), types.NewVar(0)),
		construct.TArray(construct.TArrow(types.IntType, types.NewVar(1))),
		types.NewRecord(map[string]types.Type{"a": types.NewVar(2), "b": types.BoolType}),
	}
	for _, ty := range ts {
		s, err := Unify(ty, ty)
		require.NoError(t, err, types.TypeString(ty))
		assert.True(t, s.Empty(), types.TypeString(ty))
	}
}

func TestUnifyVars(t *testing.T) {
	s, err := Unify(types.NewVar(0), types.NewVar(1))
	require.NoError(t, err)
	assert.Equal(t, "{'_0 := '_1}", s.String())

	s, err = Unify(types.IntType, types.NewVar(4))
	require.NoError(t, err)
	assert.Equal(t, "{'_4 := int}", s.String())
}

func TestUnifyArrow(t *testing.T) {
	s, err := Unify(construct.TArrow(types.NewVar(0), types.IntType), construct.TArrow(types.BoolType, types.NewVar(1)))
	require.NoError(t, err)
	assert.Equal(t, "{'_0 := bool, '_1 := int}", s.String())

	// the result types are unified under the substitution from the argument types:
	a := construct.TArrow(types.NewVar(0), types.NewVar(0))
	b := construct.TArrow(types.IntType, types.NewVar(1))
	s, err = Unify(a, b)
	require.NoError(t, err)
	assert.Equal(t, "{'_0 := int, '_1 := int}", s.String())
	assert.True(t, types.Equal(types.Apply(a, s), types.Apply(b, s)))
}

func TestUnifyOccursCheck(t *testing.T) {
	_, err := Unify(types.NewVar(0), construct.TArrow(types.NewVar(0), types.IntType))
	var infinite *InfiniteTypeError
	require.True(t, errors.As(err, &infinite), "expected infinite type error, found %v", err)
	assert.Equal(t, 0, infinite.Var.Id)
	assert.Equal(t, "'_0 -> int", types.TypeString(infinite.Type))

	_, err = Unify(construct.TArray(types.NewVar(1)), types.NewVar(1))
	require.True(t, errors.As(err, &infinite), "expected infinite type error, found %v", err)
}

func TestUnifyMismatch(t *testing.T) {
	_, err := Unify(types.IntType, types.BoolType)
	var mismatch *UnificationMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, types.Equal(types.IntType, mismatch.Left))
	assert.True(t, types.Equal(types.BoolType, mismatch.Right))
	assert.Equal(t, "Failed to unify int with bool", err.Error())

	_, err = Unify(construct.TArrow(types.IntType, types.IntType), construct.TArray(types.IntType))
	require.True(t, errors.As(err, &mismatch))

	_, err = Unify(construct.TArray(types.IntType), construct.TArray(types.BoolType))
	require.True(t, errors.As(err, &mismatch))
}

func TestUnifyRejectsSchemes(t *testing.T) {
	scheme := &types.Scheme{Vars: []int{0}, Body: construct.TArrow(types.NewVar(0), types.NewVar(0))}
	_, err := Unify(types.NewVar(1), scheme)
	var mismatch *UnificationMismatchError
	require.True(t, errors.As(err, &mismatch), "expected mismatch, found %v", err)
}

func TestUnifyRecords(t *testing.T) {
	a := types.NewRecord(map[string]types.Type{"a": types.NewVar(0), "b": types.NewVar(0)})
	b := types.NewRecord(map[string]types.Type{"a": types.IntType, "b": types.NewVar(1)})
	s, err := Unify(a, b)
	require.NoError(t, err)
	assert.Equal(t, "{'_0 := int, '_1 := int}", s.String())

	_, err = Unify(
		types.NewRecord(map[string]types.Type{"a": types.NewVar(0), "b": types.NewVar(0)}),
		types.NewRecord(map[string]types.Type{"a": types.IntType, "b": types.BoolType}))
	var mismatch *UnificationMismatchError
	require.True(t, errors.As(err, &mismatch), "expected mismatch, found %v", err)
}

func TestUnifyRecordFieldMismatch(t *testing.T) {
	_, err := Unify(
		types.NewRecord(map[string]types.Type{"x": types.IntType}),
		types.NewRecord(map[string]types.Type{"y": types.IntType}))
	var fields *RecordFieldMismatchError
	require.True(t, errors.As(err, &fields), "expected field mismatch, found %v", err)
	assert.Equal(t, []string{"x"}, fields.Expected)
	assert.Equal(t, []string{"y"}, fields.Actual)

	// no width subtyping:
	_, err = Unify(
		types.NewRecord(map[string]types.Type{"x": types.IntType}),
		types.NewRecord(map[string]types.Type{"x": types.IntType, "y": types.IntType}))
	require.True(t, errors.As(err, &fields), "expected field mismatch, found %v", err)
}
