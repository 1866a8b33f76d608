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

// hm provides Hindley-Milner type inference (Algorithm W) for a small expression language with
// integers, booleans, functions, let-polymorphism, arrays and closed records.
//
// Inference produces the most general type of an expression together with the substitution
// which makes it consistent. Substitutions are immutable values; the only mutable state is the
// fresh type-variable counter owned by an InferenceContext.
//
// Links:
//
// * Principal type-schemes for functional programs (Damas, Milner, 1982): https://doi.org/10.1145/582153.582176
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package hm

import (
	"errors"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// ErrEmptyExpr is returned when inference is requested for a nil expression.
var ErrEmptyExpr = errors.New("Empty expression")

// Infer the type of expr within env, using a fresh inference context.
func Infer(expr ast.Expr, env TypeEnv) (types.Subst, types.Type, error) {
	return NewContext().Infer(expr, env)
}

// Infer the type of expr within env. The returned substitution records everything learned about
// type-variables during inference; the returned type has the substitution applied.
//
// Fresh type-variables are numbered from env.NextVarId(), so they never collide with
// type-variables already bound in env.
func (ti *InferenceContext) Infer(expr ast.Expr, env TypeEnv) (types.Subst, types.Type, error) {
	ti.reset(env.NextVarId())
	ti.needsReset = true
	if ast.IsNil(expr) {
		ti.err = ErrEmptyExpr
		return types.EmptySubst(), nil, ErrEmptyExpr
	}
	s, t, err := ti.infer(env, expr)
	if err != nil {
		return types.EmptySubst(), nil, err
	}
	if ti.logger != nil {
		ti.debug("inferred", "expr", ast.ExprString(expr), "type", types.TypeString(t), "vars", ti.varTracker.Count())
	}
	return s, t, nil
}
