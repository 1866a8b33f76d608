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
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func (ti *InferenceContext) infer(env TypeEnv, e ast.Expr) (types.Subst, types.Type, error) {
	if ast.IsNil(e) {
		return types.EmptySubst(), nil, ti.fail(e, ErrEmptyExpr)
	}
	switch e := e.(type) {
	case *ast.IntLit:
		return types.EmptySubst(), types.IntType, nil

	case *ast.BoolLit:
		return types.EmptySubst(), types.BoolType, nil

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return types.EmptySubst(), nil, ti.fail(e, &UnboundVariableError{e.Name})
		}
		if scheme, ok := t.(*types.Scheme); ok {
			return types.EmptySubst(), ti.Instantiate(scheme), nil
		}
		return types.EmptySubst(), t, nil

	case *ast.Func:
		param := ti.FreshVar()
		s, body, err := ti.infer(env.Extend(e.Param, param), e.Body)
		if err != nil {
			return s, nil, err
		}
		// inferring the body may have constrained the parameter:
		return s, &types.Arrow{Arg: types.Apply(param, s), Return: body}, nil

	case *ast.Call:
		s1, fn, err := ti.infer(env, e.Func)
		if err != nil {
			return s1, nil, err
		}
		// the argument is inferred in the environment narrowed by the function:
		s2, arg, err := ti.infer(env.Apply(s1), e.Arg)
		if err != nil {
			return s2, nil, err
		}
		ret := ti.FreshVar()
		s3, err := ti.unify(types.Apply(fn, s2), &types.Arrow{Arg: arg, Return: ret})
		if err != nil {
			return s3, nil, ti.fail(e, err)
		}
		return types.Compose(s3, types.Compose(s2, s1)), types.Apply(ret, s3), nil

	case *ast.Let:
		s1, value, err := ti.infer(env, e.Value)
		if err != nil {
			return s1, nil, err
		}
		env1 := env.Apply(s1)
		scheme := ti.generalize(env1, value)
		s2, body, err := ti.infer(env1.Extend(e.Var, scheme), e.Body)
		if err != nil {
			return s2, nil, err
		}
		return types.Compose(s2, s1), body, nil

	case *ast.ArrayLit:
		if len(e.Elems) == 0 {
			return types.EmptySubst(), &types.Array{Elem: ti.FreshVar()}, nil
		}
		s, elem, err := ti.infer(env, e.Elems[0])
		if err != nil {
			return s, nil, err
		}
		for _, next := range e.Elems[1:] {
			sn, t, err := ti.infer(env.Apply(s), next)
			if err != nil {
				return sn, nil, err
			}
			elem = types.Apply(elem, sn)
			su, err := ti.unify(elem, t)
			if err != nil {
				return su, nil, ti.fail(e, err)
			}
			s = types.Compose(su, types.Compose(sn, s))
			elem = types.Apply(elem, su)
		}
		return s, &types.Array{Elem: elem}, nil

	case *ast.RecordLit:
		s := types.EmptySubst()
		fields := make([]types.Type, len(e.Fields))
		seen := make(map[string]struct{}, len(e.Fields))
		for i, field := range e.Fields {
			if _, dup := seen[field.Label]; dup {
				return s, nil, ti.fail(e, &DuplicateFieldError{field.Label})
			}
			seen[field.Label] = struct{}{}
			si, t, err := ti.infer(env.Apply(s), field.Value)
			if err != nil {
				return si, nil, err
			}
			s = types.Compose(si, s)
			fields[i] = t
		}
		b := types.NewTypeMapBuilder()
		for i, field := range e.Fields {
			b.Set(field.Label, types.Apply(fields[i], s))
		}
		return s, &types.Record{Fields: b.Build()}, nil
	}
	panic("unknown expression type: " + e.ExprName())
}
