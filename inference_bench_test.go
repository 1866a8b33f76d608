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

package hm_test

import (
	"testing"

	. "github.com/wdamron/hm/construct"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func benchEnv() hm.TypeEnv {
	env := hm.NewTypeEnv()
	env = env.Assign("add", TArrowN(TInt(), TInt(), TInt()))
	env = env.Declare("if", TArrowN(TVar(0), TBool(), TVar(0), TVar(0)))
	env = env.Declare("pair", TArrowN(TRecord(Field("fst", TVar(0)), Field("snd", TVar(1))), TVar(0), TVar(1)))
	env = env.Assign("const", TScheme([]int{0, 1}, TArrowN(TVar(0), TVar(0), TVar(1))))
	return env
}

func TestConstructedProgram(t *testing.T) {
	env := benchEnv()
	expr := Let("id", Func("x", Var("x")),
		Let("twice", Func("f", Func("x", Call(Var("f"), Call(Var("f"), Var("x"))))),
			Record(
				LabelValue("n", CallN(Var("twice"), Func("x", CallN(Var("add"), Var("x"), Int(1))), Int(0))),
				LabelValue("b", CallN(Var("if"), Bool(true), Call(Var("id"), Bool(false)), Bool(true))),
				LabelValue("p", CallN(Var("pair"), Array(Int(1), Int(2)), Array())),
				LabelValue("fs", Array(Var("id"), Func("y", CallN(Var("add"), Var("y"), Var("y"))))))))

	exprString := ast.ExprString(expr)
	if exprString != "let id = fn (x) -> x in let twice = fn (f) -> fn (x) -> f(f(x)) in "+
		"{n = twice(fn (x) -> add(x)(1))(0), b = if(true)(id(false))(true), p = pair([1, 2])([]), fs = [id, fn (y) -> add(y)(y)]}" {
		t.Fatalf("expr: %s", exprString)
	}

	_, ty, err := hm.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	typeString := types.TypeString(types.Normalize(ty))
	if typeString != "{b : bool, fs : array[int -> int], n : int, p : {fst : array[int], snd : array['_0]}}" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestConstructedScheme(t *testing.T) {
	expr := Array(CallN(Var("const"), Int(1), Bool(true)), CallN(Var("const"), Int(2), Array()))
	_, ty, err := hm.Infer(expr, benchEnv())
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(ty); typeString != "array[int]" {
		t.Fatalf("type: %s", typeString)
	}
}

func BenchmarkLetPolymorphism(b *testing.B) {
	env := hm.NewTypeEnv()
	ctx := hm.NewContext()

	expr := Let("id", Func("x", Var("x")),
		Record(
			LabelValue("a", Call(Var("id"), Int(1))),
			LabelValue("b", Call(Var("id"), Bool(true))),
			LabelValue("c", Call(Var("id"), Var("id")))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNestedCalls(b *testing.B) {
	env := benchEnv()
	ctx := hm.NewContext()

	var body ast.Expr = Var("x")
	for i := 0; i < 32; i++ {
		body = CallN(Var("add"), body, Int(int64(i)))
	}
	expr := Func("x", Array(body, Var("x")))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}
