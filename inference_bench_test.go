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

package hindley_test

import (
	"testing"

	. "github.com/wdamron/hindley"
	. "github.com/wdamron/hindley/construct"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

func BenchmarkLetPolymorphism(b *testing.B) {
	ctx := NewContext(nil)
	arena := ctx.Arena()
	A, B := TVar(arena), TVar(arena)
	env := types.NewTypeEnvBuilder().
		Declare("pair", TArrow2(arena, A, B, TConst(arena, "Pair", A, B))).
		Declare("true", TConst(arena, "Bool")).
		Build()

	id := Var("id")
	expr := Let("id", Func1("x", Var("x")),
		Let("compose", Func2("f", "g", Func1("x", Call(Var("f"), Call(Var("g"), Var("x"))))),
			Call(Var("pair"),
				Call(Call(Var("compose"), id, id), Int(3)),
				Call(id, Var("true")))))

	mark := arena.Len()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == types.NoTerm {
			b.Fatal(err)
		}
		arena.Truncate(mark)
	}
}

func BenchmarkSelfApplication(b *testing.B) {
	ctx := NewContext(nil)
	env := types.TypeEnv{}

	expr := Func1("f", Call(Var("f"), Var("f")))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := ctx.Infer(expr, env); err == nil {
			b.Fatal("expected failure")
		}
	}
}

func BenchmarkDeepCalls(b *testing.B) {
	ctx := NewContext(nil)
	arena := ctx.Arena()
	integer := TConst(arena, types.IntegerName)
	env := types.SingletonTypeEnv("add", TArrow2(arena, integer, integer, integer))

	var body ast.Expr = Var("x")
	for i := 0; i < 64; i++ {
		body = Call(Var("add"), body, Int(i))
	}
	expr := Func1("x", body)

	mark := arena.Len()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == types.NoTerm {
			b.Fatal(err)
		}
		arena.Truncate(mark)
	}
}
