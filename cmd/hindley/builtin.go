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

package main

import (
	. "github.com/wdamron/hindley/construct"
	"github.com/wdamron/hindley/internal/astutil"
	"github.com/wdamron/hindley/types"
)

// builtin returns the programs inferred when no file is given.
func builtin() source {
	programs := []astutil.Program{
		{Name: "const-five", Expr: Func1("f", Int(5))},
		{Name: "apply-identity", Expr: Let("five", Int(5),
			Let("g", Func1("f", Var("f")),
				Call(Var("g"), Var("five"))))},
		{Name: "polymorphic-identity", Expr: Let("id", Func1("x", Var("x")),
			Call(Var("pair"), Call(Var("id"), Int(3)), Call(Var("id"), Var("true"))))},
		{Name: "compose", Expr: Func2("f", "g", Func1("x", Call(Var("f"), Call(Var("g"), Var("x")))))},
		{Name: "self-application", Expr: Func1("f", Call(Var("f"), Var("f")))},
	}
	return source{programs: programs, env: builtinEnv}
}

// pair : ('a, 'b) -> Pair['a, 'b]
// true : Bool
func builtinEnv(arena *types.Arena) (types.TypeEnv, error) {
	a, b := TVar(arena), TVar(arena)
	return types.NewTypeEnvBuilder().
		Declare("pair", TArrow2(arena, a, b, TConst(arena, "Pair", a, b))).
		Declare("true", TConst(arena, "Bool")).
		Build(), nil
}
