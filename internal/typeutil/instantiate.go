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

package typeutil

import (
	"github.com/wdamron/hindley/types"
)

// Instantiate returns a fresh copy of the scheme t. Type-variables which occur in the
// non-generic set are shared with t; every other type-variable is replaced by a fresh
// type-variable, once per call, so sharing within t is preserved in the copy.
func (ctx *CommonContext) Instantiate(t types.Term, nonGeneric types.VarSet) types.Term {
	if ctx.InstLookup == nil {
		ctx.InstLookup = make(map[types.Term]types.Term, 16)
	}
	t = ctx.visitInstantiate(t, nonGeneric)
	ctx.ClearInstantiationLookup()
	return t
}

func (ctx *CommonContext) visitInstantiate(t types.Term, nonGeneric types.VarSet) types.Term {
	arena := ctx.Arena
	// Path compression:
	t = arena.Resolve(t)

	if arena.IsVariable(t) {
		// Non-generic type-variables are shared:
		if arena.OccursInSet(t, nonGeneric) {
			return t
		}
		if tv, ok := ctx.InstLookup[t]; ok {
			return tv
		}
		tv := arena.NewVar()
		ctx.InstLookup[t] = tv
		return tv
	}

	name, args := arena.Name(t), arena.Args(t)
	lb := types.NewTermListBuilder()
	args.Range(func(_ int, arg types.Term) bool {
		lb.Append(ctx.visitInstantiate(arg, nonGeneric))
		return true
	})
	result := types.NoTerm
	if r, ok := arena.Result(t); ok {
		result = ctx.visitInstantiate(r, nonGeneric)
	}
	return arena.NewApp(name, lb.Build(), result)
}
