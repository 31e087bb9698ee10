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
	"fmt"

	"github.com/wdamron/hindley/types"
)

// Unify merges a and b in place, so both denote the same type afterwards.
//
//  1. If a is an unbound type-variable, a is bound to b. Unifying a type-variable with
//     itself (the same handle) fails, as does binding a type-variable to a type which
//     contains it.
//  2. If b is an unbound type-variable, b is unified with a.
//  3. Otherwise both are constructor applications with equal names, arities, and
//     result presence; arguments are unified pairwise, then results.
//
// Unification is not rolled back when it fails part-way.
func (ctx *CommonContext) Unify(a, b types.Term) error {
	arena := ctx.Arena
	// Path compression:
	ra, rb := arena.Resolve(a), arena.Resolve(b)

	if arena.IsVariable(ra) {
		if a == b {
			return fmt.Errorf("%w: %s", types.ErrSelfUnification, types.TypeString(arena, a))
		}
		// Already aliased by an earlier binding:
		if ra == rb {
			return nil
		}
		// prevent cyclical types:
		if arena.OccursIn(ra, rb) {
			strs := types.TypeStrings(arena, ra, rb)
			return fmt.Errorf("%w: %s occurs in %s", types.ErrOccursCheck, strs[0], strs[1])
		}
		arena.Bind(ra, rb)
		return nil
	}
	if arena.IsVariable(rb) {
		return ctx.Unify(b, a)
	}

	// A constructor application is equal to itself:
	if ra == rb {
		return nil
	}

	argsA, argsB := arena.Args(ra), arena.Args(rb)
	resultA, hasResultA := arena.Result(ra)
	resultB, hasResultB := arena.Result(rb)
	if arena.Name(ra) != arena.Name(rb) || argsA.Len() != argsB.Len() || hasResultA != hasResultB {
		strs := types.TypeStrings(arena, ra, rb)
		return fmt.Errorf("%w: failed to unify %s with %s", types.ErrTypeMismatch, strs[0], strs[1])
	}
	for i := 0; i < argsA.Len(); i++ {
		if err := ctx.Unify(argsA.Get(i), argsB.Get(i)); err != nil {
			return err
		}
	}
	if hasResultA {
		return ctx.Unify(resultA, resultB)
	}
	return nil
}
