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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hindley/types"
)

func newContext() *CommonContext {
	ctx := &CommonContext{}
	ctx.Init(types.NewArena())
	return ctx
}

func TestUnifyBindsVariable(t *testing.T) {
	ctx := newContext()
	a := ctx.Arena
	v := a.NewVar()
	integer := a.NewConst(types.IntegerName)

	require.NoError(t, ctx.Unify(v, integer))
	assert.Equal(t, integer, a.Resolve(v))

	// Constructor on the left, variable on the right:
	w := a.NewVar()
	require.NoError(t, ctx.Unify(integer, w))
	assert.Equal(t, integer, a.Resolve(w))
}

func TestUnifySelf(t *testing.T) {
	ctx := newContext()
	a := ctx.Arena
	v := a.NewVar()

	err := ctx.Unify(v, v)
	assert.ErrorIs(t, err, types.ErrSelfUnification)
	assert.True(t, a.IsVariable(v))

	// Distinct handles which already resolve to one type-variable:
	w := a.NewVar()
	require.NoError(t, ctx.Unify(v, w))
	require.NoError(t, ctx.Unify(v, w))
	require.NoError(t, ctx.Unify(w, v))

	// A constructor is equal to itself:
	integer := a.NewConst(types.IntegerName)
	require.NoError(t, ctx.Unify(integer, integer))
}

func TestUnifyOccursCheck(t *testing.T) {
	ctx := newContext()
	a := ctx.Arena
	v := a.NewVar()

	err := ctx.Unify(v, a.NewConst("List", v))
	assert.ErrorIs(t, err, types.ErrOccursCheck)
	assert.True(t, a.IsVariable(v))

	// Through the result of a function type:
	err = ctx.Unify(a.NewFunc([]types.Term{a.NewConst(types.IntegerName)}, v), v)
	assert.ErrorIs(t, err, types.ErrOccursCheck)
	assert.EqualError(t, err, "Implicitly recursive types are not supported: 'a occurs in Integer -> 'a")
}

func TestUnifyMismatch(t *testing.T) {
	ctx := newContext()
	a := ctx.Arena
	integer, boolean := a.NewConst(types.IntegerName), a.NewConst("Bool")
	x, y := a.NewVar(), a.NewVar()

	for _, tc := range []struct {
		name string
		l, r types.Term
	}{
		{"name", integer, boolean},
		{"arity", a.NewConst("Pair", x, y), a.NewConst("Pair", x)},
		{"function arity", a.NewFunc([]types.Term{x}, y), a.NewFunc([]types.Term{x, x}, y)},
		{"result", a.NewFunc([]types.Term{x}, y), a.NewConst(types.FunctionName, x)},
		{"nested", a.NewConst("List", integer), a.NewConst("List", boolean)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ctx.Unify(tc.l, tc.r), types.ErrTypeMismatch)
			assert.ErrorIs(t, ctx.Unify(tc.r, tc.l), types.ErrTypeMismatch)
		})
	}

	assert.EqualError(t, ctx.Unify(integer, boolean), "Type mismatch: failed to unify Integer with Bool")
}

func TestUnifyStructural(t *testing.T) {
	ctx := newContext()
	a := ctx.Arena
	integer, boolean := a.NewConst(types.IntegerName), a.NewConst("Bool")
	x, y, r := a.NewVar(), a.NewVar(), a.NewVar()

	// (x, Bool) -> x  ~  (Integer, y) -> r
	l := a.NewFunc([]types.Term{x, boolean}, x)
	rt := a.NewFunc([]types.Term{integer, y}, r)
	require.NoError(t, ctx.Unify(l, rt))

	assert.Equal(t, "(Integer, Bool) -> Integer", types.TypeString(a, l))
	assert.Equal(t, "(Integer, Bool) -> Integer", types.TypeString(a, rt))
	assert.Equal(t, integer, a.Resolve(r))
}

func TestUnifySharedVariables(t *testing.T) {
	ctx := newContext()
	a := ctx.Arena
	x, y := a.NewVar(), a.NewVar()

	// x -> x  ~  y -> Integer binds both to Integer:
	require.NoError(t, ctx.Unify(a.NewFunc([]types.Term{x}, x), a.NewFunc([]types.Term{y}, a.NewConst(types.IntegerName))))
	assert.Equal(t, "Integer", types.TypeString(a, x))
	assert.Equal(t, "Integer", types.TypeString(a, y))
}

func TestUnifySymmetric(t *testing.T) {
	// (x, Bool) -> x  and  (Integer, y) -> r, allocated within a fresh context:
	build := func() (*CommonContext, types.Term, types.Term) {
		ctx := newContext()
		a := ctx.Arena
		x, y, r := a.NewVar(), a.NewVar(), a.NewVar()
		l := a.NewFunc([]types.Term{x, a.NewConst("Bool")}, x)
		rt := a.NewFunc([]types.Term{a.NewConst(types.IntegerName), y}, r)
		return ctx, l, rt
	}

	ctx1, l1, r1 := build()
	require.NoError(t, ctx1.Unify(l1, r1))
	ctx2, l2, r2 := build()
	require.NoError(t, ctx2.Unify(r2, l2))

	strs1 := types.TypeStrings(ctx1.Arena, l1, r1)
	strs2 := types.TypeStrings(ctx2.Arena, l2, r2)
	assert.Equal(t, strs1, strs2)
	assert.Equal(t, []string{"(Integer, Bool) -> Integer", "(Integer, Bool) -> Integer"}, strs1)

	// Type-variables remain shared after unification in either direction:
	for _, swap := range []bool{false, true} {
		ctx := newContext()
		a := ctx.Arena
		x, y, z := a.NewVar(), a.NewVar(), a.NewVar()
		l := a.NewConst("Pair", x, x)
		rt := a.NewConst("Pair", y, z)
		if swap {
			require.NoError(t, ctx.Unify(rt, l))
		} else {
			require.NoError(t, ctx.Unify(l, rt))
		}
		assert.Equal(t, []string{"Pair['a, 'a]", "Pair['a, 'a]"}, types.TypeStrings(a, l, rt))
	}
}
