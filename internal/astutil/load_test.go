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

package astutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

func TestLoadFile(t *testing.T) {
	ps, err := LoadFile("testdata/programs.yaml")
	require.NoError(t, err)

	require.Len(t, ps.Decls, 2)
	assert.Equal(t, "pair", ps.Decls[0].Name)
	assert.Equal(t, "true", ps.Decls[1].Name)

	names := make([]string, len(ps.Programs))
	for i, p := range ps.Programs {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"const-five", "apply-identity", "polymorphic-identity", "self-application", "unbound", "duplicate",
	}, names)

	exprs := map[string]string{
		"const-five":           "fn (f) -> 5",
		"apply-identity":       "let five = 5 in let g = fn (f) -> f in g(five)",
		"polymorphic-identity": "let id = fn (x) -> x in pair(id(3), id(true))",
		"self-application":     "fn (f) -> f(f)",
		"unbound":              "fn (x) -> y",
		"duplicate":            "let x = 1 in let x = 2 in x",
	}
	for _, p := range ps.Programs {
		assert.Equal(t, exprs[p.Name], ast.ExprString(p.Expr), p.Name)
	}
}

func TestEnv(t *testing.T) {
	ps, err := LoadFile("testdata/programs.yaml")
	require.NoError(t, err)

	arena := types.NewArena()
	env, err := ps.Env(arena)
	require.NoError(t, err)
	require.Equal(t, 2, env.Len())

	pair, ok := env.Lookup("pair")
	require.True(t, ok)
	assert.Equal(t, "('a, 'b) -> Pair['a, 'b]", types.TypeString(arena, pair))

	b, ok := env.Lookup("true")
	require.True(t, ok)
	assert.Equal(t, "Bool", types.TypeString(arena, b))

	// Each call declares fresh terms:
	other, err := ps.Env(arena)
	require.NoError(t, err)
	pair2, _ := other.Lookup("pair")
	assert.NotEqual(t, pair, pair2)
}

func TestLoadExpressions(t *testing.T) {
	ps, err := Load(strings.NewReader(`
programs:
  - expr: {call: {var: f}}
  - expr: {fn: [], body: {int: -7}}
`))
	require.NoError(t, err)
	require.Len(t, ps.Programs, 2)
	assert.Equal(t, "program-1", ps.Programs[0].Name)
	assert.Equal(t, "f()", ast.ExprString(ps.Programs[0].Expr))
	assert.Equal(t, "fn () -> -7", ast.ExprString(ps.Programs[1].Expr))
	assert.Empty(t, ps.Decls)
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name, doc, err string
	}{
		{"unknown form", "programs:\n  - expr: {lambda: x}\n", "line 2: unknown expression form lambda"},
		{"unexpected field", "programs:\n  - expr: {var: x, type: y}\n", "unexpected field type"},
		{"bad integer", "programs:\n  - expr: {int: five}\n", "invalid integer five"},
		{"missing body", "programs:\n  - expr: {fn: [x]}\n", "fn requires a body"},
		{"missing let body", "programs:\n  - expr: {let: x, value: {int: 1}}\n", "expected fields value and in"},
		{"params", "programs:\n  - expr: {fn: x, body: {int: 1}}\n", "fn must be a sequence"},
		{"duplicate program", "programs:\n  - {name: a, expr: {int: 1}}\n  - {name: a, expr: {int: 2}}\n", "duplicate program a"},
		{"env kind", "env: [a]\n", "env must be a mapping"},
		{"duplicate decl", "env:\n  x: Int\n  x: Bool\n", "duplicate declaration x"},
		{"type without con", "env:\n  x: {args: [a]}\n", "type application requires con"},
		{"type field", "env:\n  x: {con: List, of: a}\n", "unexpected field of"},
		{"result of non-function", "env:\n  p: {con: Pair, args: [Integer], result: Bool}\n", "line 2: only function types may have a result"},
		{"function without result", "env:\n  q: {con: Function, args: [Integer]}\n", "line 2: function type requires result"},
		{"unknown top-level", "envs: {}\n", "Failed to decode program set"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}
