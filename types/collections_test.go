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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermList(t *testing.T) {
	var zero TermList
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Slice())
	assert.Equal(t, 0, NewTermList().Len())

	l := NewTermList(3, 1, 2)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, Term(1), l.Get(1))
	assert.Equal(t, []Term{3, 1, 2}, l.Slice())

	var visited []Term
	l.Range(func(i int, t Term) bool {
		visited = append(visited, t)
		return i < 1
	})
	assert.Equal(t, []Term{3, 1}, visited)

	b := NewTermListBuilder()
	b.Append(7)
	b.Append(8)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []Term{7, 8}, b.Build().Slice())
}

func TestTypeEnv(t *testing.T) {
	var empty TypeEnv
	assert.Equal(t, 0, empty.Len())
	_, ok := empty.Lookup("x")
	assert.False(t, ok)

	env := empty.Extend("y", 2).Extend("x", 1)
	extended := env.Extend("z", 3).Extend("x", 4)

	// Extending never modifies the receiver:
	assert.Equal(t, 2, env.Len())
	x, _ := env.Lookup("x")
	assert.Equal(t, Term(1), x)
	_, ok = env.Lookup("z")
	assert.False(t, ok)

	assert.Equal(t, 3, extended.Len())
	x, _ = extended.Lookup("x")
	assert.Equal(t, Term(4), x)

	var names []string
	extended.Range(func(name string, _ Term) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"x", "y", "z"}, names)

	single := SingletonTypeEnv("a", 9)
	assert.Equal(t, 1, single.Len())
}

func TestTypeEnvBuilder(t *testing.T) {
	base := SingletonTypeEnv("a", 1)
	b := base.Builder().Declare("b", 2).Declare("c", 3)
	assert.Equal(t, 3, b.Len())

	env := b.Build()
	assert.Equal(t, 3, env.Len())
	assert.Equal(t, 1, base.Len())

	env2 := NewTypeEnvBuilder().Declare("b", 5).Build()
	v, ok := env2.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, Term(5), v)
}

func TestVarSet(t *testing.T) {
	var empty VarSet
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has(1))

	s := NewVarSet(3, 1)
	s2 := s.Add(2, 3)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Has(2))
	assert.Equal(t, 3, s2.Len())
	assert.True(t, s2.Has(2))
	assert.Equal(t, s, s.Add())

	var members []Term
	s2.Range(func(t Term) bool {
		members = append(members, t)
		return true
	})
	assert.Equal(t, []Term{1, 2, 3}, members)
}
