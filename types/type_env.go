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
	"github.com/benbjohnson/immutable"
)

var emptyEnv = immutable.NewSortedMap(nil)

// TypeEnv contains immutable mappings from identifiers to type schemes. Extending an
// environment never modifies it, so an environment may be shared by sibling scopes.
//
// The zero TypeEnv is empty and ready to use.
type TypeEnv struct {
	m *immutable.SortedMap
}

// Create a type-environment with a single entry.
func SingletonTypeEnv(name string, t Term) TypeEnv {
	return TypeEnv{emptyEnv.Set(name, t)}
}

func (e TypeEnv) sortedMap() *immutable.SortedMap {
	if e.m == nil {
		return emptyEnv
	}
	return e.m
}

// Get the number of entries in the environment.
func (e TypeEnv) Len() int { return e.sortedMap().Len() }

// Lookup the scheme bound to name.
func (e TypeEnv) Lookup(name string) (Term, bool) {
	t, ok := e.sortedMap().Get(name)
	if !ok {
		return NoTerm, false
	}
	return t.(Term), true
}

// Extend returns a new environment which maps name to t, in addition to the entries of e.
// An existing mapping for name is replaced in the new environment only.
func (e TypeEnv) Extend(name string, t Term) TypeEnv {
	return TypeEnv{e.sortedMap().Set(name, t)}
}

// Iterate over entries in the environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e TypeEnv) Range(f func(string, Term) bool) {
	iter := e.sortedMap().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Term)) {
			return
		}
	}
}

// Convert the environment to a builder for modification, without mutating the existing environment.
func (e TypeEnv) Builder() TypeEnvBuilder {
	return TypeEnvBuilder{immutable.NewSortedMapBuilder(e.sortedMap())}
}

// TypeEnvBuilder enables in-place updates of an environment before finalization.
type TypeEnvBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTypeEnvBuilder() TypeEnvBuilder {
	return TypeEnvBuilder{immutable.NewSortedMapBuilder(emptyEnv)}
}

// Get the number of entries in the builder.
func (b TypeEnvBuilder) Len() int { return b.b.Len() }

// Declare a scheme for name in the builder.
func (b TypeEnvBuilder) Declare(name string, t Term) TypeEnvBuilder {
	b.b.Set(name, t)
	return b
}

// Finalize the builder into an immutable environment.
func (b TypeEnvBuilder) Build() TypeEnv { return TypeEnv{b.b.Map()} }
