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

type termComparer struct{}

func (termComparer) Compare(a, b interface{}) int {
	x, y := a.(Term), b.(Term)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

var emptyVarSet = immutable.NewSortedMap(termComparer{})

// VarSet is an immutable set of terms. The non-generic set of a scope holds the
// type-variables of enclosing function parameters.
//
// The zero VarSet is empty and ready to use.
type VarSet struct {
	m *immutable.SortedMap
}

func NewVarSet(ts ...Term) VarSet { return VarSet{}.Add(ts...) }

func (s VarSet) sortedMap() *immutable.SortedMap {
	if s.m == nil {
		return emptyVarSet
	}
	return s.m
}

func (s VarSet) Len() int { return s.sortedMap().Len() }

func (s VarSet) Has(t Term) bool {
	_, ok := s.sortedMap().Get(t)
	return ok
}

// Add returns a new set which contains ts in addition to the members of s.
func (s VarSet) Add(ts ...Term) VarSet {
	if len(ts) == 0 {
		return s
	}
	b := immutable.NewSortedMapBuilder(s.sortedMap())
	for _, t := range ts {
		b.Set(t, struct{}{})
	}
	return VarSet{b.Map()}
}

// Iterate over members of the set, in allocation order.
// If f returns false, iteration will be stopped.
func (s VarSet) Range(f func(Term) bool) {
	iter := s.sortedMap().Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		if !f(k.(Term)) {
			return
		}
	}
}
