package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTermList = TermList{emptyList}

// TermList is an immutable list of terms. Lists are shared between slots when a
// term is copied, so they must never be modified in place.
type TermList struct {
	l *immutable.List
}

func NewTermList(ts ...Term) TermList {
	if len(ts) == 0 {
		return EmptyTermList
	}
	b := NewTermListBuilder()
	for _, t := range ts {
		b.Append(t)
	}
	return b.Build()
}

func (l TermList) list() *immutable.List {
	if l.l == nil {
		return emptyList
	}
	return l.l
}

func (l TermList) Len() int       { return l.list().Len() }
func (l TermList) Get(i int) Term { return l.list().Get(i).(Term) }

// If f returns false, iteration will be stopped.
func (l TermList) Range(f func(int, Term) bool) {
	iter := l.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Term)) {
			return
		}
	}
}

// Slice copies the list into a new slice.
func (l TermList) Slice() []Term {
	ts := make([]Term, 0, l.Len())
	l.Range(func(_ int, t Term) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

type TermListBuilder struct {
	b *immutable.ListBuilder
}

func NewTermListBuilder() TermListBuilder {
	return TermListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b TermListBuilder) Len() int        { return b.b.Len() }
func (b TermListBuilder) Append(t Term)   { b.b.Append(t) }
func (b TermListBuilder) Build() TermList { return TermList{b.b.List()} }
