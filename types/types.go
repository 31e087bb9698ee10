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

// Names of the built-in type constructors.
const (
	// FunctionName is the constructor of function types. Function terms carry their
	// parameter types as arguments and their return type in the result slot.
	FunctionName = "Function"
	// IntegerName is the base type of integer literals.
	IntegerName = "Integer"
)

// Term is a handle to a type-term slot within an Arena. Every holder of a type stores
// the handle, never the slot itself, so binding a type-variable is observed by all holders.
//
// The zero Term is NoTerm.
type Term int32

// NoTerm is the absent term, e.g. the result slot of a constructor which is not a function.
const NoTerm Term = 0

// A slot is one of:
//
//   * an unbound type-variable (empty name, no link)
//   * a linked type-variable (empty name, link to the term it was bound to)
//   * a constructor application (name, arguments, and an optional result)
type slot struct {
	name   string
	args   TermList
	result Term
	link   Term
}

// Arena holds the type-term graph for one or more inference passes. Terms from
// different arenas must never be mixed.
//
// An arena cannot be used concurrently; independent arenas share no state.
type Arena struct {
	slots []slot
}

// Create an empty arena.
func NewArena() *Arena {
	a := &Arena{slots: make([]slot, 1, 64)}
	return a
}

// Len returns the number of allocated slots, including the reserved NoTerm slot. The result
// may be passed to Truncate to discard every term allocated afterwards.
func (a *Arena) Len() int { return len(a.slots) }

// Valid returns true if t refers to an allocated slot.
func (a *Arena) Valid(t Term) bool { return t > NoTerm && int(t) < len(a.slots) }

// Truncate discards every slot allocated at or after mark. Slots below mark must not be
// linked to the discarded slots; this holds for type-environments whose schemes were
// only ever instantiated (never bound) by the discarded terms.
func (a *Arena) Truncate(mark int) {
	if mark < 1 || mark >= len(a.slots) {
		return
	}
	for i := mark; i < len(a.slots); i++ {
		a.slots[i] = slot{}
	}
	a.slots = a.slots[:mark]
}

func (a *Arena) alloc(s slot) Term {
	a.slots = append(a.slots, s)
	return Term(len(a.slots) - 1)
}

// Create a new unbound type-variable.
func (a *Arena) NewVar() Term { return a.alloc(slot{}) }

// Create a constructor application without a result slot: `Integer` or `Pair[a, b]`.
func (a *Arena) NewConst(name string, args ...Term) Term {
	return a.NewApp(name, NewTermList(args...), NoTerm)
}

// Create a function type: `(a, b) -> r`.
func (a *Arena) NewFunc(args []Term, result Term) Term {
	return a.NewApp(FunctionName, NewTermList(args...), result)
}

// Create a constructor application with the given arguments and (optional) result.
//
// The name must not be empty; an empty name would denote a type-variable. Only function
// types (FunctionName) may carry a result.
func (a *Arena) NewApp(name string, args TermList, result Term) Term {
	if name == "" {
		panic("types: constructor name must not be empty")
	}
	if result != NoTerm && name != FunctionName {
		panic("types: only function types may carry a result")
	}
	return a.alloc(slot{name: name, args: args, result: result})
}

// Resolve follows the chain of linked type-variables starting at t and returns the
// underlying term. Chains are compressed along the way.
func (a *Arena) Resolve(t Term) Term {
	root := t
	for a.slots[root].link != NoTerm {
		root = a.slots[root].link
	}
	for t != root {
		next := a.slots[t].link
		a.slots[t].link = root
		t = next
	}
	return root
}

// IsVariable returns true if t resolves to an unbound type-variable.
func (a *Arena) IsVariable(t Term) bool { return a.slots[a.Resolve(t)].name == "" }

// isLinked returns true if t is a type-variable which has been bound to another term.
func (a *Arena) isLinked(t Term) bool { return a.slots[t].link != NoTerm }

// Name returns the constructor name of the term which t resolves to. The name is empty
// for unbound type-variables.
func (a *Arena) Name(t Term) string { return a.slots[a.Resolve(t)].name }

// Args returns the argument terms of the constructor application which t resolves to.
func (a *Arena) Args(t Term) TermList { return a.slots[a.Resolve(t)].args }

// Result returns the result term of the function type which t resolves to, if present.
func (a *Arena) Result(t Term) (Term, bool) {
	r := a.slots[a.Resolve(t)].result
	return r, r != NoTerm
}

// Bind links the unbound type-variable v to t. Every holder of v will observe t.
//
// Bind does not check for recursion; see OccursIn.
func (a *Arena) Bind(v, t Term) {
	v = a.Resolve(v)
	if a.slots[v].name != "" {
		panic("types: cannot bind a constructor application")
	}
	if t = a.Resolve(t); t != v {
		a.slots[v].link = t
	}
}

// OccursIn returns true if v and t resolve to the same term, or if t resolves to a
// constructor application whose arguments or result (recursively) contain v.
func (a *Arena) OccursIn(v, t Term) bool {
	v, t = a.Resolve(v), a.Resolve(t)
	if v == t {
		return true
	}
	s := a.slots[t]
	if s.name == "" {
		return false
	}
	found := false
	s.args.Range(func(_ int, arg Term) bool {
		found = a.OccursIn(v, arg)
		return !found
	})
	if found {
		return true
	}
	return s.result != NoTerm && a.OccursIn(v, s.result)
}

// OccursInAny returns true if v occurs in any of the terms.
func (a *Arena) OccursInAny(v Term, ts []Term) bool {
	for _, t := range ts {
		if a.OccursIn(v, t) {
			return true
		}
	}
	return false
}

// OccursInSet returns true if v occurs in any member of the set. A type-variable which
// occurs in the non-generic set is fixed by an enclosing scope.
func (a *Arena) OccursInSet(v Term, vs VarSet) bool {
	found := false
	vs.Range(func(t Term) bool {
		found = a.OccursIn(v, t)
		return !found
	})
	return found
}
