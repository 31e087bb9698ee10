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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[Term]string, 16)}
	},
}

func newTypePrinter(a *Arena) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.arena = a
	return p
}

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	p.arena = nil
	printerPool.Put(p)
}

// TypeString returns a string representation of a term. Unbound type-variables are named
// 'a, 'b, ... in order of first occurrence, so every reference to one variable prints
// the same name.
func TypeString(a *Arena, t Term) string {
	p := newTypePrinter(a)
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several terms which share variable names.
func TypeStrings(a *Arena, ts ...Term) []string {
	p := newTypePrinter(a)
	strs := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		strs[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return strs
}

type typePrinter struct {
	arena   *Arena
	idNames map[Term]string
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(i)
	}
}

func varName(i int) string {
	name := "'" + string(rune('a'+i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	return name
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return varName(i)
}

func (p *typePrinter) varName(t Term) string {
	if name, ok := p.idNames[t]; ok {
		return name
	}
	name := getVarName(len(p.idNames))
	p.idNames[t] = name
	return name
}

func typeString(p *typePrinter, simple bool, t Term) {
	a := p.arena
	if !a.Valid(t) {
		p.sb.WriteString("<none>")
		return
	}
	t = a.Resolve(t)
	s := a.slots[t]
	switch {
	case s.name == "":
		p.sb.WriteString(p.varName(t))

	case s.result != NoTerm:
		if simple {
			p.sb.WriteByte('(')
		}
		if s.args.Len() == 1 {
			typeString(p, true, s.args.Get(0))
		} else {
			p.sb.WriteByte('(')
			s.args.Range(func(i int, arg Term) bool {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
				return true
			})
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" -> ")
		typeString(p, false, s.result)
		if simple {
			p.sb.WriteByte(')')
		}

	default:
		p.sb.WriteString(s.name)
		if s.args.Len() == 0 {
			return
		}
		p.sb.WriteByte('[')
		s.args.Range(func(i int, arg Term) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, arg)
			return true
		})
		p.sb.WriteByte(']')
	}
}

// Description is a tree representation of a term, suitable for encoding.
type Description struct {
	Var    string         `json:"var,omitempty" yaml:"var,omitempty"`
	Name   string         `json:"name,omitempty" yaml:"name,omitempty"`
	Args   []*Description `json:"args,omitempty" yaml:"args,omitempty"`
	Result *Description   `json:"result,omitempty" yaml:"result,omitempty"`
}

// Describe returns a tree representation of a term. Variables are named as in TypeString.
func Describe(a *Arena, t Term) *Description {
	p := newTypePrinter(a)
	d := describe(p, t)
	p.Release()
	return d
}

func describe(p *typePrinter, t Term) *Description {
	a := p.arena
	if !a.Valid(t) {
		return nil
	}
	t = a.Resolve(t)
	s := a.slots[t]
	if s.name == "" {
		return &Description{Var: p.varName(t)}
	}
	d := &Description{Name: s.name}
	s.args.Range(func(_ int, arg Term) bool {
		d.Args = append(d.Args, describe(p, arg))
		return true
	})
	if s.result != NoTerm {
		d.Result = describe(p, s.result)
	}
	return d
}
