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

package ast

import (
	"github.com/wdamron/hindley/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are only available after
	// annotation; types.NoTerm is returned otherwise.
	Type() types.Term
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
)

// Literal value of a base type: `5`
type Literal struct {
	// Syntax is a string representation of the literal value. The syntax will be printed when the literal is printed.
	Syntax string
	// TypeName names the base type of the literal. An empty name denotes types.IntegerName.
	TypeName string
	inferred types.Term
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

// Get the inferred (or assigned) type of e.
func (e *Literal) Type() types.Term { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Literal) SetType(t types.Term) { e.inferred = t }

// BaseType returns the name of the base type of e.
func (e *Literal) BaseType() string {
	if e.TypeName == "" {
		return types.IntegerName
	}
	return e.TypeName
}

// Variable
type Var struct {
	Name     string
	inferred types.Term
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Get the inferred (or assigned) type of e.
func (e *Var) Type() types.Term { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Var) SetType(t types.Term) { e.inferred = t }

// Application: `f(x)`
type Call struct {
	Func         Expr
	Args         []Expr
	inferred     types.Term
	inferredFunc types.Term
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Term { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Call) SetType(t types.Term) { e.inferred = t }

// Get the inferred (or assigned) function type called in e.
func (e *Call) FuncType() types.Term { return e.inferredFunc }

// Assign the function type called in e. Type assignments should occur indirectly, during inference.
func (e *Call) SetFuncType(t types.Term) { e.inferredFunc = t }

// Abstraction: `fn (x, y) -> x`
type Func struct {
	ArgNames []string
	Body     Expr
	inferred types.Term
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Get the inferred (or assigned) type of e.
func (e *Func) Type() types.Term { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Func) SetType(t types.Term) { e.inferred = t }

// Let-binding: `let a = 1 in e`
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Get the inferred (or assigned) type of e.
func (e *Let) Type() types.Term {
	if e.Body == nil {
		return types.NoTerm
	}
	return e.Body.Type()
}
