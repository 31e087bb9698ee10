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

// WalkExpr calls f for e and each of its sub-expressions, parents first. Nil
// sub-expressions are passed to f as is; nil pointers and unknown expression types
// are visited as leaves.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Var, *Literal:
		f(e)

	case *Call:
		f(e)
		if e == nil {
			return
		}
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Func:
		f(e)
		if e == nil {
			return
		}
		WalkExpr(e.Body, f)

	case *Let:
		f(e)
		if e == nil {
			return
		}
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case nil:
		f(nil)

	default:
		f(e)
	}
}

// IsEmpty returns true if e is nil or a nil pointer to an expression.
func IsEmpty(e Expr) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *Literal:
		return e == nil
	case *Var:
		return e == nil
	case *Call:
		return e == nil
	case *Func:
		return e == nil
	case *Let:
		return e == nil
	}
	return false
}
