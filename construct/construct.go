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

package construct

import (
	"strconv"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

// Types

// Create a new unbound type-variable.
func TVar(a *types.Arena) types.Term {
	return a.NewVar()
}

// Type constant or application: `Integer`, `Pair[a, b]`, etc
func TConst(a *types.Arena, name string, args ...types.Term) types.Term {
	return a.NewConst(name, args...)
}

// Function type: `(a, b) -> r`
func TArrow(a *types.Arena, args []types.Term, ret types.Term) types.Term {
	return a.NewFunc(args, ret)
}

// Function type: `a -> r`
func TArrow1(a *types.Arena, arg, ret types.Term) types.Term {
	return a.NewFunc([]types.Term{arg}, ret)
}

// Function type: `(a, b) -> r`
func TArrow2(a *types.Arena, arg1, arg2, ret types.Term) types.Term {
	return a.NewFunc([]types.Term{arg1, arg2}, ret)
}

// Expressions:

// Integer literal: `5`
func Int(value int) *ast.Literal {
	return &ast.Literal{Syntax: strconv.Itoa(value), TypeName: types.IntegerName}
}

// Literal of a named base type
func Lit(syntax, typeName string) *ast.Literal {
	return &ast.Literal{Syntax: syntax, TypeName: typeName}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Abstraction: `fn (x, y) -> x`
func Func(args []string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: args, Body: body}
}

// Abstraction: `fn (x) -> x`
func Func1(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg}, Body: body}
}

// Abstraction: `fn (x, y) -> x`
func Func2(arg1, arg2 string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg1, arg2}, Body: body}
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}
