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

package hindley

import (
	"errors"
	"fmt"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

func (ti *InferenceContext) fail(e ast.Expr, err error) (types.Term, error) {
	ti.invalid, ti.err = e, err
	return types.NoTerm, err
}

// infer the type of e. Type-variables which occur in nonGeneric are fixed by the parameters
// of enclosing functions; all other type-variables of schemes in env are generic.
func (ti *InferenceContext) infer(env types.TypeEnv, nonGeneric types.VarSet, e ast.Expr) (types.Term, error) {
	arena := ti.common.Arena
	switch e := e.(type) {
	case *ast.Literal:
		t := arena.NewConst(e.BaseType())
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			return ti.fail(e, fmt.Errorf("%w: %s", ErrUnboundIdentifier, e.Name))
		}
		t := ti.common.Instantiate(scheme, nonGeneric)
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Let:
		// Shadowing is not allowed:
		if _, exists := env.Lookup(e.Var); exists {
			return ti.fail(e, fmt.Errorf("%w: %s is already bound", ErrDuplicateBinding, e.Var))
		}
		t, err := ti.infer(env, nonGeneric, e.Value)
		if err != nil {
			return types.NoTerm, err
		}
		// The value's type is generalized implicitly; its type-variables are not added to nonGeneric:
		return ti.infer(env.Extend(e.Var, t), nonGeneric, e.Body)

	case *ast.Func:
		args := make([]types.Term, len(e.ArgNames))
		bodyEnv := env
		for i, name := range e.ArgNames {
			tv := arena.NewVar()
			args[i] = tv
			bodyEnv = bodyEnv.Extend(name, tv)
		}
		// Parameters are monomorphic within the body:
		ret, err := ti.infer(bodyEnv, nonGeneric.Add(args...), e.Body)
		if err != nil {
			return types.NoTerm, err
		}
		t := arena.NewFunc(args, ret)
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Call:
		args := make([]types.Term, len(e.Args))
		for i, arg := range e.Args {
			t, err := ti.infer(env, nonGeneric, arg)
			if err != nil {
				return types.NoTerm, err
			}
			args[i] = t
		}
		ft, err := ti.infer(env, nonGeneric, e.Func)
		if err != nil {
			return types.NoTerm, err
		}
		ret := arena.NewVar()
		if err := ti.common.Unify(arena.NewFunc(args, ret), ft); err != nil {
			return ti.fail(e, err)
		}
		if ti.annotate {
			e.SetType(ret)
			e.SetFuncType(ft)
		}
		return ret, nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return ti.fail(e, errors.New("Unhandled expression "+exprName))
}
