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
	"context"
	"io"
	"log/slog"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/internal/typeutil"
	"github.com/wdamron/hindley/types"
)

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently. Contexts over distinct arenas share
// no state and may be used in parallel.
type InferenceContext struct {
	annotate   bool
	needsReset bool

	common   typeutil.CommonContext
	logger   *slog.Logger
	rootExpr ast.Expr

	err     error
	invalid ast.Expr
}

// Create a new type-inference context over arena. If arena is nil, a new arena will be created.
// A context may be reused for inference.
func NewContext(arena *types.Arena) *InferenceContext {
	if arena == nil {
		arena = types.NewArena()
	}
	ti := &InferenceContext{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	ti.common.Init(arena)
	return ti
}

// Arena returns the arena which holds inferred types and the schemes of type-environments
// used with the context.
func (ti *InferenceContext) Arena() *types.Arena { return ti.common.Arena }

// SetLogger sets the logger for debug records of completed and failed inference. Records are
// discarded by default.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ti.logger = logger
}

func (ti *InferenceContext) reset() {
	ti.common.Reset()
	ti.rootExpr, ti.err, ti.invalid, ti.needsReset = nil, nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env. Nil sub-expressions (including nil pointers) fail
// with ErrEmptyExpression.
//
// If inference fails, every term allocated during inference is discarded from the arena.
// Schemes within env are never bound by inference, so env may be reused afterwards.
func (ti *InferenceContext) Infer(expr ast.Expr, env types.TypeEnv) (types.Term, error) {
	nocopy := true
	_, t, err := ti.inferRoot(expr, env, nocopy)
	return t, err
}

// Infer the type of expr within env. The type-annotated copy of expr will be returned.
func (ti *InferenceContext) Annotate(expr ast.Expr, env types.TypeEnv) (ast.Expr, error) {
	nocopy := false
	ti.annotate = true
	root, _, err := ti.inferRoot(expr, env, nocopy)
	ti.annotate = false
	return root, err
}

// Infer the type of expr within env. Type-annotations will be added directly to expr.
// All sub-expressions of expr must have unique addresses.
func (ti *InferenceContext) AnnotateDirect(expr ast.Expr, env types.TypeEnv) error {
	nocopy := true
	ti.annotate = true
	_, _, err := ti.inferRoot(expr, env, nocopy)
	ti.annotate = false
	return err
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env types.TypeEnv, nocopy bool) (ast.Expr, types.Term, error) {
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if invalid := findEmpty(root); invalid != nil || ast.IsEmpty(root) {
		ti.invalid, ti.err = invalid, ErrEmptyExpression
		return root, types.NoTerm, ti.err
	}
	if !nocopy {
		root = ast.CopyExpr(root)
	}
	arena := ti.common.Arena
	mark := arena.Len()
	ti.rootExpr = root
	t, err := ti.infer(env, types.VarSet{}, root)
	if err != nil {
		if ti.err == nil {
			ti.invalid, ti.err = root, err
		}
		// Terms of a failed pass are discarded:
		arena.Truncate(mark)
		if ti.annotate {
			clearTypes(root)
		}
		t = types.NoTerm
		if ti.logger.Enabled(context.Background(), slog.LevelDebug) {
			ti.logger.Debug("inference failed", "expr", ast.ExprString(root), "invalid", ast.ExprString(ti.invalid), "err", err)
		}
	} else if ti.logger.Enabled(context.Background(), slog.LevelDebug) {
		ti.logger.Debug("inferred type", "expr", ast.ExprString(root), "type", types.TypeString(arena, t), "terms", arena.Len()-mark)
	}
	ti.common.Reset()
	ti.rootExpr = nil
	return root, t, err
}

// Returns the first expression with an empty (nil) sub-expression, if any.
func findEmpty(root ast.Expr) ast.Expr {
	var invalid ast.Expr
	ast.WalkExpr(root, func(e ast.Expr) {
		if invalid != nil || ast.IsEmpty(e) {
			return
		}
		switch e := e.(type) {
		case *ast.Call:
			if ast.IsEmpty(e.Func) {
				invalid = e
				return
			}
			for _, arg := range e.Args {
				if ast.IsEmpty(arg) {
					invalid = e
					return
				}
			}
		case *ast.Func:
			if ast.IsEmpty(e.Body) {
				invalid = e
			}
		case *ast.Let:
			if ast.IsEmpty(e.Value) || ast.IsEmpty(e.Body) {
				invalid = e
			}
		}
	})
	return invalid
}

func clearTypes(root ast.Expr) {
	ast.WalkExpr(root, func(e ast.Expr) {
		switch e := e.(type) {
		case *ast.Literal:
			e.SetType(types.NoTerm)
		case *ast.Var:
			e.SetType(types.NoTerm)
		case *ast.Func:
			e.SetType(types.NoTerm)
		case *ast.Call:
			e.SetType(types.NoTerm)
			e.SetFuncType(types.NoTerm)
		}
	})
}
