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

package astutil

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/construct"
	"github.com/wdamron/hindley/types"
)

// ProgramSet is a set of named programs which share declarations for their type-environment.
//
// Programs are decoded from YAML documents of the form:
//
//  env:
//    pair: {con: Function, args: [a, b], result: {con: Pair, args: [a, b]}}
//  programs:
//    - name: id
//      expr: {fn: [x], body: {var: x}}
//
// Expressions are one of `{int: 5}`, `{var: x}`, `{let: x, value: E, in: E}`, `{fn: [x, y], body: E}`,
// or `{call: E, args: [E, ...]}`. Within a type, a lowercase name is a type-variable (shared by name within
// one declaration), any other name is a constant, and `{con: Name, args: [T, ...]}` is an application.
// Function types are written `{con: Function, args: [T, ...], result: T}`; only they carry a result.
type ProgramSet struct {
	Decls    []Decl
	Programs []Program
}

// Decl declares the scheme of a name within the type-environment of each program.
type Decl struct {
	Name string
	Line int
	node *yaml.Node
}

// Program is a named expression.
type Program struct {
	Name string
	Line int
	Expr ast.Expr
}

type document struct {
	Env      yaml.Node `yaml:"env"`
	Programs []struct {
		Name string    `yaml:"name"`
		Expr yaml.Node `yaml:"expr"`
	} `yaml:"programs"`
}

// Load a program set from a file.
func LoadFile(path string) (*ProgramSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load a program set from a YAML document.
func Load(r io.Reader) (*ProgramSet, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("Failed to decode program set: %w", err)
	}
	ps := &ProgramSet{}
	if err := ps.loadDecls(&doc.Env); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(doc.Programs))
	for i, p := range doc.Programs {
		name := p.Name
		if name == "" {
			name = "program-" + strconv.Itoa(i+1)
		}
		if seen[name] {
			return nil, nodeErr(&p.Expr, "duplicate program "+name)
		}
		seen[name] = true
		expr, err := decodeExpr(&p.Expr)
		if err != nil {
			return nil, err
		}
		ps.Programs = append(ps.Programs, Program{Name: name, Line: p.Expr.Line, Expr: expr})
	}
	return ps, nil
}

func (ps *ProgramSet) loadDecls(env *yaml.Node) error {
	switch env.Kind {
	case 0:
		return nil
	case yaml.MappingNode:
	default:
		return nodeErr(env, "env must be a mapping from names to types")
	}
	seen := make(map[string]bool, len(env.Content)/2)
	for i := 0; i+1 < len(env.Content); i += 2 {
		key, value := env.Content[i], env.Content[i+1]
		if seen[key.Value] {
			return nodeErr(key, "duplicate declaration "+key.Value)
		}
		seen[key.Value] = true
		ps.Decls = append(ps.Decls, Decl{Name: key.Value, Line: key.Line, node: value})
	}
	// Validate declarations once, within a scratch arena:
	_, err := ps.Env(types.NewArena())
	return err
}

// Env builds the type-environment declared by the program set within arena. Each program
// which is inferred in parallel needs its own arena and environment.
func (ps *ProgramSet) Env(arena *types.Arena) (types.TypeEnv, error) {
	b := types.NewTypeEnvBuilder()
	for _, d := range ps.Decls {
		t, err := decodeType(arena, d.node, make(map[string]types.Term))
		if err != nil {
			return types.TypeEnv{}, err
		}
		b.Declare(d.Name, t)
	}
	return b.Build(), nil
}

func nodeErr(n *yaml.Node, msg string) error {
	return fmt.Errorf("line %d: %s", n.Line, msg)
}

func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return nil, nodeErr(n.Content[i], "unexpected field "+key)
		}
		m[key] = n.Content[i+1]
	}
	return m, nil
}

func scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", nodeErr(n, what+" must be a non-empty scalar")
	}
	return n.Value, nil
}

var exprForms = map[string]bool{"int": true, "var": true, "let": true, "fn": true, "call": true}

func decodeExpr(n *yaml.Node) (ast.Expr, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) == 0 {
		return nil, nodeErr(n, "expected an expression")
	}
	form := n.Content[0].Value
	for i := 0; i < len(n.Content); i += 2 {
		if k := n.Content[i].Value; exprForms[k] {
			form = k
			break
		}
	}
	switch form {
	case "int":
		f, err := fields(n, "int")
		if err != nil {
			return nil, err
		}
		s, err := scalar(f["int"], "int")
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, nodeErr(f["int"], "invalid integer "+s)
		}
		return construct.Int(v), nil

	case "var":
		f, err := fields(n, "var")
		if err != nil {
			return nil, err
		}
		name, err := scalar(f["var"], "var")
		if err != nil {
			return nil, err
		}
		return construct.Var(name), nil

	case "let":
		f, err := fields(n, "let", "value", "in")
		if err != nil {
			return nil, err
		}
		name, err := scalar(f["let"], "let")
		if err != nil {
			return nil, err
		}
		value, body, err := decodePair(n, f, "value", "in")
		if err != nil {
			return nil, err
		}
		return construct.Let(name, value, body), nil

	case "fn":
		f, err := fields(n, "fn", "body")
		if err != nil {
			return nil, err
		}
		params := f["fn"]
		if params.Kind != yaml.SequenceNode {
			return nil, nodeErr(params, "fn must be a sequence of parameter names")
		}
		names := make([]string, len(params.Content))
		for i, p := range params.Content {
			if names[i], err = scalar(p, "parameter"); err != nil {
				return nil, err
			}
		}
		if f["body"] == nil {
			return nil, nodeErr(n, "fn requires a body")
		}
		body, err := decodeExpr(f["body"])
		if err != nil {
			return nil, err
		}
		return construct.Func(names, body), nil

	case "call":
		f, err := fields(n, "call", "args")
		if err != nil {
			return nil, err
		}
		fn, err := decodeExpr(f["call"])
		if err != nil {
			return nil, err
		}
		var args []ast.Expr
		if argsNode := f["args"]; argsNode != nil {
			if argsNode.Kind != yaml.SequenceNode {
				return nil, nodeErr(argsNode, "args must be a sequence of expressions")
			}
			args = make([]ast.Expr, len(argsNode.Content))
			for i, a := range argsNode.Content {
				if args[i], err = decodeExpr(a); err != nil {
					return nil, err
				}
			}
		}
		return construct.Call(fn, args...), nil

	default:
		return nil, nodeErr(n, "unknown expression form "+form)
	}
}

func decodePair(n *yaml.Node, f map[string]*yaml.Node, first, second string) (ast.Expr, ast.Expr, error) {
	if f[first] == nil || f[second] == nil {
		return nil, nil, nodeErr(n, "expected fields "+first+" and "+second)
	}
	a, err := decodeExpr(f[first])
	if err != nil {
		return nil, nil, err
	}
	b, err := decodeExpr(f[second])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func decodeType(arena *types.Arena, n *yaml.Node, vars map[string]types.Term) (types.Term, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		name, err := scalar(n, "type")
		if err != nil {
			return types.NoTerm, err
		}
		if r, _ := utf8.DecodeRuneInString(name); !unicode.IsLower(r) {
			return arena.NewConst(name), nil
		}
		tv, ok := vars[name]
		if !ok {
			tv = arena.NewVar()
			vars[name] = tv
		}
		return tv, nil

	case yaml.MappingNode:
		f, err := fields(n, "con", "args", "result")
		if err != nil {
			return types.NoTerm, err
		}
		if f["con"] == nil {
			return types.NoTerm, nodeErr(n, "type application requires con")
		}
		name, err := scalar(f["con"], "con")
		if err != nil {
			return types.NoTerm, err
		}
		lb := types.NewTermListBuilder()
		if argsNode := f["args"]; argsNode != nil {
			if argsNode.Kind != yaml.SequenceNode {
				return types.NoTerm, nodeErr(argsNode, "args must be a sequence of types")
			}
			for _, a := range argsNode.Content {
				t, err := decodeType(arena, a, vars)
				if err != nil {
					return types.NoTerm, err
				}
				lb.Append(t)
			}
		}
		switch {
		case name == types.FunctionName && f["result"] == nil:
			return types.NoTerm, nodeErr(n, "function type requires result")
		case name != types.FunctionName && f["result"] != nil:
			return types.NoTerm, nodeErr(f["result"], "only function types may have a result")
		}
		result := types.NoTerm
		if f["result"] != nil {
			if result, err = decodeType(arena, f["result"], vars); err != nil {
				return types.NoTerm, err
			}
		}
		return arena.NewApp(name, lb.Build(), result), nil
	}
	return types.NoTerm, nodeErr(n, "expected a type")
}
