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

// Command hindley infers the types of small programs and prints them.
//
// Without -f, a built-in set of programs is inferred. With -f, programs and the declarations
// of their type-environment are loaded from a YAML file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/hindley"
	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/internal/astutil"
	"github.com/wdamron/hindley/types"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	file    string
	format  string
	color   string
	jobs    int
	verbose bool
	dump    bool
}

// source provides programs and builds their shared type-environment within an arena.
type source struct {
	programs []astutil.Program
	env      func(*types.Arena) (types.TypeEnv, error)
}

type result struct {
	Name    string             `json:"name" yaml:"name"`
	Expr    string             `json:"expr" yaml:"expr"`
	Type    string             `json:"type,omitempty" yaml:"type,omitempty"`
	Tree    *types.Description `json:"tree,omitempty" yaml:"tree,omitempty"`
	Error   string             `json:"error,omitempty" yaml:"error,omitempty"`
	Invalid string             `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("hindley", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "f", "", "YAML file of programs to infer (default: built-in programs)")
	fs.StringVar(&opts.format, "format", "text", "output format: text, json, or yaml")
	fs.StringVar(&opts.color, "color", "auto", "color failures: auto, always, or never")
	fs.IntVar(&opts.jobs, "j", runtime.GOMAXPROCS(0), "number of programs to infer in parallel")
	fs.BoolVar(&opts.verbose, "v", false, "log inference at debug level")
	fs.BoolVar(&opts.dump, "dump", false, "dump the inferred type trees to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	switch opts.format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", opts.format)
		return exitUsage
	}
	switch opts.color {
	case "auto", "always", "never":
	default:
		fmt.Fprintf(stderr, "unknown color mode %q\n", opts.color)
		return exitUsage
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src := builtin()
	if opts.file != "" {
		ps, err := astutil.LoadFile(opts.file)
		if err != nil {
			logger.Error("failed to load programs", "file", opts.file, "err", err)
			return exitUsage
		}
		src = source{programs: ps.Programs, env: ps.Env}
	}

	results, err := inferAll(context.Background(), src, opts, logger, stderr)
	if err != nil {
		logger.Error("inference aborted", "err", err)
		return exitUsage
	}

	if err := render(stdout, opts, results); err != nil {
		logger.Error("failed to write results", "err", err)
		return exitUsage
	}
	for _, r := range results {
		if r.Error != "" {
			return exitFailed
		}
	}
	return exitOK
}

// inferAll infers each program within its own arena. Results are ordered as the programs are.
func inferAll(ctx context.Context, src source, opts options, logger *slog.Logger, stderr io.Writer) ([]result, error) {
	results := make([]result, len(src.programs))
	var dumpMu sync.Mutex
	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)
	for i, p := range src.programs {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			arena := types.NewArena()
			env, err := src.env(arena)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			ti := hindley.NewContext(arena)
			ti.SetLogger(logger.With("program", p.Name))

			r := result{Name: p.Name, Expr: ast.ExprString(p.Expr)}
			t, err := ti.Infer(p.Expr, env)
			if err != nil {
				r.Error = err.Error()
				if invalid := ti.InvalidExpr(); invalid != nil {
					r.Invalid = ast.ExprString(invalid)
				}
			} else {
				r.Type = types.TypeString(arena, t)
				if opts.format != "text" {
					r.Tree = types.Describe(arena, t)
				}
				if opts.dump {
					dumpMu.Lock()
					fmt.Fprintf(stderr, "%s: %d terms\n", p.Name, arena.Len())
					dumper.Fdump(stderr, types.Describe(arena, t))
					dumpMu.Unlock()
				}
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func render(w io.Writer, opts options, results []result) error {
	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	color := useColor(w, opts.color)
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Name, r.Expr); err != nil {
			return err
		}
		var err error
		switch {
		case r.Error == "":
			_, err = fmt.Fprintf(w, "  : %s\n", r.Type)
		case color:
			_, err = fmt.Fprintf(w, "  \x1b[31merror: %s\x1b[0m\n", r.Error)
		default:
			_, err = fmt.Fprintf(w, "  error: %s\n", r.Error)
		}
		if err != nil {
			return err
		}
		if r.Invalid != "" && r.Invalid != r.Expr {
			if _, err := fmt.Fprintf(w, "  at: %s\n", r.Invalid); err != nil {
				return err
			}
		}
	}
	return nil
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
