// Package execute runs Go code blocks in a persistent interpreter
// session so later blocks see state from earlier ones.
package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// ErrEval indicates a code block failed to evaluate.
var ErrEval = errors.New("evaluation failed")

// Runner evaluates code blocks and returns their captured output.
type Runner interface {
	Run(ctx context.Context, code string) (string, error)
}

// GoRunner evaluates Go code with yaegi. The interpreter is created
// once and reused for every block, so bindings, imports and other
// state persist across Run calls. Not safe for concurrent use; the
// pipeline evaluates blocks strictly in document order.
type GoRunner struct {
	interp *interp.Interpreter
	stdout *bytes.Buffer
}

// NewGoRunner creates a GoRunner with the standard library available
// to interpreted code.
func NewGoRunner() (*GoRunner, error) {
	var buf bytes.Buffer
	i := interp.New(interp.Options{Stdout: &buf, Stderr: &buf})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("loading interpreter symbols: %w", err)
	}
	return &GoRunner{interp: i, stdout: &buf}, nil
}

// Run evaluates one code block and returns its captured output.
//
// Output is everything the block wrote to stdout/stderr. When the
// block writes nothing and its final line is a plain expression, the
// expression's value is rendered instead, REPL-style, so a block
// containing just "1+1" yields "2".
func (r *GoRunner) Run(ctx context.Context, code string) (string, error) {
	r.stdout.Reset()

	var (
		v   reflect.Value
		err error
	)
	for _, unit := range splitEvalUnits(code) {
		v, err = r.interp.EvalWithContext(ctx, unit)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEval, err)
		}
	}

	out := r.stdout.String()
	if out == "" && v.IsValid() && endsWithExpression(code) {
		out = fmt.Sprintf("%v\n", v)
	}
	return out, nil
}

// splitEvalUnits cuts a block into pieces the interpreter accepts in a
// single Eval. A source whose first top-level item is a declaration is
// parsed in declaration-only mode, so a block that opens with
// `var last int` and continues with statements (the natural way a
// tutorial reads) is a parse error when fed whole. Cutting at every
// top-level transition between declarations and statements sidesteps
// the restriction; the shared session makes the pieces compose.
func splitEvalUnits(code string) []string {
	items := topLevelItems(code)
	if len(items) < 2 {
		return []string{code}
	}

	lines := strings.Split(code, "\n")
	var (
		units []string
		start = 0
		decl  = items[0].decl
	)
	for _, it := range items[1:] {
		if it.decl == decl {
			continue
		}
		units = append(units, strings.Join(lines[start:it.line-1], "\n"))
		start = it.line - 1
		decl = it.decl
	}
	return append(units, strings.Join(lines[start:], "\n"))
}

// topLevelItem marks the first line of a top-level declaration or
// statement within a block.
type topLevelItem struct {
	line int // 1-based
	decl bool
}

// topLevelItems scans the block and records where each brace-depth-zero
// item begins. Tokenizing (rather than prefix-matching lines) keeps
// braces inside strings and comments from confusing the depth count.
func topLevelItems(code string) []topLevelItem {
	src := []byte(code)
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, src, nil, 0)

	var (
		items   []topLevelItem
		depth   int
		atStart = true
	)
	for {
		pos, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
		switch tok {
		case token.LBRACE, token.LPAREN, token.LBRACK:
			depth++
			continue
		case token.RBRACE, token.RPAREN, token.RBRACK:
			depth--
			continue
		case token.SEMICOLON:
			if depth == 0 {
				atStart = true
			}
			continue
		}
		if atStart && depth == 0 {
			line := file.Position(pos).Line
			decl := tok == token.VAR || tok == token.CONST || tok == token.TYPE ||
				tok == token.FUNC || tok == token.IMPORT
			if len(items) == 0 || items[len(items)-1].line != line {
				items = append(items, topLevelItem{line: line, decl: decl})
			}
			atStart = false
		}
	}
	return items
}

// endsWithExpression reports whether the last non-blank line of the
// block parses as a Go expression. Statements (assignments, loops,
// declarations) do not, and their spurious evaluation values are
// never rendered.
func endsWithExpression(code string) bool {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		// A closing brace ends a statement, not an expression.
		if strings.HasSuffix(line, "}") {
			return false
		}
		_, err := parser.ParseExpr(line)
		return err == nil
	}
	return false
}
