// Package lisptest provides a table driven test harness that runs source
// expressions through the reader and evaluator the way the REPL driver does,
// collecting garbage before every top-level read.
package lisptest

import (
	"testing"

	"github.com/urejgi/first-interpreter/lisp"
	"github.com/urejgi/first-interpreter/parser"
)

// TestSequence is a sequence of lisp expressions evaluated in order against
// a single environment.  Result is the printed form of the evaluated value;
// evaluation errors are values too and compare by their printed form.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		gc := lisp.NewGC()
		scope := lisp.NewScope(gc)
		reader := parser.NewReader()
		lisp.LoadStdLibrary(gc, &scope, reader)

		for j, line := range test.TestSequence {
			gc.Collect(scope.Expr)

			expr, _, err := reader.ReadOne(gc, line.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: read error: %v", i, test.Name, j, err)
				continue
			}
			result := lisp.Eval(gc, &scope, expr).Expr.String()
			if result != line.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, line.Result, result)
			}
		}
	}
}
