package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urejgi/first-interpreter/lisp"
	"github.com/urejgi/first-interpreter/parser"
)

// RunRepl runs the interactive read-eval-print loop until EOF or (quit).
func RunRepl(prompt string) {
	gc := lisp.NewGC()
	scope := lisp.NewScope(gc)
	reader := parser.NewReader()
	lisp.LoadStdLibrary(gc, &scope, reader)
	LoadReplRuntime(gc, &scope)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return
		}
		EvalSource(gc, &scope, reader, os.Stdout, line)
	}
}

// EvalSource reads and evaluates every top-level form in source, printing
// each result to w.  The collector runs before each top-level read, rooted
// at the current scope; evaluation errors are printed to stderr and stop the
// remainder of the source.
func EvalSource(gc *lisp.GC, scope *lisp.Scope, reader lisp.Reader, w io.Writer, source string) {
	rest := strings.TrimSpace(source)
	for rest != "" {
		gc.Collect(scope.Expr)

		expr, n, err := reader.ReadOne(gc, rest)
		if err != nil {
			errln(err)
			return
		}

		result := lisp.Eval(gc, scope, expr)
		if result.IsError {
			errf("Error:\t%v\n", result.Expr)
			return
		}
		if w != nil {
			fmt.Fprintln(w, result.Expr)
		}

		rest = strings.TrimSpace(rest[n:])
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
