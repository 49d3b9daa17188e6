package repl

import (
	"fmt"
	"os"

	"github.com/urejgi/first-interpreter/lisp"
)

// LoadReplRuntime binds the REPL-only natives: quit, print, scope and
// gc-inspect.
func LoadReplRuntime(gc *lisp.GC, scope *lisp.Scope) {
	scope.Set(gc, gc.Symbol("quit"), gc.Native(nativeQuit, nil))
	scope.Set(gc, gc.Symbol("gc-inspect"), gc.Native(nativeGcInspect, nil))
	scope.Set(gc, gc.Symbol("scope"), gc.Native(nativeScope, nil))
	scope.Set(gc, gc.Symbol("print"), gc.Native(nativePrint, nil))
}

func nativeQuit(param interface{}, gc *lisp.GC, scope *lisp.Scope, args lisp.Expr) lisp.EvalResult {
	os.Exit(0)
	return lisp.EvalSuccess(gc.Nil())
}

func nativeGcInspect(param interface{}, gc *lisp.GC, scope *lisp.Scope, args lisp.Expr) lisp.EvalResult {
	gc.Inspect(os.Stdout)
	return lisp.EvalSuccess(gc.Nil())
}

func nativeScope(param interface{}, gc *lisp.GC, scope *lisp.Scope, args lisp.Expr) lisp.EvalResult {
	return lisp.EvalSuccess(scope.Expr)
}

func nativePrint(param interface{}, gc *lisp.GC, scope *lisp.Scope, args lisp.Expr) lisp.EvalResult {
	var s string
	result := lisp.MatchList(gc, "s", args, &s)
	if result.IsError {
		return result
	}
	fmt.Println(s)
	return lisp.EvalSuccess(gc.Nil())
}
