package lisp

// EvalResult is the outcome of an evaluation step.  Failures are ordinary
// lisp values (cons lists starting with a symbolic tag) so that they print
// through the standard printer and can be inspected by programs.
type EvalResult struct {
	IsError bool
	Expr    Expr
}

// EvalSuccess wraps expr as a successful result.
func EvalSuccess(expr Expr) EvalResult {
	return EvalResult{Expr: expr}
}

// EvalFailure wraps an error value as a failed result.
func EvalFailure(err Expr) EvalResult {
	return EvalResult{IsError: true, Expr: err}
}

// Eval evaluates expr in scope.  Atoms other than symbols evaluate to
// themselves, symbols resolve through the scope chain, and cons pairs are
// function applications.
func Eval(gc *GC, scope *Scope, expr Expr) EvalResult {
	switch expr.Type {
	case ExprAtom:
		return evalAtom(gc, scope, expr)
	case ExprCons:
		return evalFuncall(gc, scope, expr.Cons.Car, expr.Cons.Cdr)
	}
	return EvalFailure(gc.Cons(gc.Symbol("unexpected-expression"), expr))
}

func evalAtom(gc *GC, scope *Scope, expr Expr) EvalResult {
	if expr.Atom.Type != AtomSymbol {
		return EvalSuccess(expr)
	}
	cell := scope.Get(expr)
	if IsNil(cell) {
		return EvalFailure(gc.Cons(gc.Symbol("void-variable"), expr))
	}
	return EvalSuccess(cell.Cons.Cdr)
}

// evalAllArgs evaluates an argument list left-to-right, short-circuiting on
// the first failure.
func evalAllArgs(gc *GC, scope *Scope, args Expr) EvalResult {
	switch args.Type {
	case ExprAtom:
		if IsNil(args) {
			return EvalSuccess(args)
		}
		return evalAtom(gc, scope, args)
	case ExprCons:
		car := Eval(gc, scope, args.Cons.Car)
		if car.IsError {
			return car
		}
		cdr := evalAllArgs(gc, scope, args.Cons.Cdr)
		if cdr.IsError {
			return cdr
		}
		return EvalSuccess(gc.Cons(car.Expr, cdr.Expr))
	}
	return EvalFailure(gc.Cons(gc.Symbol("unexpected-expression"), args))
}

// evalFuncall applies callableExpr to argsExpr.  Arguments are passed
// unevaluated when the head is syntactically a symbol naming a special form.
func evalFuncall(gc *GC, scope *Scope, callableExpr, argsExpr Expr) EvalResult {
	callable := Eval(gc, scope, callableExpr)
	if callable.IsError {
		return callable
	}

	var args EvalResult
	if IsSymbol(callableExpr) && IsSpecial(callableExpr.Atom.Str) {
		args = EvalSuccess(argsExpr)
	} else {
		args = evalAllArgs(gc, scope, argsExpr)
	}
	if args.IsError {
		return args
	}

	if callable.Expr.Type == ExprAtom && callable.Expr.Atom.Type == AtomNative {
		native := callable.Expr.Atom.Native
		return native.Fun(native.Param, gc, scope, args.Expr)
	}
	return CallLambda(gc, callable.Expr, args.Expr)
}

// CallLambda applies a lambda to an already evaluated argument list.  The
// body evaluates in a fresh scope chained onto the lambda's captured
// environment; an empty body yields nil.
func CallLambda(gc *GC, lambda Expr, args Expr) EvalResult {
	if !IsLambda(lambda) {
		return EvalFailure(gc.Cons(gc.Symbol("expected-callable"), lambda))
	}
	if !IsList(args) {
		return EvalFailure(gc.Cons(gc.Symbol("expected-list"), args))
	}

	vars := lambda.Atom.Lambda.Params
	if LengthOfList(args) != LengthOfList(vars) {
		return EvalFailure(gc.Cons(
			gc.Symbol("wrong-integer-of-arguments"),
			gc.Integer(LengthOfList(args))))
	}

	scope := Scope{Expr: lambda.Atom.Lambda.Envir}
	scope.PushFrame(gc, vars, args)

	result := EvalSuccess(gc.Nil())
	body := lambda.Atom.Lambda.Body
	for !IsNil(body) {
		result = Eval(gc, &scope, body.Cons.Car)
		if result.IsError {
			return result
		}
		body = body.Cons.Cdr
	}
	return result
}

// EvalBlock evaluates a proper list of forms in order in the same scope and
// returns the last result, or nil for an empty block.  This is the primitive
// behind begin, when, and top-level loading.
func EvalBlock(gc *GC, scope *Scope, block Expr) EvalResult {
	if !IsList(block) {
		return WrongArgumentType(gc, "listp", block)
	}

	result := EvalSuccess(gc.Nil())
	for head := block; IsCons(head); head = head.Cons.Cdr {
		result = Eval(gc, scope, head.Cons.Car)
		if result.IsError {
			return result
		}
	}
	return result
}
