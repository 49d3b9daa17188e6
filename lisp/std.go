package lisp

import (
	"errors"
	"os"
)

// LoadStdLibrary binds the standard primitives into scope.  The reader is
// handed to load as its opaque parameter; passing a nil reader leaves load
// installed but unable to do anything useful.
func LoadStdLibrary(gc *GC, scope *Scope, reader Reader) {
	native := func(name string, fun NativeFunc) {
		scope.Set(gc, gc.Symbol(name), gc.Native(fun, nil))
	}

	native("car", builtinCar)
	native("cdr", builtinCdr)
	native(">", builtinGreaterThan)
	native("+", builtinPlus)
	native("-", builtinMinus)
	native("*", builtinMul)
	native("list", builtinList)
	native("assoc", builtinAssoc)
	native("append", builtinAppend)
	native("equal", builtinEqual)

	// Special forms, up to quasiquote.  The evaluator passes these their
	// arguments unevaluated (see IsSpecial); unquote is not one of them and
	// receives evaluated arguments.
	native("set", builtinSet)
	native("quote", builtinQuote)
	native("begin", builtinBegin)
	native("defun", builtinDefun)
	native("when", builtinWhen)
	native("lambda", builtinLambda)
	native("λ", builtinLambda)
	native("quasiquote", builtinQuasiquote)
	native("unquote", builtinUnquote)

	scope.Set(gc, gc.Symbol("load"), gc.Native(builtinLoad, reader))

	scope.Set(gc, gc.Symbol("t"), gc.T())
	scope.Set(gc, gc.Symbol("nil"), gc.Nil())
}

func builtinCar(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var xs Expr
	result := MatchList(gc, "e", args, &xs)
	if result.IsError {
		return result
	}
	if IsNil(xs) {
		return EvalSuccess(xs)
	}
	if !IsCons(xs) {
		return WrongArgumentType(gc, "consp", xs)
	}
	return EvalSuccess(xs.Cons.Car)
}

func builtinCdr(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var xs Expr
	result := MatchList(gc, "e", args, &xs)
	if result.IsError {
		return result
	}
	if IsNil(xs) {
		return EvalSuccess(xs)
	}
	if !IsCons(xs) {
		return WrongArgumentType(gc, "consp", xs)
	}
	return EvalSuccess(xs.Cons.Cdr)
}

// asReal promotes an integer to a real and passes reals through.
func asReal(gc *GC, a Expr) EvalResult {
	if IsReal(a) {
		return EvalSuccess(a)
	}
	if IsInteger(a) {
		return EvalSuccess(gc.Real(float32(a.Atom.Num)))
	}
	return WrongArgumentType(gc, "(or realp integerp)", a)
}

func greaterThan2(gc *GC, a, b Expr) EvalResult {
	if IsInteger(a) && IsInteger(b) {
		return EvalSuccess(gc.Bool(a.Atom.Num > b.Atom.Num))
	}
	ra := asReal(gc, a)
	if ra.IsError {
		return ra
	}
	rb := asReal(gc, b)
	if rb.IsError {
		return rb
	}
	return EvalSuccess(gc.Bool(ra.Expr.Atom.Real > rb.Expr.Atom.Real))
}

func builtinGreaterThan(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	if !IsCons(args) {
		return WrongArgumentType(gc, "consp", args)
	}

	x1 := args.Cons.Car
	rest := args.Cons.Cdr

	sorted := true
	for !IsNil(rest) && sorted {
		if !IsCons(rest) {
			return WrongArgumentType(gc, "consp", rest)
		}
		x2 := rest.Cons.Car
		rest = rest.Cons.Cdr

		result := greaterThan2(gc, x1, x2)
		if result.IsError {
			return result
		}
		sorted = sorted && !IsNil(result.Expr)
		x1 = x2
	}
	return EvalSuccess(gc.Bool(sorted))
}

func plus2(gc *GC, a, b Expr) EvalResult {
	if IsInteger(a) && IsInteger(b) {
		return EvalSuccess(gc.Integer(a.Atom.Num + b.Atom.Num))
	}
	ra := asReal(gc, a)
	if ra.IsError {
		return ra
	}
	rb := asReal(gc, b)
	if rb.IsError {
		return rb
	}
	return EvalSuccess(gc.Real(ra.Expr.Atom.Real + rb.Expr.Atom.Real))
}

func builtinPlus(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	acc := gc.Integer(0)
	for !IsNil(args) {
		if !IsCons(args) {
			return WrongArgumentType(gc, "consp", args)
		}
		result := plus2(gc, acc, args.Cons.Car)
		if result.IsError {
			return result
		}
		acc = result.Expr
		args = args.Cons.Cdr
	}
	return EvalSuccess(acc)
}

func sub2(gc *GC, a, b Expr) EvalResult {
	if IsInteger(a) && IsInteger(b) {
		return EvalSuccess(gc.Integer(a.Atom.Num - b.Atom.Num))
	}
	ra := asReal(gc, a)
	if ra.IsError {
		return ra
	}
	rb := asReal(gc, b)
	if rb.IsError {
		return rb
	}
	return EvalSuccess(gc.Real(ra.Expr.Atom.Real - rb.Expr.Atom.Real))
}

// builtinMinus subtracts every remaining argument from the first.  A single
// argument is negated.
func builtinMinus(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	if !IsCons(args) {
		return WrongArgumentType(gc, "consp", args)
	}

	acc := args.Cons.Car
	rest := args.Cons.Cdr
	if IsNil(rest) {
		return sub2(gc, gc.Integer(0), acc)
	}
	for !IsNil(rest) {
		if !IsCons(rest) {
			return WrongArgumentType(gc, "consp", rest)
		}
		result := sub2(gc, acc, rest.Cons.Car)
		if result.IsError {
			return result
		}
		acc = result.Expr
		rest = rest.Cons.Cdr
	}
	return EvalSuccess(acc)
}

func mul2(gc *GC, a, b Expr) EvalResult {
	if IsInteger(a) && IsInteger(b) {
		return EvalSuccess(gc.Integer(a.Atom.Num * b.Atom.Num))
	}
	ra := asReal(gc, a)
	if ra.IsError {
		return ra
	}
	rb := asReal(gc, b)
	if rb.IsError {
		return rb
	}
	return EvalSuccess(gc.Real(ra.Expr.Atom.Real * rb.Expr.Atom.Real))
}

func builtinMul(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	acc := gc.Integer(1)
	for !IsNil(args) {
		if !IsCons(args) {
			return WrongArgumentType(gc, "consp", args)
		}
		result := mul2(gc, acc, args.Cons.Car)
		if result.IsError {
			return result
		}
		acc = result.Expr
		args = args.Cons.Cdr
	}
	return EvalSuccess(acc)
}

func builtinList(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	return EvalSuccess(args)
}

func builtinAssoc(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var key, alist Expr
	result := MatchList(gc, "ee", args, &key, &alist)
	if result.IsError {
		return result
	}
	return EvalSuccess(Assoc(key, alist))
}

func builtinAppend(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	if IsNil(args) {
		return EvalSuccess(args)
	}
	return appendAll(gc, args)
}

// appendAll concatenates the argument lists.  The final argument becomes the
// tail of the result, so it need not be a proper list.
func appendAll(gc *GC, xs Expr) EvalResult {
	var x, rest Expr
	result := MatchList(gc, "e*", xs, &x, &rest)
	if result.IsError {
		return result
	}
	if IsNil(rest) {
		return EvalSuccess(x)
	}
	if !IsList(x) {
		return WrongArgumentType(gc, "listp", x)
	}

	tail := appendAll(gc, rest)
	if tail.IsError {
		return tail
	}
	return EvalSuccess(appendOnto(gc, x, tail.Expr))
}

func appendOnto(gc *GC, x, tail Expr) Expr {
	if IsNil(x) {
		return tail
	}
	return gc.Cons(x.Cons.Car, appendOnto(gc, x.Cons.Cdr, tail))
}

func builtinEqual(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var obj1, obj2 Expr
	result := MatchList(gc, "ee", args, &obj1, &obj2)
	if result.IsError {
		return result
	}
	return EvalSuccess(gc.Bool(Equal(obj1, obj2)))
}

func builtinSet(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var nameExpr, value Expr
	result := MatchList(gc, "ee", args, &nameExpr, &value)
	if result.IsError {
		return result
	}

	// set receives its arguments unevaluated, so the name is either a bare
	// symbol or the (quote name) form the reader produces for 'name.
	name, ok := setTargetName(nameExpr)
	if !ok {
		return WrongArgumentType(gc, "symbolp", nameExpr)
	}

	result = Eval(gc, scope, value)
	if result.IsError {
		return result
	}
	scope.Set(gc, gc.Symbol(name), result.Expr)
	return result
}

func setTargetName(expr Expr) (string, bool) {
	if IsSymbol(expr) {
		return expr.Atom.Str, true
	}
	if IsCons(expr) && IsSymbol(expr.Cons.Car) && expr.Cons.Car.Atom.Str == "quote" &&
		IsCons(expr.Cons.Cdr) && IsSymbol(expr.Cons.Cdr.Cons.Car) && IsNil(expr.Cons.Cdr.Cons.Cdr) {
		return expr.Cons.Cdr.Cons.Car.Atom.Str, true
	}
	return "", false
}

func builtinQuote(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var expr Expr
	result := MatchList(gc, "e", args, &expr)
	if result.IsError {
		return result
	}
	return EvalSuccess(expr)
}

func builtinBegin(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var block Expr
	result := MatchList(gc, "*", args, &block)
	if result.IsError {
		return result
	}
	return EvalBlock(gc, scope, block)
}

func builtinDefun(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var name, argsList, body Expr
	result := MatchList(gc, "ee*", args, &name, &argsList, &body)
	if result.IsError {
		return result
	}
	if !IsListOfSymbols(argsList) {
		return WrongArgumentType(gc, "list-of-symbolsp", argsList)
	}

	lambda := gc.Lambda(argsList, body, scope.Expr)
	return Eval(gc, scope, gc.List("qee", "set", name, lambda))
}

func builtinWhen(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var condition, body Expr
	result := MatchList(gc, "e*", args, &condition, &body)
	if result.IsError {
		return result
	}

	result = Eval(gc, scope, condition)
	if result.IsError {
		return result
	}
	if !IsNil(result.Expr) {
		return EvalBlock(gc, scope, body)
	}
	return EvalSuccess(gc.Nil())
}

func builtinLambda(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var argsList, body Expr
	result := MatchList(gc, "e*", args, &argsList, &body)
	if result.IsError {
		return result
	}
	if !IsListOfSymbols(argsList) {
		return WrongArgumentType(gc, "list-of-symbolsp", argsList)
	}
	return EvalSuccess(gc.Lambda(argsList, body, scope.Expr))
}

func builtinQuasiquote(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var expr Expr
	result := MatchList(gc, "e", args, &expr)
	if result.IsError {
		return result
	}
	return quasiquoteExpand(gc, scope, expr)
}

func quasiquoteExpand(gc *GC, scope *Scope, expr Expr) EvalResult {
	var unquote string
	var unquoted Expr
	result := MatchList(gc, "qe", expr, &unquote, &unquoted)
	if !result.IsError && unquote == "unquote" {
		return Eval(gc, scope, unquoted)
	}

	if IsCons(expr) {
		left := quasiquoteExpand(gc, scope, expr.Cons.Car)
		if left.IsError {
			return left
		}
		right := quasiquoteExpand(gc, scope, expr.Cons.Cdr)
		if right.IsError {
			return right
		}
		return EvalSuccess(gc.Cons(left.Expr, right.Expr))
	}
	return EvalSuccess(expr)
}

func builtinUnquote(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	return EvalFailure(gc.String("Using unquote outside of quasiquote."))
}

func builtinLoad(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult {
	var filename string
	result := MatchList(gc, "s", args, &filename)
	if result.IsError {
		return result
	}

	reader, ok := param.(Reader)
	if !ok || reader == nil {
		return NotImplemented(gc)
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return ReadErrorResult(gc, err.Error(), 0)
	}

	block, err := reader.ReadAll(gc, string(source))
	if err != nil {
		var rerr *ReadError
		if errors.As(err, &rerr) {
			return ReadErrorResult(gc, rerr.Message, rerr.Pos)
		}
		return ReadErrorResult(gc, err.Error(), 0)
	}
	return EvalBlock(gc, scope, block)
}
