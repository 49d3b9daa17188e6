package lisp

// WrongArgumentType reports that a value of the wrong kind was received.
// The expected type is named by its predicate, e.g. "consp".
func WrongArgumentType(gc *GC, typ string, obj Expr) EvalResult {
	return EvalFailure(gc.List("qse", "wrong-argument-type", typ, obj))
}

// WrongIntegerOfArguments reports an arity mismatch with the number of
// arguments seen.
func WrongIntegerOfArguments(gc *GC, count int64) EvalResult {
	return EvalFailure(gc.Cons(
		gc.Symbol("wrong-integer-of-arguments"),
		gc.Integer(count)))
}

// NotImplemented reports a missing capability.
func NotImplemented(gc *GC) EvalResult {
	return EvalFailure(gc.Symbol("not-implemented"))
}

// ReadErrorResult surfaces a reader failure with its byte position, as
// produced by load.
func ReadErrorResult(gc *GC, message string, pos int64) EvalResult {
	return EvalFailure(gc.List("qsd", "read-error", message, pos))
}
