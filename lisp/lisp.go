package lisp

import (
	"strconv"
	"strings"
)

// ExprType is the type of an Expr.
type ExprType uint

// Possible ExprType values.  ExprVoid marks a reclaimed arena slot and is
// never observable by evaluated code.
const (
	ExprVoid ExprType = iota
	ExprAtom
	ExprCons
)

var exprTypeStrings = []string{
	ExprVoid: "void",
	ExprAtom: "atom",
	ExprCons: "cons",
}

func (t ExprType) String() string {
	if int(t) >= len(exprTypeStrings) {
		return "INVALID"
	}
	return exprTypeStrings[t]
}

// AtomType is the type of an Atom.
type AtomType uint

// Possible AtomType values.
const (
	AtomSymbol AtomType = iota
	AtomInteger
	AtomReal
	AtomString
	AtomLambda
	AtomNative
)

var atomTypeStrings = []string{
	AtomSymbol:  "symbol",
	AtomInteger: "integer",
	AtomReal:    "real",
	AtomString:  "string",
	AtomLambda:  "lambda",
	AtomNative:  "native",
}

func (t AtomType) String() string {
	if int(t) >= len(atomTypeStrings) {
		return "INVALID"
	}
	return atomTypeStrings[t]
}

// Expr is a lisp value, either an atom or a cons pair.  The zero Expr is a
// void slot marker.
type Expr struct {
	Type ExprType
	Atom *Atom
	Cons *Cons
}

// Cons is an ordered pair of values, the building block of lists.
type Cons struct {
	Car Expr
	Cdr Expr
}

// Lambda is a user defined function.  Params must be a proper list of
// symbols, Body a proper list of forms, and Envir the scope value captured
// when the lambda was constructed.
type Lambda struct {
	Params Expr
	Body   Expr
	Envir  Expr
}

// NativeFunc is a function implemented by the host.  Args is the argument
// list, already evaluated unless the function was bound to a special form
// name.
type NativeFunc func(param interface{}, gc *GC, scope *Scope, args Expr) EvalResult

// Native is a host implemented callable together with an opaque parameter
// passed back on every call.
type Native struct {
	Fun   NativeFunc
	Param interface{}
}

// Atom is a scalar or callable value.
type Atom struct {
	Type AtomType
	Num  int64
	Real float32
	Str  string // symbol name or string contents

	Lambda Lambda
	Native Native
}

func (v Expr) String() string {
	var b strings.Builder
	v.writeSExpr(&b)
	return b.String()
}

func (v Expr) writeSExpr(b *strings.Builder) {
	switch v.Type {
	case ExprAtom:
		v.Atom.writeSExpr(b)
	case ExprCons:
		v.Cons.writeSExpr(b)
	default:
		b.WriteString("#<void>")
	}
}

func (a *Atom) writeSExpr(b *strings.Builder) {
	switch a.Type {
	case AtomSymbol:
		b.WriteString(a.Str)
	case AtomInteger:
		b.WriteString(strconv.FormatInt(a.Num, 10))
	case AtomReal:
		b.WriteString(strconv.FormatFloat(float64(a.Real), 'g', -1, 32))
	case AtomString:
		b.WriteByte('"')
		b.WriteString(a.Str)
		b.WriteByte('"')
	case AtomLambda:
		b.WriteString("<lambda>")
	case AtomNative:
		b.WriteString("<native>")
	}
}

func (c *Cons) writeSExpr(b *strings.Builder) {
	b.WriteByte('(')
	c.Car.writeSExpr(b)
	rest := c.Cdr
	for rest.Type == ExprCons {
		b.WriteByte(' ')
		rest.Cons.Car.writeSExpr(b)
		rest = rest.Cons.Cdr
	}
	if !IsNil(rest) {
		b.WriteString(" . ")
		rest.writeSExpr(b)
	}
	b.WriteByte(')')
}
