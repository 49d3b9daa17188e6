package lisp

import "fmt"

// MatchList destructures the list xs against a format of single character
// directives, binding one output pointer per directive:
//
//	d  integer atom   *int64
//	f  real atom      *float32
//	s  string atom    *string
//	q  symbol atom    *string
//	e  any value      *Expr
//	*  remaining list *Expr (ends consumption; matches nil as well)
//
// A nil output pointer discards the matched element.  A directive applied to
// an element of the wrong kind fails with wrong-argument-type; leftover
// directives or leftover elements fail with wrong-integer-of-arguments
// reporting the number of elements seen.  Passing an output of the wrong
// pointer type is a host programming error.
func MatchList(gc *GC, format string, xs Expr, dst ...interface{}) EvalResult {
	count := LengthOfList(xs)
	pop := func(dir byte) interface{} {
		if len(dst) == 0 {
			panic(fmt.Sprintf("lisp: match format %q has no output for directive %q", format, dir))
		}
		p := dst[0]
		dst = dst[1:]
		return p
	}

	i := 0
	for i < len(format) && !IsNil(xs) {
		if !IsCons(xs) {
			return WrongArgumentType(gc, "consp", xs)
		}
		x := xs.Cons.Car

		switch format[i] {
		case 'd':
			if !IsInteger(x) {
				return WrongArgumentType(gc, "integerp", x)
			}
			if p := pop('d'); p != nil {
				*p.(*int64) = x.Atom.Num
			}
		case 'f':
			if !IsReal(x) {
				return WrongArgumentType(gc, "realp", x)
			}
			if p := pop('f'); p != nil {
				*p.(*float32) = x.Atom.Real
			}
		case 's':
			if !IsString(x) {
				return WrongArgumentType(gc, "stringp", x)
			}
			if p := pop('s'); p != nil {
				*p.(*string) = x.Atom.Str
			}
		case 'q':
			if !IsSymbol(x) {
				return WrongArgumentType(gc, "symbolp", x)
			}
			if p := pop('q'); p != nil {
				*p.(*string) = x.Atom.Str
			}
		case 'e':
			if p := pop('e'); p != nil {
				*p.(*Expr) = x
			}
		case '*':
			if p := pop('*'); p != nil {
				*p.(*Expr) = xs
			}
			xs = gc.Nil()
		default:
			panic(fmt.Sprintf("lisp: invalid match directive %q", format[i]))
		}

		i++
		if !IsNil(xs) {
			xs = xs.Cons.Cdr
		}
	}

	// A trailing star also matches an already exhausted list.
	if i < len(format) && format[i] == '*' && IsNil(xs) {
		if p := pop('*'); p != nil {
			*p.(*Expr) = gc.Nil()
		}
		i++
	}

	if i < len(format) || !IsNil(xs) {
		return WrongIntegerOfArguments(gc, count)
	}
	return EvalSuccess(gc.Nil())
}
