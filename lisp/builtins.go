package lisp

// IsNil reports whether obj is the symbol nil.
func IsNil(obj Expr) bool {
	return IsSymbol(obj) && obj.Atom.Str == "nil"
}

// IsSymbol reports whether obj is a symbol atom.
func IsSymbol(obj Expr) bool {
	return obj.Type == ExprAtom && obj.Atom.Type == AtomSymbol
}

// IsInteger reports whether obj is an integer atom.
func IsInteger(obj Expr) bool {
	return obj.Type == ExprAtom && obj.Atom.Type == AtomInteger
}

// IsReal reports whether obj is a real atom.
func IsReal(obj Expr) bool {
	return obj.Type == ExprAtom && obj.Atom.Type == AtomReal
}

// IsString reports whether obj is a string atom.
func IsString(obj Expr) bool {
	return obj.Type == ExprAtom && obj.Atom.Type == AtomString
}

// IsCons reports whether obj is a cons pair.
func IsCons(obj Expr) bool {
	return obj.Type == ExprCons
}

// IsLambda reports whether obj is a lambda atom.
func IsLambda(obj Expr) bool {
	return obj.Type == ExprAtom && obj.Atom.Type == AtomLambda
}

// IsList reports whether obj is a proper list: nil, or a cons whose cdr is a
// proper list.
func IsList(obj Expr) bool {
	for IsCons(obj) {
		obj = obj.Cons.Cdr
	}
	return IsNil(obj)
}

// IsListOfSymbols reports whether obj is a proper list whose every element is
// a symbol.
func IsListOfSymbols(obj Expr) bool {
	for IsCons(obj) {
		if !IsSymbol(obj.Cons.Car) {
			return false
		}
		obj = obj.Cons.Cdr
	}
	return IsNil(obj)
}

// LengthOfList returns the number of elements of a proper list.  The result
// is undefined on cyclic input; the reader and evaluator never produce
// cycles.
func LengthOfList(obj Expr) int64 {
	var count int64
	for IsCons(obj) {
		count++
		obj = obj.Cons.Cdr
	}
	return count
}

const realEqualEpsilon = 1e-6

// Equal reports structural equality.  Symbols and strings compare by
// contents, integers exactly, reals within a tolerance of 1e-6, lambdas and
// natives by identity.
func Equal(obj1, obj2 Expr) bool {
	if obj1.Type != obj2.Type {
		return false
	}
	switch obj1.Type {
	case ExprAtom:
		return equalAtoms(obj1.Atom, obj2.Atom)
	case ExprCons:
		return equalCons(obj1.Cons, obj2.Cons)
	}
	return true
}

func equalAtoms(atom1, atom2 *Atom) bool {
	if atom1.Type != atom2.Type {
		return false
	}
	switch atom1.Type {
	case AtomSymbol:
		return atom1.Str == atom2.Str
	case AtomInteger:
		return atom1.Num == atom2.Num
	case AtomReal:
		d := atom1.Real - atom2.Real
		return -realEqualEpsilon < d && d < realEqualEpsilon
	case AtomString:
		return atom1.Str == atom2.Str
	case AtomLambda, AtomNative:
		return atom1 == atom2
	}
	return false
}

func equalCons(cons1, cons2 *Cons) bool {
	return Equal(cons1.Car, cons2.Car) && Equal(cons1.Cdr, cons2.Cdr)
}

// Assoc returns the first cell of alist whose car equals key, or the tail of
// alist (nil for a proper list) when no cell matches.
func Assoc(key, alist Expr) Expr {
	for IsCons(alist) {
		cell := alist.Cons.Car
		if IsCons(cell) && Equal(cell.Cons.Car, key) {
			return cell
		}
		alist = alist.Cons.Cdr
	}
	return alist
}

// specialForms is the closed set of names whose applications receive their
// arguments unevaluated.
var specialForms = map[string]bool{
	"set":        true,
	"quote":      true,
	"begin":      true,
	"defun":      true,
	"lambda":     true,
	"λ":          true,
	"when":       true,
	"quasiquote": true,
}

// IsSpecial reports whether name names a special form.
func IsSpecial(name string) bool {
	return specialForms[name]
}
