package lisp

import (
	"fmt"
	"io"
	"os"
)

const gcInitialCapacity = 256

// GC is the arena that owns every allocated atom and cons cell.  All values
// enter the arena at allocation time and leave it only when a Collect pass
// finds them unreachable from the supplied root.
type GC struct {
	exprs   []Expr
	index   map[interface{}]int // *Atom or *Cons payload -> slot
	visited []bool
}

// NewGC initializes and returns a new arena.
func NewGC() *GC {
	return &GC{
		exprs: make([]Expr, 0, gcInitialCapacity),
		index: make(map[interface{}]int, gcInitialCapacity),
	}
}

func (gc *GC) register(expr Expr) Expr {
	gc.exprs = append(gc.exprs, expr)
	gc.index[payloadOf(expr)] = len(gc.exprs) - 1
	return expr
}

// payloadOf returns the identity of an expression's heap payload.  Void slots
// have no payload.
func payloadOf(expr Expr) interface{} {
	switch expr.Type {
	case ExprAtom:
		return expr.Atom
	case ExprCons:
		return expr.Cons
	}
	return nil
}

// Integer allocates an integer atom.
func (gc *GC) Integer(num int64) Expr {
	return gc.register(Expr{Type: ExprAtom, Atom: &Atom{Type: AtomInteger, Num: num}})
}

// Real allocates a real atom.
func (gc *GC) Real(x float32) Expr {
	return gc.register(Expr{Type: ExprAtom, Atom: &Atom{Type: AtomReal, Real: x}})
}

// String allocates a string atom.
func (gc *GC) String(str string) Expr {
	return gc.register(Expr{Type: ExprAtom, Atom: &Atom{Type: AtomString, Str: str}})
}

// Symbol allocates a symbol atom.
func (gc *GC) Symbol(sym string) Expr {
	return gc.register(Expr{Type: ExprAtom, Atom: &Atom{Type: AtomSymbol, Str: sym}})
}

// Cons allocates a cons cell.
func (gc *GC) Cons(car, cdr Expr) Expr {
	return gc.register(Expr{Type: ExprCons, Cons: &Cons{Car: car, Cdr: cdr}})
}

// Lambda allocates a lambda atom capturing the scope value envir.
func (gc *GC) Lambda(params, body, envir Expr) Expr {
	return gc.register(Expr{Type: ExprAtom, Atom: &Atom{
		Type:   AtomLambda,
		Lambda: Lambda{Params: params, Body: body, Envir: envir},
	}})
}

// Native allocates a native atom wrapping a host function.  Param is handed
// back opaquely on every call.
func (gc *GC) Native(fun NativeFunc, param interface{}) Expr {
	return gc.register(Expr{Type: ExprAtom, Atom: &Atom{
		Type:   AtomNative,
		Native: Native{Fun: fun, Param: param},
	}})
}

// Nil allocates the symbol nil, which doubles as the empty list and the
// canonical false.
func (gc *GC) Nil() Expr {
	return gc.Symbol("nil")
}

// T allocates the symbol t, the canonical truth value.
func (gc *GC) T() Expr {
	return gc.Symbol("t")
}

// Bool returns t when condition holds and nil otherwise.
func (gc *GC) Bool(condition bool) Expr {
	if condition {
		return gc.T()
	}
	return gc.Nil()
}

// List builds a proper list from a format string, one directive per element:
// 'd' takes an int64, 's' a string atom, 'q' a symbol and 'e' any Expr.
func (gc *GC) List(format string, args ...interface{}) Expr {
	if len(format) != len(args) {
		panic(fmt.Sprintf("lisp: list format %q does not cover %d arguments", format, len(args)))
	}
	list := gc.Nil()
	for i := len(format) - 1; i >= 0; i-- {
		var x Expr
		switch format[i] {
		case 'd':
			x = gc.Integer(args[i].(int64))
		case 's':
			x = gc.String(args[i].(string))
		case 'q':
			x = gc.Symbol(args[i].(string))
		case 'e':
			x = args[i].(Expr)
		default:
			panic(fmt.Sprintf("lisp: invalid list format directive %q", format[i]))
		}
		list = gc.Cons(x, list)
	}
	return list
}

// Live returns the number of occupied arena slots.
func (gc *GC) Live() int {
	n := 0
	for _, expr := range gc.exprs {
		if expr.Type != ExprVoid {
			n++
		}
	}
	return n
}

// Collect reclaims every arena value not reachable from root.  It must only
// be called between top-level evaluations; no partially constructed value may
// be live outside of root when it runs.
func (gc *GC) Collect(root Expr) {
	// Compact the void slots left behind by the previous sweep and rebuild
	// the payload index.
	live := gc.exprs[:0]
	for _, expr := range gc.exprs {
		if expr.Type != ExprVoid {
			live = append(live, expr)
		}
	}
	gc.exprs = live
	gc.index = make(map[interface{}]int, len(gc.exprs))
	for i, expr := range gc.exprs {
		gc.index[payloadOf(expr)] = i
	}

	// Clear marks.
	if cap(gc.visited) < len(gc.exprs) {
		gc.visited = make([]bool, len(gc.exprs))
	}
	gc.visited = gc.visited[:len(gc.exprs)]
	for i := range gc.visited {
		gc.visited[i] = false
	}

	gc.traverse(root)

	// Sweep.  Unmarked slots are voided in place; the slot itself survives
	// until the next Collect compacts it.
	for i := range gc.exprs {
		if !gc.visited[i] {
			delete(gc.index, payloadOf(gc.exprs[i]))
			gc.exprs[i] = Expr{Type: ExprVoid}
		}
	}
}

// traverse marks every expression reachable from root.  Reaching a value that
// was never registered with the arena is a host programming error.
func (gc *GC) traverse(root Expr) {
	if root.Type == ExprVoid {
		panic("lisp: gc reached a void expression")
	}
	i, ok := gc.index[payloadOf(root)]
	if !ok {
		fmt.Fprintf(os.Stderr, "lisp: gc reached an unregistered expression: %v\n", root)
		panic("lisp: gc reached an unregistered expression")
	}
	if gc.visited[i] {
		return
	}
	gc.visited[i] = true

	switch {
	case root.Type == ExprCons:
		gc.traverse(root.Cons.Car)
		gc.traverse(root.Cons.Cdr)
	case root.Type == ExprAtom && root.Atom.Type == AtomLambda:
		gc.traverse(root.Atom.Lambda.Params)
		gc.traverse(root.Atom.Lambda.Body)
		gc.traverse(root.Atom.Lambda.Envir)
	}
}

// Inspect writes a compact map of the arena to w, one character per slot: a
// plus for an occupied slot and a dot for a void one.
func (gc *GC) Inspect(w io.Writer) {
	for _, expr := range gc.exprs {
		if expr.Type == ExprVoid {
			fmt.Fprint(w, ".")
		} else {
			fmt.Fprint(w, "+")
		}
	}
	fmt.Fprintln(w)
}
