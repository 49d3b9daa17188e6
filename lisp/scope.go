package lisp

// Scope is a lexical environment: a cons-list of frames, each frame an
// association list of (name . value) cells.  The outermost cons is the
// scope's spine.  Closures capture the spine cons itself, so mutation of the
// global frame must preserve its identity.
//
//	(((y . 20))
//	 ((x . 10)
//	  (name . "Alexey")))
type Scope struct {
	Expr Expr
}

// NewScope returns a scope holding a single empty frame.  The cons allocated
// here is the spine shared by every closure that captures the scope.
func NewScope(gc *GC) Scope {
	return Scope{Expr: gc.Cons(gc.Nil(), gc.Nil())}
}

// Get returns the binding cell (name . value) for name, searching frames
// innermost first, or nil when name is unbound.  Callers take the cell's cdr
// for the bound value.
func (scope *Scope) Get(name Expr) Expr {
	return getScopeValue(scope.Expr, name)
}

func getScopeValue(scope, name Expr) Expr {
	if IsCons(scope) {
		cell := Assoc(name, scope.Cons.Car)
		if IsNil(cell) {
			return getScopeValue(scope.Cons.Cdr, name)
		}
		return cell
	}
	return scope
}

// Set binds name to value.  An existing binding cell in any frame is mutated
// in place.  Otherwise the binding is prepended to the global frame by
// mutating the spine cons's car, preserving the spine identity so that
// previously captured closures observe the new binding.
func (scope *Scope) Set(gc *GC, name, value Expr) {
	scope.Expr = setScopeValue(gc, scope.Expr, name, value)
}

func setScopeValue(gc *GC, scope, name, value Expr) Expr {
	if IsCons(scope) {
		cell := Assoc(name, scope.Cons.Car)
		switch {
		case !IsNil(cell):
			cell.Cons.Cdr = value
		case IsNil(scope.Cons.Cdr):
			// The global frame.  Prepend the new cell through the spine cons
			// rather than replacing it.
			scope.Cons.Car = gc.Cons(gc.Cons(name, value), scope.Cons.Car)
		default:
			setScopeValue(gc, scope.Cons.Cdr, name, value)
		}
		return scope
	}
	return gc.Cons(gc.Cons(gc.Cons(name, value), gc.Nil()), scope)
}

// PushFrame pushes a frame pairing vars with args element-wise.  Pairing
// stops when either list is exhausted; the evaluator checks arity before
// calling.
func (scope *Scope) PushFrame(gc *GC, vars, args Expr) {
	frame := gc.Nil()
	for !IsNil(vars) && !IsNil(args) {
		frame = gc.Cons(gc.Cons(vars.Cons.Car, args.Cons.Car), frame)
		vars = vars.Cons.Cdr
		args = args.Cons.Cdr
	}
	scope.Expr = gc.Cons(frame, scope.Expr)
}

// PopFrame removes the innermost frame.  Popping an empty scope is a no-op.
func (scope *Scope) PopFrame() {
	if !IsNil(scope.Expr) {
		scope.Expr = scope.Expr.Cons.Cdr
	}
}
