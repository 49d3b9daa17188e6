package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeLookup(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	scope.Set(gc, gc.Symbol("x"), gc.Integer(42))

	cell := scope.Get(gc.Symbol("x"))
	require.True(t, IsCons(cell))
	assert.Equal(t, "(x . 42)", cell.String())

	assert.True(t, IsNil(scope.Get(gc.Symbol("missing"))))
}

func TestScopeSetMutatesExistingCell(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	scope.Set(gc, gc.Symbol("x"), gc.Integer(1))
	cell := scope.Get(gc.Symbol("x"))
	require.True(t, IsCons(cell))

	scope.Set(gc, gc.Symbol("x"), gc.Integer(2))

	// The same cell was updated in place.
	assert.Equal(t, "(x . 2)", cell.String())
	assert.Equal(t, cell.Cons, scope.Get(gc.Symbol("x")).Cons)
}

func TestScopeFrameShadowing(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	scope.Set(gc, gc.Symbol("x"), gc.Integer(9))

	vars := gc.Cons(gc.Symbol("x"), gc.Nil())
	args := gc.Cons(gc.Integer(1), gc.Nil())
	scope.PushFrame(gc, vars, args)

	cell := scope.Get(gc.Symbol("x"))
	assert.Equal(t, "(x . 1)", cell.String())

	// Mutating the shadowing binding leaves the global binding alone.
	scope.Set(gc, gc.Symbol("x"), gc.Integer(5))
	assert.Equal(t, "(x . 5)", scope.Get(gc.Symbol("x")).String())

	scope.PopFrame()
	assert.Equal(t, "(x . 9)", scope.Get(gc.Symbol("x")).String())
}

func TestScopeGlobalSpineSharedWithClosures(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	// A closure captures the scope value before any bindings exist.
	captured := scope.Expr

	scope.Set(gc, gc.Symbol("a"), gc.Integer(1))
	scope.Set(gc, gc.Symbol("b"), gc.Integer(2))

	capturedScope := Scope{Expr: captured}
	assert.Equal(t, "(b . 2)", capturedScope.Get(gc.Symbol("b")).String())
}

func TestPushFrameDropsExcess(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	vars := gc.Cons(gc.Symbol("x"), gc.Cons(gc.Symbol("y"), gc.Nil()))
	args := gc.Cons(gc.Integer(1), gc.Nil())
	scope.PushFrame(gc, vars, args)

	assert.Equal(t, "(x . 1)", scope.Get(gc.Symbol("x")).String())
	assert.True(t, IsNil(scope.Get(gc.Symbol("y"))))
}

func TestPopFrameOnEmptyScope(t *testing.T) {
	gc := NewGC()
	scope := Scope{Expr: gc.Nil()}
	scope.PopFrame()
	assert.True(t, IsNil(scope.Expr))
}
