package lisp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectKeepsReachableValues(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)
	scope.Set(gc, gc.Symbol("xs"), gc.Cons(gc.Integer(1), gc.Cons(gc.Integer(2), gc.Nil())))

	gc.Collect(scope.Expr)
	base := gc.Live()

	for i := 0; i < 100; i++ {
		gc.Cons(gc.Integer(int64(i)), gc.Nil())
	}
	assert.Greater(t, gc.Live(), base)

	gc.Collect(scope.Expr)
	assert.Equal(t, base, gc.Live())

	cell := scope.Get(gc.Symbol("xs"))
	require.True(t, IsCons(cell))
	assert.Equal(t, "(1 2)", cell.Cons.Cdr.String())
}

func TestCollectReclaimsUnreachableValues(t *testing.T) {
	gc := NewGC()
	root := gc.Cons(gc.Integer(1), gc.Nil())

	garbage := gc.Cons(gc.String("garbage"), gc.Nil())
	gc.Collect(root)

	// The garbage cons and its string were voided; only the root cons, its
	// integer and its nil remain.
	assert.Equal(t, 3, gc.Live())
	assert.NotContains(t, []Expr{root.Cons.Car, root.Cons.Cdr}, garbage)
}

func TestCollectPreservesGlobalSpine(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	// A closure with body (new) capturing the global scope before the
	// binding for new exists.
	body := gc.Cons(gc.Symbol("new"), gc.Nil())
	lambda := gc.Lambda(gc.Nil(), body, scope.Expr)
	scope.Set(gc, gc.Symbol("f"), lambda)

	for i := 0; i < 64; i++ {
		gc.Cons(gc.Integer(int64(i)), gc.Nil())
	}
	gc.Collect(scope.Expr)

	scope.Set(gc, gc.Symbol("new"), gc.Integer(1))

	result := CallLambda(gc, lambda, gc.Nil())
	require.False(t, result.IsError, "call failed: %v", result.Expr)
	require.True(t, IsInteger(result.Expr))
	assert.Equal(t, int64(1), result.Expr.Atom.Num)
}

func TestCollectLambdaChildrenStayLive(t *testing.T) {
	gc := NewGC()
	scope := NewScope(gc)

	params := gc.Cons(gc.Symbol("x"), gc.Nil())
	body := gc.Cons(gc.Symbol("x"), gc.Nil())
	lambda := gc.Lambda(params, body, scope.Expr)
	scope.Set(gc, gc.Symbol("id"), lambda)

	gc.Collect(scope.Expr)

	result := CallLambda(gc, lambda, gc.Cons(gc.Integer(7), gc.Nil()))
	require.False(t, result.IsError, "call failed: %v", result.Expr)
	assert.Equal(t, "7", result.Expr.String())
}

func TestCollectUnregisteredExpressionPanics(t *testing.T) {
	gc := NewGC()
	escaped := Expr{Type: ExprAtom, Atom: &Atom{Type: AtomInteger, Num: 1}}
	assert.Panics(t, func() { gc.Collect(escaped) })
}

func TestInspect(t *testing.T) {
	gc := NewGC()
	root := gc.Cons(gc.Integer(1), gc.Nil())
	gc.Integer(42) // garbage
	gc.Collect(root)

	var buf bytes.Buffer
	gc.Inspect(&buf)
	out := strings.TrimSuffix(buf.String(), "\n")
	assert.Len(t, out, 4)
	assert.Contains(t, out, "+")
	assert.Contains(t, out, ".")

	// The next collect compacts the void slots away.
	gc.Collect(root)
	buf.Reset()
	gc.Inspect(&buf)
	assert.Equal(t, "+++\n", buf.String())
}
