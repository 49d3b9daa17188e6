package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	gc := NewGC()

	nil1 := gc.Nil()
	assert.True(t, IsNil(nil1))
	assert.True(t, IsSymbol(nil1))
	assert.True(t, IsList(nil1))
	assert.True(t, IsListOfSymbols(nil1))

	list := gc.List("dd", int64(1), int64(2))
	assert.True(t, IsCons(list))
	assert.True(t, IsList(list))
	assert.False(t, IsListOfSymbols(list))
	assert.False(t, IsNil(list))

	improper := gc.Cons(gc.Integer(1), gc.Integer(2))
	assert.True(t, IsCons(improper))
	assert.False(t, IsList(improper))

	syms := gc.List("qq", "x", "y")
	assert.True(t, IsListOfSymbols(syms))

	assert.True(t, IsInteger(gc.Integer(1)))
	assert.True(t, IsReal(gc.Real(1)))
	assert.True(t, IsString(gc.String("s")))
	assert.True(t, IsLambda(gc.Lambda(gc.Nil(), gc.Nil(), gc.Nil())))
	assert.False(t, IsLambda(gc.Integer(1)))
}

func TestLengthOfList(t *testing.T) {
	gc := NewGC()

	assert.Equal(t, int64(0), LengthOfList(gc.Nil()))
	assert.Equal(t, int64(3), LengthOfList(gc.List("ddd", int64(1), int64(2), int64(3))))
}

func TestEqualContract(t *testing.T) {
	gc := NewGC()

	values := []Expr{
		gc.Integer(1),
		gc.Real(1.5),
		gc.String("s"),
		gc.Symbol("sym"),
		gc.List("dd", int64(1), int64(2)),
	}
	// Reflexive.
	for _, v := range values {
		assert.True(t, Equal(v, v), "not reflexive: %v", v)
	}
	// Symmetric.
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, Equal(a, b), Equal(b, a))
		}
	}

	// Structural equality over distinct allocations.
	assert.True(t, Equal(gc.Integer(1), gc.Integer(1)))
	assert.True(t, Equal(gc.String("s"), gc.String("s")))
	assert.True(t, Equal(gc.Symbol("a"), gc.Symbol("a")))
	assert.True(t, Equal(
		gc.List("ddd", int64(1), int64(2), int64(3)),
		gc.List("ddd", int64(1), int64(2), int64(3))))

	// Integers compare exactly, reals with tolerance.
	assert.False(t, Equal(gc.Integer(1), gc.Integer(2)))
	assert.True(t, Equal(gc.Real(1), gc.Real(1.0000001)))
	assert.False(t, Equal(gc.Real(1), gc.Real(1.1)))
	assert.False(t, Equal(gc.Integer(1), gc.Real(1)))

	// Lambdas compare by identity.
	l1 := gc.Lambda(gc.Nil(), gc.Nil(), gc.Nil())
	l2 := gc.Lambda(gc.Nil(), gc.Nil(), gc.Nil())
	assert.True(t, Equal(l1, l1))
	assert.False(t, Equal(l1, l2))

	// So do natives.
	n1 := gc.Native(builtinList, nil)
	n2 := gc.Native(builtinList, nil)
	assert.True(t, Equal(n1, n1))
	assert.False(t, Equal(n1, n2))
}

func TestAssoc(t *testing.T) {
	gc := NewGC()

	aPair := gc.Cons(gc.Symbol("a"), gc.Integer(10))
	bPair := gc.Cons(gc.Symbol("b"), gc.Integer(20))
	alist := gc.Cons(aPair, gc.Cons(bPair, gc.Nil()))

	assert.Equal(t, aPair.Cons, Assoc(gc.Symbol("a"), alist).Cons)
	assert.Equal(t, bPair.Cons, Assoc(gc.Symbol("b"), alist).Cons)
	assert.True(t, IsNil(Assoc(gc.Symbol("c"), alist)))
}

func TestIsSpecial(t *testing.T) {
	for _, name := range []string{"set", "quote", "begin", "defun", "lambda", "λ", "when", "quasiquote"} {
		assert.True(t, IsSpecial(name), name)
	}
	for _, name := range []string{"unquote", "car", "list", "equal", "load", "append", "+"} {
		assert.False(t, IsSpecial(name), name)
	}
}

func TestExprString(t *testing.T) {
	gc := NewGC()

	assert.Equal(t, "42", gc.Integer(42).String())
	assert.Equal(t, "-7", gc.Integer(-7).String())
	assert.Equal(t, "3.14", gc.Real(3.14).String())
	assert.Equal(t, `"hi"`, gc.String("hi").String())
	assert.Equal(t, "foo", gc.Symbol("foo").String())
	assert.Equal(t, "nil", gc.Nil().String())
	assert.Equal(t, "<lambda>", gc.Lambda(gc.Nil(), gc.Nil(), gc.Nil()).String())
	assert.Equal(t, "<native>", gc.Native(builtinList, nil).String())
	assert.Equal(t, "(1 2 3)", gc.List("ddd", int64(1), int64(2), int64(3)).String())
	assert.Equal(t, "(1 . 2)", gc.Cons(gc.Integer(1), gc.Integer(2)).String())
	assert.Equal(t, "(1 2 . 3)", gc.Cons(gc.Integer(1), gc.Cons(gc.Integer(2), gc.Integer(3))).String())
}
