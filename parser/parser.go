/*
Package parser provides the reader for the interpreter.

	expr   := '(' expr* ')'
	        | '(' expr+ '.' expr ')'
	        | '\'' expr | '`' expr | ',' expr
	        | <integer> | <real> | <string> | <symbol>

Reader macros are normalized during parsing: 'x becomes (quote x), `x
becomes (quasiquote x) and ,x becomes (unquote x).  Every produced value is
allocated through the arena so the collector sees it.
*/
package parser

import (
	"strconv"

	"github.com/urejgi/first-interpreter/lisp"
)

// Parser implements lisp.Reader.
type Parser struct{}

// NewReader initializes and returns a new Parser.
func NewReader() *Parser {
	return &Parser{}
}

// ReadOne parses the first expression in source.  It returns the expression
// and the number of source bytes consumed.
func (p *Parser) ReadOne(gc *lisp.GC, source string) (lisp.Expr, int, error) {
	r := &reader{gc: gc, s: scanner{src: source}}
	if err := r.advance(); err != nil {
		return lisp.Expr{}, 0, err
	}
	expr, err := r.parseExpr()
	if err != nil {
		return lisp.Expr{}, 0, err
	}
	// The reader holds one token of lookahead; the expression ends where
	// that token begins.
	return expr, r.tok.pos, nil
}

// ReadAll parses every expression in source and returns them as a proper
// list.  A source with no expressions yields nil.
func (p *Parser) ReadAll(gc *lisp.GC, source string) (lisp.Expr, error) {
	r := &reader{gc: gc, s: scanner{src: source}}
	if err := r.advance(); err != nil {
		return lisp.Expr{}, err
	}

	block := gc.Nil()
	var last lisp.Expr
	for r.tok.typ != tokenEOF {
		expr, err := r.parseExpr()
		if err != nil {
			return lisp.Expr{}, err
		}
		cell := gc.Cons(expr, gc.Nil())
		if lisp.IsNil(block) {
			block = cell
		} else {
			last.Cons.Cdr = cell
		}
		last = cell
	}
	return block, nil
}

type reader struct {
	gc  *lisp.GC
	s   scanner
	tok token
}

func (r *reader) advance() error {
	tok, err := r.s.next()
	if err != nil {
		return err
	}
	r.tok = tok
	return nil
}

func (r *reader) fail(message string, pos int) (lisp.Expr, error) {
	return lisp.Expr{}, &lisp.ReadError{Message: message, Pos: int64(pos)}
}

// parseExpr parses the expression starting at the current token and leaves
// the following token current.
func (r *reader) parseExpr() (lisp.Expr, error) {
	tok := r.tok
	switch tok.typ {
	case tokenEOF:
		return r.fail("EOF", tok.pos)
	case tokenLParen:
		return r.parseList()
	case tokenRParen:
		return r.fail("Unexpected )", tok.pos)
	case tokenDot:
		return r.fail("Unexpected .", tok.pos)
	case tokenQuote:
		return r.parseReaderMacro("quote")
	case tokenQuasiquote:
		return r.parseReaderMacro("quasiquote")
	case tokenUnquote:
		return r.parseReaderMacro("unquote")
	case tokenString:
		if err := r.advance(); err != nil {
			return lisp.Expr{}, err
		}
		return r.gc.String(tok.text), nil
	}
	if err := r.advance(); err != nil {
		return lisp.Expr{}, err
	}
	return r.parseWord(tok), nil
}

func (r *reader) parseReaderMacro(name string) (lisp.Expr, error) {
	if err := r.advance(); err != nil {
		return lisp.Expr{}, err
	}
	expr, err := r.parseExpr()
	if err != nil {
		return lisp.Expr{}, err
	}
	return r.gc.List("qe", name, expr), nil
}

// parseWord classifies a word token as an integer, a real or a symbol.
func (r *reader) parseWord(tok token) lisp.Expr {
	if tok.text[0] == '-' || (tok.text[0] >= '0' && tok.text[0] <= '9') {
		if num, err := strconv.ParseInt(tok.text, 10, 64); err == nil {
			return r.gc.Integer(num)
		}
		if x, err := strconv.ParseFloat(tok.text, 32); err == nil {
			return r.gc.Real(float32(x))
		}
	}
	return r.gc.Symbol(tok.text)
}

func (r *reader) parseList() (lisp.Expr, error) {
	open := r.tok.pos
	if err := r.advance(); err != nil {
		return lisp.Expr{}, err
	}
	if r.tok.typ == tokenRParen {
		if err := r.advance(); err != nil {
			return lisp.Expr{}, err
		}
		return r.gc.Nil(), nil
	}

	car, err := r.parseExpr()
	if err != nil {
		return lisp.Expr{}, err
	}
	list := r.gc.Cons(car, r.gc.Nil())
	last := list

	for {
		switch r.tok.typ {
		case tokenRParen:
			if err := r.advance(); err != nil {
				return lisp.Expr{}, err
			}
			return list, nil
		case tokenDot:
			if err := r.advance(); err != nil {
				return lisp.Expr{}, err
			}
			cdr, err := r.parseExpr()
			if err != nil {
				return lisp.Expr{}, err
			}
			if r.tok.typ != tokenRParen {
				return r.fail("Expected )", r.tok.pos)
			}
			if err := r.advance(); err != nil {
				return lisp.Expr{}, err
			}
			last.Cons.Cdr = cdr
			return list, nil
		case tokenEOF:
			return r.fail("Expected )", open)
		}

		car, err := r.parseExpr()
		if err != nil {
			return lisp.Expr{}, err
		}
		cell := r.gc.Cons(car, r.gc.Nil())
		last.Cons.Cdr = cell
		last = cell
	}
}
