package calculator

import (
	"strings"
)

// Expr = num { op num }
// op = '+' | '-' | '*' | '/'
//
// Tokens are separated by single spaces. There are no brackets and no unary
// operators.

// Expr is an expression in postfix order, ready to evaluate. An Expr is
// immutable and safe for concurrent use.
type Expr struct {
	// toks holds only numbers and operators, in postfix order.
	toks []lexToken
	// end is the column just past the end of the source.
	end int
}

// Parse converts an infix expression to postfix form using the shunting-yard
// algorithm. Multiplication and division bind more tightly than addition and
// subtraction, and operators of equal precedence group left to right.
//
// Parse does not check that operators and operands balance; that falls out of
// evaluation. The only error is a token that is neither a number nor an
// operator when the Strict option is given.
func Parse(src string, opts ...Option) (*Expr, error) {
	p := newparsectx(opts)
	toks := lex(src)
	out := make([]lexToken, 0, len(toks))
	ops := newstack[lexToken](len(toks) / 2)
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			for ops.depth() > 0 && popsBefore(ops.top(), tok) {
				op, _ := ops.pop()
				out = append(out, op)
			}
			ops.push(tok)
		case tokenNone:
			if p.strict {
				return nil, badtoken(tok)
			}
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
	for {
		op, ok := ops.pop()
		if !ok {
			break
		}
		out = append(out, op)
	}
	return &Expr{toks: out, end: endcol(src)}, nil
}

// ParsePostfix reads an expression that is already in postfix order, e.g.
// "3 4 +". Tokens are kept in the order given.
func ParsePostfix(src string, opts ...Option) (*Expr, error) {
	p := newparsectx(opts)
	toks := lex(src)
	out := make([]lexToken, 0, len(toks))
	for _, tok := range toks {
		if tok.kind == tokenNone {
			if p.strict {
				return nil, badtoken(tok)
			}
			continue
		}
		out = append(out, tok)
	}
	return &Expr{toks: out, end: endcol(src)}, nil
}

// ToPostfix is a shortcut to convert an infix expression to a postfix string.
func ToPostfix(src string, opts ...Option) (string, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return "", err
	}
	return e.String(), nil
}

// String returns the postfix form of the expression with tokens joined by
// single spaces. Numbers keep the text they were written with.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.toks {
		if i > 0 {
			b.WriteByte(Separator)
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// Len returns the number of tokens in the postfix expression.
func (e *Expr) Len() int {
	return len(e.toks)
}

// precedence gets the binding strength of an operator token. Higher is more
// binding. Anything that is not an operator has precedence 0.
func precedence(text string) int {
	switch text {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

// popsBefore reports whether an operator already on the stack must be output
// before next is pushed. Equal precedence pops, which is what makes every
// operator left-associative.
func popsBefore(stacked, next lexToken) bool {
	return precedence(stacked.text) >= precedence(next.text)
}

func badtoken(tok lexToken) error {
	return &MalformedExpressionError{Col: tok.pos, Kind: BadToken, Token: tok.text}
}
