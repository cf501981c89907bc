package calculator

// Eval evaluates the expression and returns its result. If an error occurs,
// e.g. a division by zero or an operator without enough operands, then the
// result is 0 and should be ignored.
func (e *Expr) Eval() (float64, error) {
	st := newstack[float64](len(e.toks)/2 + 1)
	for _, tok := range e.toks {
		switch tok.kind {
		case tokenNum:
			st.push(tok.num)
		case tokenOp:
			// The right operand is on top.
			r, ok := st.pop()
			if !ok {
				return 0, underflow(tok)
			}
			l, ok := st.pop()
			if !ok {
				return 0, underflow(tok)
			}
			v, err := apply(tok, l, r)
			if err != nil {
				return 0, err
			}
			st.push(v)
		default:
			panic("calculator: invalid token in expression: " + tok.String())
		}
	}
	switch st.depth() {
	case 0:
		return 0, &MalformedExpressionError{Col: e.end, Kind: Empty}
	case 1:
		return st.top(), nil
	default:
		return 0, &MalformedExpressionError{Col: e.end, Kind: Residue, Depth: st.depth()}
	}
}

// apply applies a binary operator.
func apply(op lexToken, l, r float64) (float64, error) {
	switch op.text {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		// Exactly zero, including negative zero.
		if r == 0 {
			return 0, &DivisionByZeroError{Col: op.pos, Dividend: l}
		}
		return l / r, nil
	default:
		panic("calculator: invalid operator " + op.String())
	}
}

func underflow(op lexToken) error {
	return &MalformedExpressionError{Col: op.pos, Kind: Underflow, Token: op.text}
}

// Eval is a shortcut to convert an infix expression to postfix and evaluate
// it. Input already in postfix order, like "3 4 +", evaluates the same way.
func Eval(src string, opts ...Option) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalPostfix is a shortcut to evaluate an expression that is already in
// postfix order without converting it.
func EvalPostfix(src string, opts ...Option) (float64, error) {
	e, err := ParsePostfix(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
