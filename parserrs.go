package calculator

import (
	"errors"
	"strconv"
)

var (
	// ErrDivisionByZero matches every *DivisionByZeroError under errors.Is.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformedExpression matches every *MalformedExpressionError under
	// errors.Is.
	ErrMalformedExpression = errors.New("malformed expression")
)

// DivisionByZeroError is an error indicating that the right operand of a
// division was zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the left operand of the division.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// MalformedKind describes how an expression is malformed.
type MalformedKind int8

const (
	// BadToken is a token that is neither a number nor an operator, in strict
	// mode.
	BadToken MalformedKind = iota + 1
	// Underflow is an operator with fewer than two operands available.
	Underflow
	// Residue is more than one value left over after evaluation, i.e. too
	// few operators.
	Residue
	// Empty is an expression with no values at all.
	Empty
)

func (k MalformedKind) String() string {
	switch k {
	case BadToken:
		return "BadToken"
	case Underflow:
		return "Underflow"
	case Residue:
		return "Residue"
	case Empty:
		return "Empty"
	default:
		return "MalformedKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MalformedExpressionError is an error indicating that the operators and
// operands of an expression don't fit together, or, in strict mode, that a
// token is not understood. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the offending token. For Residue and Empty, it
	// is the position of the end of the input.
	Col int
	// Kind is the reason the expression is malformed.
	Kind MalformedKind
	// Token is the offending token for BadToken and Underflow.
	Token string
	// Depth is the number of values left over for Residue.
	Depth int
}

func (err *MalformedExpressionError) Error() string {
	var msg string
	switch err.Kind {
	case BadToken:
		msg = "invalid token " + strconv.Quote(err.Token)
	case Underflow:
		msg = "not enough operands for " + err.Token
	case Residue:
		msg = strconv.Itoa(err.Depth) + " values with no operator between them"
	case Empty:
		msg = "no expression"
	default:
		msg = "unknown problem " + err.Kind.String()
	}
	return errpos(err.Col, "malformed expression: "+msg)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

func (err *MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
)
