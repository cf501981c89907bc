// Package keypad accumulates an expression one key press at a time, the way
// the buttons of a desk calculator do, and evaluates it on demand.
package keypad

import (
	"errors"
	"strings"

	"github.com/zephyrtronium/calculator"
)

// Buffer is the expression being typed. The zero value is an empty buffer
// ready to use. A Buffer is not safe for concurrent use.
type Buffer struct {
	b []byte
}

// Digit appends a decimal digit. Panics if d is not in [0, 9].
func (k *Buffer) Digit(d int) {
	if d < 0 || d > 9 {
		panic("keypad: invalid digit")
	}
	k.b = append(k.b, byte('0'+d))
}

// Point appends a decimal point.
func (k *Buffer) Point() {
	k.b = append(k.b, '.')
}

// Operator appends a binary operator surrounded by spaces. Panics if op is
// not one of calculator.Operators.
func (k *Buffer) Operator(op byte) {
	if strings.IndexByte(calculator.Operators, op) < 0 {
		panic("keypad: invalid operator " + string(op))
	}
	k.b = append(k.b, calculator.Separator, op, calculator.Separator)
}

// Backspace removes the last byte typed. It does nothing on an empty buffer.
func (k *Buffer) Backspace() {
	if len(k.b) == 0 {
		return
	}
	k.b = k.b[:len(k.b)-1]
}

// Clear empties the buffer.
func (k *Buffer) Clear() {
	k.b = k.b[:0]
}

// String returns the expression typed so far.
func (k *Buffer) String() string {
	return string(k.b)
}

// Len returns the length of the expression in bytes.
func (k *Buffer) Len() int {
	return len(k.b)
}

// Equals evaluates the expression. On success, the buffer is replaced by the
// formatted result so that typing continues from it, and the result is
// returned. On failure, the buffer is cleared and the error is returned.
func (k *Buffer) Equals(opts ...calculator.Option) (string, error) {
	r, err := calculator.Eval(string(k.b), opts...)
	if err != nil {
		k.Clear()
		return "", err
	}
	s := Format(r)
	k.b = append(k.b[:0], s...)
	return s, nil
}

// Message renders an evaluation error for display.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "Error: Division by zero"
	default:
		return "Error: Invalid expression"
	}
}
