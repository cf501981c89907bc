package keypad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/keypad"
)

// press types keys into a buffer. Digits, '.', and operators are typed as
// themselves, '<' is backspace, and 'C' is clear.
func press(k *keypad.Buffer, keys string) {
	for _, r := range keys {
		switch {
		case '0' <= r && r <= '9':
			k.Digit(int(r - '0'))
		case r == '.':
			k.Point()
		case r == '<':
			k.Backspace()
		case r == 'C':
			k.Clear()
		default:
			k.Operator(byte(r))
		}
	}
}

func TestBufferTyping(t *testing.T) {
	cases := []struct {
		name string
		keys string
		want string
	}{
		{"empty", "", ""},
		{"digits", "123", "123"},
		{"operator", "4+5", "4 + 5"},
		{"all-ops", "1+2-3*4/5", "1 + 2 - 3 * 4 / 5"},
		{"point", "1.5*2", "1.5 * 2"},
		{"backspace", "123<", "12"},
		{"backspace-op", "4+<", "4 +"},
		{"backspace-empty", "<<", ""},
		{"clear", "4+5C", ""},
		{"clear-then-type", "4+5C7", "7"},
		{"double-op", "4+*5", "4 +  * 5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var k keypad.Buffer
			press(&k, c.keys)
			assert.Equal(t, c.want, k.String())
			assert.Equal(t, len(c.want), k.Len())
		})
	}
}

func TestBufferEquals(t *testing.T) {
	cases := []struct {
		name string
		keys string
		want string
	}{
		{"prec", "4+5*2", "14.0"},
		{"left-assoc", "8-3-2", "3.0"},
		{"two-products", "2*3+4*5", "26.0"},
		{"fraction", "7/2", "3.5"},
		{"trailing-op", "4+5+", ""},
		{"double-op", "4+*5", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var k keypad.Buffer
			press(&k, c.keys)
			r, err := k.Equals()
			if c.want == "" {
				require.Error(t, err)
				assert.Empty(t, r)
				assert.Empty(t, k.String(), "buffer not reset after error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, r)
			assert.Equal(t, c.want, k.String(), "buffer should hold the result")
		})
	}
}

func TestBufferEqualsStrict(t *testing.T) {
	var k keypad.Buffer
	press(&k, "4+*5")
	_, err := k.Equals(calculator.Strict())
	require.ErrorIs(t, err, calculator.ErrMalformedExpression)
	assert.Zero(t, k.Len())
}

func TestBufferContinuesFromResult(t *testing.T) {
	var k keypad.Buffer
	press(&k, "4+5")
	r, err := k.Equals()
	require.NoError(t, err)
	require.Equal(t, "9.0", r)
	press(&k, "*2")
	assert.Equal(t, "9.0 * 2", k.String())
	r, err = k.Equals()
	require.NoError(t, err)
	assert.Equal(t, "18.0", r)
}

func TestBufferDivisionByZero(t *testing.T) {
	var k keypad.Buffer
	press(&k, "10/0")
	_, err := k.Equals()
	require.ErrorIs(t, err, calculator.ErrDivisionByZero)
	assert.Equal(t, "Error: Division by zero", keypad.Message(err))
	assert.Empty(t, k.String())
}

func TestBufferPanics(t *testing.T) {
	var k keypad.Buffer
	assert.Panics(t, func() { k.Digit(10) })
	assert.Panics(t, func() { k.Digit(-1) })
	assert.Panics(t, func() { k.Operator('^') })
	assert.Empty(t, k.String())
}

func TestMessage(t *testing.T) {
	_, err := calculator.Eval("5 +")
	assert.Equal(t, "Error: Invalid expression", keypad.Message(err))
	assert.Equal(t, "Error: Invalid expression", keypad.Message(errors.New("anything")))
	assert.Equal(t, "", keypad.Message(nil))
}

func TestFormat(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{14, "14.0"},
		{3, "3.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{3.25, "3.25"},
		{0.001, "0.001"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{12345678, "1.2345678E7"},
		{0.0001, "1.0E-4"},
		{1.5e-10, "1.5E-10"},
		{1e300, "1.0E300"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, keypad.Format(c.f), "formatting %v", c.f)
	}
}
