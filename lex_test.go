package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" ", nil},
		{"   ", nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1, num: 0}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1, num: 9876543210}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1, num: 1}, {text: "0", kind: tokenNum, pos: 3, num: 0}}},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1, num: 1.5}}},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1, num: 0.5}}},
		{"-1", []lexToken{{text: "-1", kind: tokenNum, pos: 1, num: -1}}},
		{"+1", []lexToken{{text: "+1", kind: tokenNum, pos: 1, num: 1}}},
		{"1e3", []lexToken{{text: "1e3", kind: tokenNum, pos: 1, num: 1000}}},
		{"1e400", []lexToken{{text: "1e400", kind: tokenNum, pos: 1, num: math.Inf(1)}}},
		{"-1e400", []lexToken{{text: "-1e400", kind: tokenNum, pos: 1, num: math.Inf(-1)}}},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}},
		{"-", []lexToken{{text: "-", kind: tokenOp, pos: 1}}},
		{"*", []lexToken{{text: "*", kind: tokenOp, pos: 1}}},
		{"/", []lexToken{{text: "/", kind: tokenOp, pos: 1}}},
		{"1 + 2", []lexToken{
			{text: "1", kind: tokenNum, pos: 1, num: 1},
			{text: "+", kind: tokenOp, pos: 3},
			{text: "2", kind: tokenNum, pos: 5, num: 2},
		}},
		{"5 + ", []lexToken{
			{text: "5", kind: tokenNum, pos: 1, num: 5},
			{text: "+", kind: tokenOp, pos: 3},
		}},
		// neither
		{"1+2", []lexToken{{text: "1+2", kind: tokenNone, pos: 1}}},
		{"++", []lexToken{{text: "++", kind: tokenNone, pos: 1}}},
		{"x", []lexToken{{text: "x", kind: tokenNone, pos: 1}}},
		{"^", []lexToken{{text: "^", kind: tokenNone, pos: 1}}},
		{"1  2", []lexToken{
			{text: "1", kind: tokenNum, pos: 1, num: 1},
			{text: "", kind: tokenNone, pos: 3},
			{text: "2", kind: tokenNum, pos: 4, num: 2},
		}},
		{" 1", []lexToken{
			{text: "", kind: tokenNone, pos: 1},
			{text: "1", kind: tokenNum, pos: 2, num: 1},
		}},
		// columns count runes
		{"× 1", []lexToken{
			{text: "×", kind: tokenNone, pos: 1},
			{text: "1", kind: tokenNum, pos: 3, num: 1},
		}},
	}
	for _, c := range cases {
		got := lex(c.src)
		if len(c.tokens) == 0 {
			assert.Empty(t, got, "scanning %q", c.src)
			continue
		}
		assert.Equal(t, c.tokens, got, "scanning %q", c.src)
	}
}

func TestClassifyExclusive(t *testing.T) {
	for _, r := range Operators {
		tok := classify(string(r), 1)
		assert.Equal(t, tokenOp, tok.kind, "operator %c", r)
	}
	for _, s := range []string{"0", "-0", "3.25", "1e-9", "inf", "NaN"} {
		tok := classify(s, 1)
		assert.Equal(t, tokenNum, tok.kind, "number %q", s)
	}
}

func TestEndCol(t *testing.T) {
	assert.Equal(t, 1, endcol(""))
	assert.Equal(t, 6, endcol("1 + 2"))
	assert.Equal(t, 4, endcol("× 1"))
}
