package calculator

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// num is the value of a tokenNum.
	num float64
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	// tokenNone is a token that is neither a number nor an operator, including
	// the empty token between two adjacent spaces.
	tokenNone tokenKind = iota
	// tokenNum is anything strconv.ParseFloat accepts.
	tokenNum
	// tokenOp is one of Operators.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. An
// operator token is exactly one of these.
const Operators = "+-*/"

// Separator is the only character that separates tokens.
const Separator = ' '

// lex splits src on every space. Unlike strings.Fields, adjacent spaces
// produce empty tokens between them. Empty tokens at the end of the input are
// dropped, so that "5 + " has the same tokens as "5 +".
func lex(src string) []lexToken {
	var toks []lexToken
	col := 1
	for {
		text := src
		k := strings.IndexByte(src, Separator)
		if k >= 0 {
			text = src[:k]
		}
		toks = append(toks, classify(text, col))
		if k < 0 {
			break
		}
		col += utf8.RuneCountInString(text) + 1
		src = src[k+1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].text == "" {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// classify decides the kind of a token. Numbers are checked first so that
// signed literals like "-1" are numbers rather than operators.
func classify(text string, col int) lexToken {
	tok := lexToken{text: text, pos: col}
	if text == "" {
		return tok
	}
	f, err := strconv.ParseFloat(text, 64)
	switch {
	case err == nil:
		tok.kind = tokenNum
		tok.num = f
		return tok
	case errors.Is(err, strconv.ErrRange):
		// Overflow is still a number. ParseFloat gives the right infinity.
		tok.kind = tokenNum
		tok.num = f
		return tok
	}
	if len(text) == 1 && strings.Contains(Operators, text) {
		tok.kind = tokenOp
	}
	return tok
}

// endcol returns the column just past the end of src.
func endcol(src string) int {
	return utf8.RuneCountInString(src) + 1
}
