// Package calculator evaluates four-function arithmetic the way a desk
// calculator does.
//
// An expression is a sequence of decimal numbers and the operators + - * /
// separated by single spaces, e.g. "4 + 5 * 2". Parse converts it to postfix
// form with the shunting-yard algorithm, giving * and / precedence over + and -
// and grouping equal precedence left to right. The resulting Expr evaluates
// with an operand stack. There are no parentheses and no unary operators.
//
// Every function in this package is pure. An Expr is immutable once created
// and may be evaluated concurrently.
//
package calculator
