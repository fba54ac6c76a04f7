// Package expr is the expression engine behind the calculus mode: it parses
// single-variable calculator input, evaluates it, and differentiates it.
//
// The language is what a calculator keypad produces:
//
//	3x^2 + 2x - 1
//	sin(x)/x
//	2(x+1)^-1
//	e^x * ln(x)
//
// Numbers, identifiers, + - * / ^ (** is accepted for ^), parentheses, unary
// signs, and implicit multiplication (2x, 3(x+1), x(x+1)). Functions: sin
// cos tan asin acos atan sinh cosh tanh exp ln log sqrt abs. Constants: pi
// and e. ^ is right-associative and binds tighter than a leading minus, so
// -x^2 is -(x^2).
//
// Trees are immutable once built. An Engine caches parsed trees by input
// text in a go-cache store, so repeated evaluation of the same input in a
// session skips the parser.
//
// Differentiation applies the sum, product, quotient, power and chain rules
// and folds constants as it goes. It does not attempt general algebraic
// simplification; the result is correct but not always minimal.
package expr
