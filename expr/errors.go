package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExpression is returned for blank input.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrSyntax is returned when the input is not a well-formed expression.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownFunction is returned for a call to a function the engine does not know.
	ErrUnknownFunction = errors.New("expr: unknown function")

	// ErrUnboundVariable is returned when evaluation meets an identifier
	// that is neither the bound variable nor a constant.
	ErrUnboundVariable = errors.New("expr: unbound variable")
)

// posErrorf wraps a sentinel with the 1-based input position it refers to.
func posErrorf(sentinel error, pos int, format string, args ...interface{}) error {
	return fmt.Errorf("%w at position %d: %s", sentinel, pos+1, fmt.Sprintf(format, args...))
}
