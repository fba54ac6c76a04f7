package calculus

import "errors"

var (
	// ErrNilFunc is returned when no function is supplied.
	ErrNilFunc = errors.New("calculus: nil function")

	// ErrNilEngine is returned when a derivative is requested without an Engine.
	ErrNilEngine = errors.New("calculus: nil expression engine")
)
