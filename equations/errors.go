package equations

import "errors"

var (
	// ErrEmptyPolynomial is returned when a polynomial has no coefficients.
	ErrEmptyPolynomial = errors.New("equations: polynomial has no coefficients")

	// ErrEmptySystem is returned when a linear system has no rows.
	ErrEmptySystem = errors.New("equations: system has no equations")

	// ErrRaggedSystem is returned when a row of an N-equation system does not
	// hold exactly N+1 values (N coefficients and the constant term).
	ErrRaggedSystem = errors.New("equations: each row needs one coefficient per variable plus a constant")
)
