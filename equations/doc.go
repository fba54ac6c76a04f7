// Package equations solves the equation families a calculator form can ask
// for: linear (a·x + b = 0), quadratic (a·x² + b·x + c = 0), square systems
// of linear equations, and polynomials of arbitrary degree.
//
// Every solver is stateless. Degenerate input (zero leading coefficient,
// negative discriminant, singular system) is reported as an Outcome on the
// result rather than as an error; errors are reserved for malformed input
// shapes (an empty polynomial, ragged system rows). Each result renders its
// own calculator text through Display(precision):
//
//	equations.SolveQuadratic(1, -3, 2).Display(2)  // "x1 = 2.00, x2 = 1.00"
//
// SolvePolynomial runs independent Newton iterations from random starts. It
// does not deduplicate roots or check convergence; callers should treat each
// value as "approximately a root". Randomness is always injected through
// options (WithRand / WithSeed) and never read from a global source.
package equations
