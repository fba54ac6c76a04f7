package equations

import "math"

// SolveQuadratic solves a·x² + b·x + c = 0 over the reals.
//
// With D = b² − 4ac:
//   - D > 0: two roots (−b + √D)/(2a) then (−b − √D)/(2a);
//   - D = 0: one repeated root −b/(2a);
//   - D < 0: OutcomeNoRealSolutions.
//
// a = 0 is not a quadratic; the linear solver answers b·x + c = 0 instead
// and the result is flagged Degenerate.
func SolveQuadratic(a, b, c float64) QuadraticResult {
	if a == 0 {
		lin := SolveLinear(b, c)
		res := QuadraticResult{Outcome: lin.Outcome, Degenerate: true, Linear: lin}
		if lin.Outcome == OutcomeSolved {
			res.Roots = []float64{lin.X}
		}

		return res
	}

	d := b*b - 4*a*c
	res := QuadraticResult{Discriminant: d, Outcome: OutcomeSolved}
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		res.Roots = []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	case d == 0:
		res.Roots = []float64{-b / (2 * a)}
	case d < 0:
		res.Outcome = OutcomeNoRealSolutions
	default:
		// NaN discriminant from non-finite coefficients: surface it as is.
		res.Roots = []float64{math.NaN(), math.NaN()}
	}

	return res
}
