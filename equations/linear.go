package equations

// SolveLinear solves a·x + b = 0 as x = −b/a.
//
// a = 0 always reports OutcomeNoSolution, even when b = 0 and every x
// satisfies the equation; callers that need the distinction can inspect B.
func SolveLinear(a, b float64) LinearResult {
	if a == 0 {
		return LinearResult{A: a, B: b, Outcome: OutcomeNoSolution}
	}

	return LinearResult{A: a, B: b, X: -b / a, Outcome: OutcomeSolved}
}
