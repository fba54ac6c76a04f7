package equations

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/display"
)

// Outcome classifies how a solve ended.
type Outcome int

const (
	// OutcomeSolved means the result carries one or more values.
	OutcomeSolved Outcome = iota
	// OutcomeNoSolution is reported by the linear solver when a = 0.
	OutcomeNoSolution
	// OutcomeNoRealSolutions is reported for a negative discriminant.
	OutcomeNoRealSolutions
	// OutcomeNoUniqueSolution is reported for singular systems.
	OutcomeNoUniqueSolution
)

// Display texts for the non-solved outcomes.
const (
	TextNoSolution       = "No solution"
	TextNoRealSolutions  = "No real solutions"
	TextNoUniqueSolution = "No unique solution"
	TextNoRoots          = "No roots"
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeNoSolution:
		return "no solution"
	case OutcomeNoRealSolutions:
		return "no real solutions"
	case OutcomeNoUniqueSolution:
		return "no unique solution"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Polynomial holds coefficients from the highest degree down:
// {1, 0, -4} is x² − 4. A zero leading coefficient is kept as is.
type Polynomial []float64

// Degree is len(p) − 1.
func (p Polynomial) Degree() int { return len(p) - 1 }

// LinearResult is the answer to a·x + b = 0.
type LinearResult struct {
	A, B    float64
	X       float64
	Outcome Outcome
}

// Display renders "x = 2.00" or "No solution".
func (r LinearResult) Display(precision int) string {
	if r.Outcome != OutcomeSolved {
		return TextNoSolution
	}

	return "x = " + display.Fixed(r.X, precision)
}

// QuadraticResult is the answer to a·x² + b·x + c = 0.
//
// Roots holds two values (the +√D root first) when D > 0, one when D = 0,
// none when D < 0. Degenerate is set when a = 0 and the linear solver
// answered instead; Linear then holds its result.
type QuadraticResult struct {
	Discriminant float64
	Roots        []float64
	Outcome      Outcome
	Degenerate   bool
	Linear       LinearResult
}

// Display renders "x1 = 2.00, x2 = 1.00", "x = 1.00" or "No real solutions".
func (r QuadraticResult) Display(precision int) string {
	if r.Degenerate {
		return r.Linear.Display(precision)
	}
	switch {
	case r.Outcome == OutcomeNoRealSolutions:
		return TextNoRealSolutions
	case len(r.Roots) == 1:
		return "x = " + display.Fixed(r.Roots[0], precision)
	}

	return joinNamed([]string{"x1", "x2"}, r.Roots, precision)
}

// SystemResult is the answer to an N-variable linear system.
type SystemResult struct {
	Solution []float64
	Outcome  Outcome
}

// Display renders "x = 1.00, y = 2.00" or "No unique solution".
func (r SystemResult) Display(precision int) string {
	if r.Outcome != OutcomeSolved {
		return TextNoUniqueSolution
	}

	return joinNamed(VariableNames(len(r.Solution)), r.Solution, precision)
}

// PolynomialResult carries one approximate root per degree.
type PolynomialResult struct {
	Roots []float64
}

// Display renders "x1 = 2.00, x2 = -2.00"; a constant polynomial has no roots.
func (r PolynomialResult) Display(precision int) string {
	if len(r.Roots) == 0 {
		return TextNoRoots
	}
	names := make([]string, len(r.Roots))
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}

	return joinNamed(names, r.Roots, precision)
}

// VariableNames returns x, y, z, w for up to four unknowns and x1..xN beyond.
func VariableNames(n int) []string {
	short := []string{"x", "y", "z", "w"}
	if n <= len(short) {
		return append([]string(nil), short[:n]...)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}

	return names
}

func joinNamed(names []string, values []float64, precision int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = names[i] + " = " + display.Fixed(v, precision)
	}

	return strings.Join(parts, ", ")
}
