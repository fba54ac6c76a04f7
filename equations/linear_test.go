package equations_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/equations"
	"github.com/stretchr/testify/assert"
)

func TestSolveLinear(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		want    float64
		outcome equations.Outcome
		text    string
	}{
		{"positive", 2, -4, 2, equations.OutcomeSolved, "x = 2.00"},
		{"negative root", 4, 2, -0.5, equations.OutcomeSolved, "x = -0.50"},
		{"zero root", 3, 0, 0, equations.OutcomeSolved, "x = 0.00"},
		{"a is zero", 0, 5, 0, equations.OutcomeNoSolution, equations.TextNoSolution},
		{"identity", 0, 0, 0, equations.OutcomeNoSolution, equations.TextNoSolution},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := equations.SolveLinear(tc.a, tc.b)
			assert.Equal(t, tc.outcome, r.Outcome)
			assert.Equal(t, tc.text, r.Display(2))
			if tc.outcome == equations.OutcomeSolved {
				assert.InDelta(t, tc.want, r.X, 1e-12)
			}
		})
	}
}

func TestSolveLinear_SatisfiesEquation(t *testing.T) {
	for _, a := range []float64{-7.5, -1, 0.001, 3, 1e6} {
		for _, b := range []float64{-100, -0.25, 0, 9} {
			r := equations.SolveLinear(a, b)
			assert.Equal(t, equations.OutcomeSolved, r.Outcome)
			assert.LessOrEqual(t, math.Abs(a*r.X+b), 1e-9*math.Max(1, math.Abs(b)), "a=%g b=%g", a, b)
		}
	}
}
