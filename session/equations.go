package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/sirupsen/logrus"
)

// EquationKind names an equation family.
type EquationKind string

// Equation families offered by the equations mode.
const (
	Linear       EquationKind = "linear"
	Quadratic    EquationKind = "quadratic"
	Simultaneous EquationKind = "simultaneous"
	Polynomial   EquationKind = "polynomial"
)

const coefficientKeys = "0123456789.-+eE,; "

// Equations collects coefficients for one solver: pick a family, type the
// coefficients ("," between values, ";" between system rows), press "=".
type Equations struct {
	base
	kind      EquationKind
	input     string
	shown     string
	precision int
	solver    []matrix.Option
	poly      []equations.Option
}

func newEquations(b base, env Env) *Equations {
	return &Equations{base: b, precision: env.Precision, solver: env.Solver, poly: env.Polynomial}
}

// Display implements Session.
func (e *Equations) Display() string {
	switch {
	case e.state == StateHasResult:
		return e.shown
	case e.input == "":
		return "0"
	}

	return e.input
}

// Kind is the selected family, empty when none is selected.
func (e *Equations) Kind() EquationKind { return e.kind }

// Clear implements Session.
func (e *Equations) Clear() {
	e.kind, e.input, e.shown = "", "", ""
	e.state = StateIdle
}

// Press implements Session.
func (e *Equations) Press(key string) error {
	k := strings.TrimSpace(key)
	if k == "" && key != "" {
		k = " "
	}
	switch kind := EquationKind(strings.ToLower(k)); {
	case isClear(k):
		e.Clear()
	case kind == Linear, kind == Quadratic, kind == Simultaneous, kind == Polynomial:
		if e.state == StateHasResult {
			e.input, e.shown = "", ""
		}
		e.kind = kind
		e.state = StateAwaitingOperand
	case k == "=":
		e.solve()
	case k != "" && strings.Trim(k, coefficientKeys) == "":
		if e.state == StateHasResult {
			e.input, e.shown = "", ""
		}
		e.input += k
		e.state = StateAwaitingOperand
	default:
		return unknownKey(e.mode, key)
	}

	return nil
}

// solve runs the selected solver over the typed coefficients. Nothing
// happens until both a family and some input are present.
func (e *Equations) solve() {
	if e.kind == "" || strings.TrimSpace(e.input) == "" {
		return
	}
	text, err := e.run()
	if err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{"kind": string(e.kind), "input": e.input}).Debug("solve failed")
		text = "Error"
	} else {
		e.log.WithField("kind", string(e.kind)).Debug("solved")
	}
	e.shown, e.input, e.kind = text, "", ""
	e.state = StateHasResult
}

func (e *Equations) run() (string, error) {
	if e.kind == Simultaneous {
		rows, err := ParseSystem(e.input)
		if err != nil {
			return "", err
		}
		r, err := equations.SolveSimultaneous(rows, e.solver...)
		if err != nil {
			return "", err
		}

		return r.Display(e.precision), nil
	}

	c, err := ParseCoefficients(e.input)
	if err != nil {
		return "", err
	}
	switch e.kind {
	case Linear:
		if len(c) != 2 {
			return "", fmt.Errorf("%w: linear needs a, b; got %d values", ErrBadCoefficients, len(c))
		}

		return equations.SolveLinear(c[0], c[1]).Display(e.precision), nil

	case Quadratic:
		if len(c) != 3 {
			return "", fmt.Errorf("%w: quadratic needs a, b, c; got %d values", ErrBadCoefficients, len(c))
		}

		return equations.SolveQuadratic(c[0], c[1], c[2]).Display(e.precision), nil

	case Polynomial:
		r, err := equations.SolvePolynomial(c, e.poly...)
		if err != nil {
			return "", err
		}

		return r.Display(e.precision), nil
	}

	return "", fmt.Errorf("%w: %q", ErrNoOperation, string(e.kind))
}
