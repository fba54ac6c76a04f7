package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/spf13/cast"
)

// CalculusOp names a calculus operation.
type CalculusOp string

// Calculus operations.
const (
	OpDerivative CalculusOp = "derivative"
	OpIntegral   CalculusOp = "integral"
	OpLimit      CalculusOp = "limit"
)

// Calculus gathers an expression and its parameters as "field=value" keys:
//
//	derivative, f=x^2, =
//	integral, f=x^2, lower=0, upper=1, =
//	limit, f=sin(x)/x, approach=0, =
//
// Choosing an operation resets every field.
type Calculus struct {
	base
	calc *calculus.Calculator

	op                              CalculusOp
	fn, lower, upper, approach, out string
}

func newCalculus(b base, env Env) *Calculus {
	opts := make([]calculus.Option, 0, len(env.Calculus)+2)
	opts = append(opts, calculus.WithPrecision(env.Precision), calculus.WithLogger(b.log))
	opts = append(opts, env.Calculus...)

	return &Calculus{base: b, calc: calculus.NewCalculator(env.Engine, opts...)}
}

// Display implements Session. Before "=" it previews the pending request:
// "d/dx(x^2)", "∫[0,1] x^2 dx", "lim[x→0] sin(x)/x".
func (c *Calculus) Display() string {
	if c.state == StateHasResult {
		return c.out
	}
	v := c.calc.Variable()
	switch c.op {
	case OpDerivative:
		return "d/d" + v + "(" + c.fn + ")"
	case OpIntegral:
		if c.lower != "" && c.upper != "" {
			return "∫[" + c.lower + "," + c.upper + "] " + c.fn + " d" + v
		}

		return "∫ " + c.fn + " d" + v
	case OpLimit:
		return "lim[" + v + "→" + c.approach + "] " + c.fn
	}

	return "0"
}

// Op is the selected operation, empty when none is selected.
func (c *Calculus) Op() CalculusOp { return c.op }

// Clear implements Session.
func (c *Calculus) Clear() {
	c.op = ""
	c.reset()
	c.state = StateIdle
}

func (c *Calculus) reset() {
	c.fn, c.lower, c.upper, c.approach, c.out = "", "", "", "", ""
}

// Press implements Session.
func (c *Calculus) Press(key string) error {
	k := strings.TrimSpace(key)
	switch op := CalculusOp(strings.ToLower(k)); {
	case isClear(k):
		c.Clear()

		return nil
	case op == OpDerivative, op == OpIntegral, op == OpLimit:
		c.op = op
		c.reset()
		c.state = StateAwaitingOperand

		return nil
	case k == "=":
		c.calculate()

		return nil
	}

	name, value, ok := strings.Cut(k, "=")
	if !ok {
		return unknownKey(c.mode, key)
	}
	if c.op == "" {
		return ErrNoOperation
	}
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "f", "fn", "expr":
		c.fn = value
	case "lower", "a", "from":
		c.lower = value
	case "upper", "b", "to":
		c.upper = value
	case "approach", "at":
		c.approach = value
	default:
		return unknownKey(c.mode, key)
	}
	if c.state == StateHasResult {
		c.out = ""
	}
	c.state = StateAwaitingOperand

	return nil
}

func (c *Calculus) calculate() {
	if c.op == "" || c.fn == "" {
		return
	}
	switch c.op {
	case OpDerivative:
		c.out = c.calc.Derivative(c.fn)

	case OpIntegral:
		var bounds *calculus.Bounds
		if c.lower != "" && c.upper != "" {
			lo, err := cast.ToFloat64E(c.lower)
			if err != nil {
				c.out = fmt.Sprintf("Error: lower bound %q is not a number", c.lower)

				break
			}
			hi, err := cast.ToFloat64E(c.upper)
			if err != nil {
				c.out = fmt.Sprintf("Error: upper bound %q is not a number", c.upper)

				break
			}
			bounds = &calculus.Bounds{Lower: lo, Upper: hi}
		}
		c.out = c.calc.Integral(c.fn, bounds)

	case OpLimit:
		at, err := cast.ToFloat64E(c.approach)
		if err != nil {
			c.out = fmt.Sprintf("Error: approach value %q is not a number", c.approach)

			break
		}
		c.out = c.calc.Limit(c.fn, at)
	}
	c.state = StateHasResult
}
