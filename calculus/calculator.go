package calculus

import (
	"io"
	"math"

	"github.com/katalvlaran/lvcalc/display"
	"github.com/sirupsen/logrus"
)

// Display texts.
const (
	TextSymbolicIntegral = "Symbolic integration not supported, provide bounds"
	TextNoLimit          = "Cannot determine the limit"
	errorPrefix          = "Error: "
)

// DefaultPrecision is the number of decimals shown for numeric answers.
const DefaultPrecision = 2

const (
	panicStepsNegative   = "calculus: WithSteps: n must be >= 0"
	panicEpsilonInvalid  = "calculus: WithEpsilon: eps must be finite and >= 0"
	panicPrecisionBad    = "calculus: WithPrecision: precision must be >= 0"
	panicVariableEmpty   = "calculus: WithVariable: empty name"
	panicCalculatorNoEng = "calculus: NewCalculator: nil engine"
)

// Bounds are the limits of a definite integral.
type Bounds struct {
	Lower, Upper float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithSteps sets the trapezoid count; 0 keeps DefaultSteps.
func WithSteps(n int) Option {
	if n < 0 {
		panic(panicStepsNegative)
	}

	return func(c *Calculator) { c.steps = n }
}

// WithEpsilon sets the limit probe offset; 0 keeps DefaultEpsilon.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(c *Calculator) { c.eps = eps }
}

// WithPrecision sets the decimals shown for integrals and limits.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionBad)
	}

	return func(c *Calculator) { c.precision = p }
}

// WithVariable names the variable of integration and differentiation.
func WithVariable(name string) Option {
	if name == "" {
		panic(panicVariableEmpty)
	}

	return func(c *Calculator) { c.variable = name }
}

// WithLogger attaches a logger; nil keeps the discarding default.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

// Calculator answers calculus requests with display text. Every method
// returns a string for every input; failures are rendered, not returned.
type Calculator struct {
	engine    Engine
	steps     int
	eps       float64
	precision int
	variable  string
	log       *logrus.Entry
}

// NewCalculator builds a Calculator over engine.
func NewCalculator(engine Engine, opts ...Option) *Calculator {
	if engine == nil {
		panic(panicCalculatorNoEng)
	}
	c := &Calculator{
		engine:    engine,
		steps:     DefaultSteps,
		eps:       DefaultEpsilon,
		precision: DefaultPrecision,
		variable:  "x",
	}
	for _, set := range opts {
		if set != nil {
			set(c)
		}
	}
	if c.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		c.log = logrus.NewEntry(discard)
	}

	return c
}

// Variable reports the bound variable name.
func (c *Calculator) Variable() string { return c.variable }

// Derivative renders "d/dx = <derivative>" or "Error: <reason>".
func (c *Calculator) Derivative(text string) string {
	d, err := Derivative(c.engine, text, c.variable)
	if err != nil {
		c.log.WithError(err).WithField("input", text).Debug("derivative failed")

		return errorPrefix + err.Error()
	}

	return "d/d" + c.variable + " = " + d
}

// Integral renders "∫[a,b] = <value>". Without bounds there is nothing to
// compute numerically and the symbolic-integration notice is returned.
func (c *Calculator) Integral(text string, bounds *Bounds) string {
	if bounds == nil {
		return TextSymbolicIntegral
	}
	f, err := c.engine.Compile(text, c.variable)
	if err != nil {
		c.log.WithError(err).WithField("input", text).Debug("integral failed")

		return errorPrefix + err.Error()
	}

	v, err := Integrate(f, bounds.Lower, bounds.Upper, c.steps)
	if err != nil {
		return errorPrefix + err.Error()
	}
	c.log.WithFields(logrus.Fields{
		"input": text,
		"lower": bounds.Lower,
		"upper": bounds.Upper,
		"steps": c.steps,
	}).Debug("integrated")

	return "∫[" + display.Shortest(bounds.Lower) + "," + display.Shortest(bounds.Upper) + "] = " + display.Fixed(v, c.precision)
}

// Limit renders "Limit = <value>" or TextNoLimit.
func (c *Calculator) Limit(text string, approach float64) string {
	f, err := c.engine.Compile(text, c.variable)
	if err != nil {
		c.log.WithError(err).WithField("input", text).Debug("limit failed")

		return errorPrefix + err.Error()
	}

	v, ok := EstimateLimit(f, approach, c.eps)
	c.log.WithFields(logrus.Fields{"input": text, "approach": approach, "found": ok}).Debug("limit probed")
	if !ok {
		return TextNoLimit
	}

	return "Limit = " + display.Fixed(v, c.precision)
}
