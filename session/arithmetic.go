package session

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvcalc/display"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/spf13/cast"
)

const (
	arithmeticZero  = "0"
	arithmeticError = "Error"
)

// Arithmetic is the keypad calculator: the display holds an expression
// that "=" evaluates, plus a memory register and one-operand keys.
type Arithmetic struct {
	base
	engine  *expr.Engine
	display string
	memory  float64
}

func newArithmetic(b base, env Env) *Arithmetic {
	return &Arithmetic{base: b, engine: env.Engine, display: arithmeticZero}
}

// Display implements Session.
func (a *Arithmetic) Display() string { return a.display }

// Memory reports the memory register.
func (a *Arithmetic) Memory() float64 { return a.memory }

// Clear implements Session. The memory register is kept.
func (a *Arithmetic) Clear() {
	a.display = arithmeticZero
	a.state = StateIdle
}

// Press implements Session.
//
// Digits and "." start a new entry after a result; operators continue from
// it, so "=" "+" "1" "=" keeps adding. MC MR M+ M- work on the memory
// register, √ x² 1/x % act on the displayed value.
func (a *Arithmetic) Press(key string) error {
	switch k := strings.TrimSpace(key); {
	case isClear(k):
		a.Clear()
	case k == "=":
		a.evaluate()
	case k == "MC", k == "MR", k == "M+", k == "M-":
		a.memoryOp(k)
	case k == "√", k == "sqrt", k == "x²", k == "sqr", k == "1/x", k == "%":
		a.unaryOp(k)
	case k != "" && strings.Trim(k, "0123456789.") == "":
		a.enter(k, true)
	case k != "" && strings.Trim(k, "0123456789.+-*/^() ") == "":
		a.enter(k, false)
	default:
		return unknownKey(a.mode, key)
	}

	return nil
}

// enter appends input. startsNumber marks digit-only input, which replaces
// a finished result instead of extending it.
func (a *Arithmetic) enter(k string, startsNumber bool) {
	switch {
	case a.state == StateHasResult && (startsNumber || a.display == arithmeticError):
		a.display = k
	case a.display == arithmeticZero && (startsNumber && !strings.HasPrefix(k, ".") || k == "-" || k == "("):
		a.display = k
	default:
		a.display += k
	}
	a.state = StateAwaitingOperand
}

func (a *Arithmetic) evaluate() {
	v, err := a.engine.Evaluate(a.display, nil)
	if err != nil {
		a.log.WithError(err).WithField("input", a.display).Debug("evaluate failed")
		a.display = arithmeticError
	} else {
		a.log.WithField("input", a.display).Debug("evaluated")
		a.display = display.Shortest(v)
	}
	a.state = StateHasResult
}

// current is the displayed value; anything unparsable ("Error", "2+") is NaN.
func (a *Arithmetic) current() float64 {
	v, err := cast.ToFloat64E(a.display)
	if err != nil {
		return math.NaN()
	}

	return v
}

func (a *Arithmetic) memoryOp(k string) {
	switch k {
	case "MC":
		a.memory = 0
	case "MR":
		a.display = display.Shortest(a.memory)
	case "M+":
		a.memory += a.current()
	case "M-":
		a.memory -= a.current()
	}
	a.state = StateHasResult
}

func (a *Arithmetic) unaryOp(k string) {
	v := a.current()
	switch k {
	case "√", "sqrt":
		v = math.Sqrt(v)
	case "x²", "sqr":
		v *= v
	case "1/x":
		v = 1 / v
	case "%":
		v /= 100
	}
	a.display = display.Shortest(v)
	a.state = StateHasResult
}
