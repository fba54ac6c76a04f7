package expr

import (
	"fmt"
	"math"
)

// Func is a compiled single-variable function.
type Func = func(x float64) float64

type function struct {
	eval func(float64) float64
	// outer returns f′(u) as a tree; the chain rule multiplies it by u′.
	outer func(u Node) Node
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var functions = map[string]function{
	"sin": {math.Sin, func(u Node) Node { return call("cos", u) }},
	"cos": {math.Cos, func(u Node) Node { return neg(call("sin", u)) }},
	"tan": {math.Tan, func(u Node) Node { return pow(call("cos", u), Num{-2}) }},
	"asin": {math.Asin, func(u Node) Node {
		return div(Num{1}, call("sqrt", sub(Num{1}, pow(u, Num{2}))))
	}},
	"acos": {math.Acos, func(u Node) Node {
		return neg(div(Num{1}, call("sqrt", sub(Num{1}, pow(u, Num{2})))))
	}},
	"atan": {math.Atan, func(u Node) Node { return div(Num{1}, add(Num{1}, pow(u, Num{2}))) }},
	"sinh": {math.Sinh, func(u Node) Node { return call("cosh", u) }},
	"cosh": {math.Cosh, func(u Node) Node { return call("sinh", u) }},
	"tanh": {math.Tanh, func(u Node) Node { return pow(call("cosh", u), Num{-2}) }},
	"exp":  {math.Exp, func(u Node) Node { return call("exp", u) }},
	"ln":   {math.Log, func(u Node) Node { return div(Num{1}, u) }},
	"log":  {math.Log10, func(u Node) Node { return div(Num{1}, mul(u, call("ln", Num{10}))) }},
	"sqrt": {math.Sqrt, func(u Node) Node { return div(Num{1}, mul(Num{2}, call("sqrt", u))) }},
	"abs":  {math.Abs, func(u Node) Node { return div(u, call("abs", u)) }},
}

// lookup resolves an identifier to an evaluator.
type lookup func(name string) (func(x float64) float64, bool)

// bindVariable binds one variable name to the evaluation argument; other
// names fall back to the constants.
func bindVariable(variable string) lookup {
	return func(name string) (func(float64) float64, bool) {
		if name == variable {
			return func(x float64) float64 { return x }, true
		}

		return constantLookup(name)
	}
}

// bindValues binds names to fixed values; other names fall back to the constants.
func bindValues(vars map[string]float64) lookup {
	return func(name string) (func(float64) float64, bool) {
		if v, ok := vars[name]; ok {
			return func(float64) float64 { return v }, true
		}

		return constantLookup(name)
	}
}

func constantLookup(name string) (func(float64) float64, bool) {
	c, ok := constants[name]
	if !ok {
		return nil, false
	}

	return func(float64) float64 { return c }, true
}

// compile turns a tree into a closure. Every identifier is resolved up
// front, so the returned Func never fails; domain errors surface as NaN or
// ±Inf exactly as the math package reports them.
func compile(n Node, resolve lookup) (Func, error) {
	switch t := n.(type) {
	case Num:
		v := t.Value

		return func(float64) float64 { return v }, nil

	case Var:
		f, ok := resolve(t.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnboundVariable, t.Name)
		}

		return f, nil

	case Neg:
		x, err := compile(t.X, resolve)
		if err != nil {
			return nil, err
		}

		return func(v float64) float64 { return -x(v) }, nil

	case Call:
		fn, ok := functions[t.Func]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, t.Func)
		}
		arg, err := compile(t.Arg, resolve)
		if err != nil {
			return nil, err
		}
		eval := fn.eval

		return func(v float64) float64 { return eval(arg(v)) }, nil

	case Binary:
		l, err := compile(t.L, resolve)
		if err != nil {
			return nil, err
		}
		r, err := compile(t.R, resolve)
		if err != nil {
			return nil, err
		}
		switch t.Op {
		case '+':
			return func(v float64) float64 { return l(v) + r(v) }, nil
		case '-':
			return func(v float64) float64 { return l(v) - r(v) }, nil
		case '*':
			return func(v float64) float64 { return l(v) * r(v) }, nil
		case '/':
			return func(v float64) float64 { return l(v) / r(v) }, nil
		case '^':
			return func(v float64) float64 { return math.Pow(l(v), r(v)) }, nil
		}

		return nil, fmt.Errorf("%w: operator %q", ErrSyntax, t.Op)
	}

	return nil, fmt.Errorf("%w: node %T", ErrSyntax, n)
}
