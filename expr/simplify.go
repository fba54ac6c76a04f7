package expr

import "math"

// Smart constructors used by the differentiator. Each folds numeric
// operands and drops identities (0+x, 1*x, x^1, ...) so derivative trees
// stay readable. None of them looks inside the function table.

func isNum(n Node, v float64) bool {
	c, ok := n.(Num)

	return ok && c.Value == v
}

func add(a, b Node) Node {
	switch {
	case isNum(a, 0):
		return b
	case isNum(b, 0):
		return a
	}
	if x, ok := a.(Num); ok {
		if y, ok := b.(Num); ok {
			return Num{x.Value + y.Value}
		}
	}
	if nb, ok := b.(Neg); ok {
		return sub(a, nb.X)
	}
	if y, ok := b.(Num); ok && y.Value < 0 {
		return sub(a, Num{-y.Value})
	}

	return Binary{Op: '+', L: a, R: b}
}

func sub(a, b Node) Node {
	switch {
	case isNum(b, 0):
		return a
	case isNum(a, 0):
		return neg(b)
	}
	if x, ok := a.(Num); ok {
		if y, ok := b.(Num); ok {
			return Num{x.Value - y.Value}
		}
	}
	if nb, ok := b.(Neg); ok {
		return add(a, nb.X)
	}
	if y, ok := b.(Num); ok && y.Value < 0 {
		return add(a, Num{-y.Value})
	}
	if a.String() == b.String() {
		return Num{0}
	}

	return Binary{Op: '-', L: a, R: b}
}

func neg(a Node) Node {
	switch t := a.(type) {
	case Num:
		return Num{-t.Value}
	case Neg:
		return t.X
	}

	return Neg{X: a}
}

func mul(a, b Node) Node {
	switch {
	case isNum(a, 0), isNum(b, 0):
		return Num{0}
	case isNum(a, 1):
		return b
	case isNum(b, 1):
		return a
	case isNum(a, -1):
		return neg(b)
	case isNum(b, -1):
		return neg(a)
	}

	// Keep numeric coefficients on the left.
	if _, ok := b.(Num); ok {
		if _, ok := a.(Num); !ok {
			a, b = b, a
		}
	}
	if na, ok := a.(Neg); ok {
		return neg(mul(na.X, b))
	}
	if nb, ok := b.(Neg); ok {
		return neg(mul(a, nb.X))
	}

	if x, ok := a.(Num); ok {
		switch y := b.(type) {
		case Num:
			return Num{x.Value * y.Value}
		case Binary:
			// c1 * (c2 * u) → (c1·c2) * u
			if c, ok := y.L.(Num); ok && y.Op == '*' {
				return mul(Num{x.Value * c.Value}, y.R)
			}
		}
		if x.Value < 0 {
			return neg(mul(Num{-x.Value}, b))
		}
	}

	return Binary{Op: '*', L: a, R: b}
}

func div(a, b Node) Node {
	switch {
	case isNum(a, 0) && !isNum(b, 0):
		return Num{0}
	case isNum(b, 1):
		return a
	}
	if x, ok := a.(Num); ok {
		if y, ok := b.(Num); ok && y.Value != 0 {
			return Num{x.Value / y.Value}
		}
	}
	if na, ok := a.(Neg); ok {
		return neg(div(na.X, b))
	}

	return Binary{Op: '/', L: a, R: b}
}

func pow(a, b Node) Node {
	switch {
	case isNum(b, 0):
		return Num{1}
	case isNum(b, 1):
		return a
	}
	if x, ok := a.(Num); ok {
		if y, ok := b.(Num); ok {
			if v := math.Pow(x.Value, y.Value); !math.IsNaN(v) && !math.IsInf(v, 0) {
				return Num{v}
			}
		}
	}

	return Binary{Op: '^', L: a, R: b}
}

func call(name string, arg Node) Node {
	return Call{Func: name, Arg: arg}
}
