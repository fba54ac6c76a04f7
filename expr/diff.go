package expr

import "fmt"

// Differentiate returns d(n)/d(variable).
func Differentiate(n Node, variable string) (Node, error) {
	switch t := n.(type) {
	case Num:
		return Num{0}, nil

	case Var:
		if t.Name == variable {
			return Num{1}, nil
		}

		return Num{0}, nil

	case Neg:
		dx, err := Differentiate(t.X, variable)
		if err != nil {
			return nil, err
		}

		return neg(dx), nil

	case Call:
		fn, ok := functions[t.Func]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, t.Func)
		}
		du, err := Differentiate(t.Arg, variable)
		if err != nil {
			return nil, err
		}

		return mul(fn.outer(t.Arg), du), nil

	case Binary:
		return diffBinary(t, variable)
	}

	return nil, fmt.Errorf("%w: node %T", ErrSyntax, n)
}

func diffBinary(b Binary, variable string) (Node, error) {
	dl, err := Differentiate(b.L, variable)
	if err != nil {
		return nil, err
	}
	dr, err := Differentiate(b.R, variable)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case '+':
		return add(dl, dr), nil

	case '-':
		return sub(dl, dr), nil

	case '*':
		// (uv)′ = u′v + uv′
		return add(mul(dl, b.R), mul(b.L, dr)), nil

	case '/':
		// (u/v)′ = (u′v − uv′) / v²
		if isConst(b.R, variable) {
			return div(dl, b.R), nil
		}

		return div(sub(mul(dl, b.R), mul(b.L, dr)), pow(b.R, Num{2})), nil

	case '^':
		return diffPower(b.L, b.R, dl, dr, variable), nil
	}

	return nil, fmt.Errorf("%w: operator %q", ErrSyntax, b.Op)
}

// diffPower handles u^v in three shapes:
//   - v constant: v·u^(v−1)·u′
//   - u constant: u^v·ln(u)·v′
//   - general:    u^v·(v′·ln(u) + v·u′/u)
func diffPower(u, v, du, dv Node, variable string) Node {
	uConst, vConst := isConst(u, variable), isConst(v, variable)

	switch {
	case uConst && vConst:
		return Num{0}

	case vConst:
		return mul(mul(v, pow(u, sub(v, Num{1}))), du)

	case uConst:
		return mul(mul(pow(u, v), lnOf(u)), dv)
	}

	return mul(pow(u, v), add(mul(dv, call("ln", u)), div(mul(v, du), u)))
}

// lnOf is ln(u) for a constant u, with ln(e) folded to 1.
func lnOf(u Node) Node {
	if v, ok := u.(Var); ok && v.Name == "e" {
		return Num{1}
	}

	return call("ln", u)
}
