package expr

import "strconv"

// Node is an immutable expression tree node.
type Node interface {
	// String renders the node as parseable text with minimal parentheses.
	String() string

	precedence() int
}

// Binding strength used by the printer; higher binds tighter.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

// Num is a numeric literal.
type Num struct{ Value float64 }

// Var is an identifier: the bound variable, a constant, or an unbound name.
type Var struct{ Name string }

// Neg is unary minus.
type Neg struct{ X Node }

// Binary is one of + - * / ^.
type Binary struct {
	Op   byte
	L, R Node
}

// Call applies a named function to one argument.
type Call struct {
	Func string
	Arg  Node
}

func (n Num) String() string {
	if n.Value == 0 {
		return "0"
	}

	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n Num) precedence() int {
	if n.Value < 0 {
		return precUnary
	}

	return precAtom
}

func (v Var) String() string { return v.Name }

func (v Var) precedence() int { return precAtom }

func (n Neg) String() string {
	p := n.X.precedence()

	return "-" + wrap(n.X, p == precSum || p == precUnary)
}

func (n Neg) precedence() int { return precUnary }

func (c Call) String() string { return c.Func + "(" + c.Arg.String() + ")" }

func (c Call) precedence() int { return precAtom }

func (b Binary) precedence() int { return opPrecedence(b.Op) }

func (b Binary) String() string {
	p := opPrecedence(b.Op)
	lp, rp := b.L.precedence(), b.R.precedence()

	var left, right bool
	switch b.Op {
	case '^':
		// Right-associative: a^b^c is a^(b^c), so the left side needs
		// parentheses at equal strength and the right side does not.
		left = lp <= p
		right = rp < p
	case '-', '/':
		left = lp < p
		right = rp <= p
	default:
		left = lp < p
		right = rp < p
	}

	sep := string(b.Op)
	if p == precSum {
		sep = " " + sep + " "
	}

	return wrap(b.L, left) + sep + wrap(b.R, right)
}

func opPrecedence(op byte) int {
	switch op {
	case '+', '-':
		return precSum
	case '*', '/':
		return precProduct
	}

	return precPower
}

func wrap(n Node, paren bool) string {
	if paren {
		return "(" + n.String() + ")"
	}

	return n.String()
}

// isConst reports whether n does not depend on variable.
func isConst(n Node, variable string) bool {
	switch t := n.(type) {
	case Num:
		return true
	case Var:
		return t.Name != variable
	case Neg:
		return isConst(t.X, variable)
	case Binary:
		return isConst(t.L, variable) && isConst(t.R, variable)
	case Call:
		return isConst(t.Arg, variable)
	}

	return false
}

// Identifiers returns the distinct identifiers in n, in first-seen order.
func Identifiers(n Node) []string {
	var out []string
	seen := map[string]bool{}
	var walk func(Node)
	walk = func(n Node) {
		switch t := n.(type) {
		case Var:
			if !seen[t.Name] {
				seen[t.Name] = true
				out = append(out, t.Name)
			}
		case Neg:
			walk(t.X)
		case Binary:
			walk(t.L)
			walk(t.R)
		case Call:
			walk(t.Arg)
		}
	}
	walk(n)

	return out
}
