package expr

import "strings"

// Parse builds a tree from text without caching.
//
// Grammar:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary | implicit }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | ident | func "(" sum ")" | "(" sum ")"
//
// implicit is a power that starts with a number, an identifier or "(" right
// after a complete factor: 2x, 3(x+1), x(x+1), (x+1)(x-1).
func Parse(text string) (Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyExpression
	}
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, posErrorf(ErrSyntax, t.pos, "unexpected %q", t.text)
	}

	return n, nil
}

type parser struct {
	toks []token
	at   int
}

func (p *parser) peek() token { return p.toks[p.at] }

func (p *parser) next() token {
	t := p.toks[p.at]
	if t.kind != tokEOF {
		p.at++
	}

	return t
}

func (p *parser) isOp(ops string) bool {
	t := p.peek()

	return t.kind == tokOp && strings.Contains(ops, t.text)
}

func (p *parser) sum() (Node, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for p.isOp("+-") {
		op := p.next().text[0]
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, L: left, R: right}
	}

	return left, nil
}

func (p *parser) product() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		var right Node
		switch t := p.peek(); {
		case p.isOp("*/"):
			op = p.next().text[0]
			right, err = p.unary()
		case t.kind == tokNumber || t.kind == tokIdent || t.kind == tokLParen:
			op = '*'
			right, err = p.power()
		default:
			return left, nil
		}
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) unary() (Node, error) {
	if p.isOp("+-") {
		sign := p.next().text
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if sign == "+" {
			return x, nil
		}

		return neg(x), nil
	}

	return p.power()
}

func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}

	return Binary{Op: '^', L: base, R: exp}, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return Num{Value: t.num}, nil

	case tokIdent:
		if p.peek().kind != tokLParen {
			if _, ok := functions[t.text]; ok {
				return nil, posErrorf(ErrSyntax, t.pos, "%s needs an argument in parentheses", t.text)
			}

			return Var{Name: t.text}, nil
		}
		if _, ok := functions[t.text]; !ok {
			// A variable or constant before "(" multiplies a group: x(x+1), pi(r+1).
			if _, isConst := constants[t.text]; isConst || len([]rune(t.text)) == 1 {
				return Var{Name: t.text}, nil
			}

			return nil, posErrorf(ErrUnknownFunction, t.pos, "%q", t.text)
		}
		p.next() // (
		arg, err := p.sum()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen); err != nil {
			return nil, err
		}

		return Call{Func: t.text, Arg: arg}, nil

	case tokLParen:
		inner, err := p.sum()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen); err != nil {
			return nil, err
		}

		return inner, nil

	case tokEOF:
		return nil, posErrorf(ErrSyntax, t.pos, "unexpected end of input")
	}

	return nil, posErrorf(ErrSyntax, t.pos, "unexpected %q", t.text)
}

func (p *parser) expect(kind tokenKind) error {
	t := p.next()
	if t.kind != kind {
		if t.kind == tokEOF {
			return posErrorf(ErrSyntax, t.pos, "missing closing parenthesis")
		}

		return posErrorf(ErrSyntax, t.pos, "unexpected %q", t.text)
	}

	return nil
}
