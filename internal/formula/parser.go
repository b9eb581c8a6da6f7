package formula

import "fmt"

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

func parse(src string) (node, error) {
	p := &parser{l: lexer{s: src}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, ErrEmpty
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parsePower is right-associative: a^b^c parses as a^(b^c).
func (p *parser) parsePower() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := p.cur.text
		p.next()
		if p.cur.kind == tokLParen {
			return p.parseCall(name)
		}
		return resolveIdent(name)
	case tokLParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return n, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
}

func (p *parser) parseCall(name string) (node, error) {
	p.next() // consume '('
	var args []node
	if p.cur.kind != tokRParen {
		for {
			a, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.cur.kind == tokComma {
				p.next()
				continue
			}
			break
		}
	}
	if p.cur.kind != tokRParen {
		return nil, fmt.Errorf("%w: expected ')'", ErrParse)
	}
	p.next()

	if fn, ok := unaryFuncs[name]; ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrArity, name, len(args))
		}
		return nodeCall1{fn: fn, x: args[0]}, nil
	}
	if fn, ok := binaryFuncs[name]; ok {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %s takes 2 arguments, got %d", ErrArity, name, len(args))
		}
		return nodeCall2{fn: fn, a: args[0], b: args[1]}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFunc, name)
}

func resolveIdent(name string) (node, error) {
	switch name {
	case "X", "x":
		return nodeVar{kind: varX}, nil
	case "Y", "y":
		return nodeVar{kind: varY}, nil
	case "time_factor", "t":
		return nodeVar{kind: varTime}, nil
	}
	if v, ok := constants[name]; ok {
		return nodeNumber{v: v}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownIdent, name)
}
