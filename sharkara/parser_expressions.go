package sharkara

const (
	lowestPrec = iota
	precSum
	precProduct
)

var precedences = map[TokenKind]int{
	KindAddition:       precSum,
	KindSubtraction:    precSum,
	KindMultiplication: precProduct,
	KindDivision:       precProduct,
}

func (p *parser) parseExpression() (Expression, error) {
	if p.config.BinaryExpressions {
		return p.parseBinary(lowestPrec)
	}
	return p.parseOperand()
}

// parseOperand reads exactly one token as an expression. Operator tokens are
// accepted as operands; no precedence tree is built.
func (p *parser) parseOperand() (Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case KindList:
		return p.parseListLiteral()
	case KindNumber, KindIdentifier, KindSymbol, KindMath, KindSimpleBinary:
		p.next()
		return &Expr{Token: tok}, nil
	default:
		if isOperator(tok.Kind) {
			p.next()
			return &Expr{Token: tok}, nil
		}
		return nil, p.errorExpected(tok, "expression")
	}
}

func (p *parser) parseBinary(precedence int) (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		opPrec, ok := precedences[p.cur().Kind]
		if !ok || opPrec <= precedence {
			return left, nil
		}
		op := p.cur()
		p.next()
		right, err := p.parseBinary(opPrec)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Operator: op, Left: left, Right: right}
	}
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case KindList:
		return p.parseListLiteral()
	case KindNumber, KindIdentifier, KindMath, KindSimpleBinary:
		p.next()
		return &Expr{Token: tok}, nil
	case KindSymbol:
		if tok.Text == "(" {
			return p.parseGroupedExpression()
		}
	}
	return nil, p.errorExpected(tok, "expression")
}

func (p *parser) parseGroupedExpression() (Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	expr, err := p.parseBinary(lowestPrec)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseListLiteral reads "lst[]" optionally followed by "(e1, e2, ...)".
func (p *parser) parseListLiteral() (Expression, error) {
	pos := p.cur().Pos
	p.next()

	list := &ListLiteral{Elements: []Expression{}, position: pos}
	if !p.curIsSymbol("(") {
		return list, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.next()

	if p.curIsSymbol(")") {
		p.next()
		return list, nil
	}
	for {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)

		switch {
		case p.curIsSymbol(","):
			p.next()
		case p.curIsSymbol(")"):
			p.next()
			return list, nil
		default:
			return nil, p.errorExpected(p.cur(), "',' or ')'")
		}
	}
}
