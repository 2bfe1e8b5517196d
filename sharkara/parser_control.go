package sharkara

func (p *parser) parseIfStatement() (Statement, error) {
	pos := p.cur().Pos
	p.next()
	condition, body, err := p.parseConditionAndBody()
	if err != nil {
		return nil, err
	}
	return &IfStmt{Condition: condition, Body: body, position: pos}, nil
}

func (p *parser) parseWhileStatement() (Statement, error) {
	pos := p.cur().Pos
	p.next()
	condition, body, err := p.parseConditionAndBody()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body, position: pos}, nil
}

func (p *parser) parseConditionAndBody() (Expression, Statement, error) {
	condition, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, nil, err
	}
	return condition, body, nil
}

// parseForStatement reads "for expr ((,|;) expr)* statement* EndFor". Both
// "esac" and "end." close the loop.
func (p *parser) parseForStatement() (Statement, error) {
	pos := p.cur().Pos
	p.next()

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	control := []Expression{first}
	for p.curIsSymbol(",") || p.curIsSymbol(";") {
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		control = append(control, expr)
	}

	body := []Statement{}
	for !p.curIs(KindEndFor) {
		if p.curIs(KindEndOfFile) {
			return nil, p.errorExpected(p.cur(), "'esac' or 'end.'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	terminator := p.cur()
	p.next()

	return &ForStmt{Control: control, Body: body, Terminator: terminator, position: pos}, nil
}
