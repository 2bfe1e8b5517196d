package sharkara

func (p *parser) parseStatement() (Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.cur()
	switch tok.Kind {
	case KindIdentifier:
		if tok.Text == "if" {
			return p.parseIfStatement()
		}
		return p.parseAssignment()
	case KindWhileLoop:
		return p.parseWhileStatement()
	case KindForLoop:
		return p.parseForStatement()
	case KindVariableDeclaration:
		return p.parseVarDecl()
	case KindClass:
		return p.parseClassDecl()
	case KindEasyFunction:
		return p.parseFuncDecl()
	case KindMath, KindSimpleBinary:
		return p.parseCallStatement()
	default:
		return nil, p.errorUnexpected(tok)
	}
}

func (p *parser) parseAssignment() (Statement, error) {
	variable := p.cur()
	p.next()
	if _, err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Variable: variable, Value: value}, nil
}

func (p *parser) parseCallStatement() (Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// parseBraceBlock reads "{ statement* }" as used by class and function bodies.
func (p *parser) parseBraceBlock() ([]Statement, error) {
	if _, err := p.expectSymbol("{"); err != nil {
		return nil, err
	}
	body := []Statement{}
	for !p.curIsSymbol("}") {
		if p.curIs(KindEndOfFile) {
			return nil, p.errorExpected(p.cur(), "'}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.next()
	return body, nil
}
