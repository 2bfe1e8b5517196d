package sharkara

// parseVarDecl reads "var name [#int|#str|#bool] = expr".
func (p *parser) parseVarDecl() (Statement, error) {
	pos := p.cur().Pos
	p.next()

	name, err := p.expect(KindIdentifier, "variable name")
	if err != nil {
		return nil, err
	}

	decl := &VarDecl{Name: name, position: pos}
	if tok := p.cur(); isTypeAnnotation(tok.Kind) {
		decl.Type = &tok
		p.next()
	}

	if _, err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	decl.Value = value
	return decl, nil
}

func (p *parser) parseClassDecl() (Statement, error) {
	pos := p.cur().Pos
	p.next()

	name, err := p.expect(KindIdentifier, "class name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraceBlock()
	if err != nil {
		return nil, err
	}
	return &ClassDecl{Name: name, Body: body, position: pos}, nil
}

func (p *parser) parseFuncDecl() (Statement, error) {
	pos := p.cur().Pos
	p.next()

	name, err := p.expect(KindIdentifier, "function name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraceBlock()
	if err != nil {
		return nil, err
	}
	return &FuncDecl{Name: name, Body: body, position: pos}, nil
}
