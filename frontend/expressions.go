package frontend

// parseExpression
//  - ['NOT'] simpleExpression {relationalOperator simpleExpression}
//  - the relational operators are = < <= > >= <> AND OR, all at one level
//    and associating to the left
//  - NOT applies to the first simple expression only
func (p *Parser) parseExpression() Expr {
	start := p.current.Span.Start

	defer p.unnest()
	if !p.nest() {
		return &BadExpr{Start: start}
	}

	var expr Expr

	if p.at(NotSymbol) {
		p.advance()
		expr = &Unary{
			Operator: NotNode,
			Operand:  p.parseSimpleExpression(),
			Start:    start,
		}
	} else {
		expr = p.parseSimpleExpression()
	}

	for {
		kind, ok := pascal.relationalOperators[p.current.Symbol]
		if !ok {
			return expr
		}

		opPos := p.current.Span.Start
		p.advance()

		expr = &Binary{
			Operator: kind,
			Left:     expr,
			Right:    p.parseSimpleExpression(),
			Start:    opPos,
		}
	}
}

// parseSimpleExpression
//  - term {('+'|'-') term}
func (p *Parser) parseSimpleExpression() Expr {
	expr := p.parseTerm()

	for {
		kind, ok := pascal.additiveOperators[p.current.Symbol]
		if !ok {
			return expr
		}

		opPos := p.current.Span.Start
		p.advance()

		expr = &Binary{
			Operator: kind,
			Left:     expr,
			Right:    p.parseTerm(),
			Start:    opPos,
		}
	}
}

// parseTerm
//  - factor {('*'|'/'|'DIV') factor}
func (p *Parser) parseTerm() Expr {
	expr := p.parseFactor()

	for {
		kind, ok := pascal.multiplicativeOperators[p.current.Symbol]
		if !ok {
			return expr
		}

		opPos := p.current.Span.Start
		p.advance()

		expr = &Binary{
			Operator: kind,
			Left:     expr,
			Right:    p.parseFactor(),
			Start:    opPos,
		}
	}
}

// parseFactor
//  - ['-'] (IDENTIFIER | INTEGER | REAL | '(' expression ')')
//  - a leading minus negates literals and parenthesized expressions only, it
//    may not precede an identifier
func (p *Parser) parseFactor() Expr {
	start := p.current.Span.Start
	negative := false

	if p.at(MinusSymbol) {
		negative = true
		p.advance()
	}

	var expr Expr

	switch p.current.Symbol {
	case IdentSymbol:
		if negative {
			p.syntaxError("Unary minus not allowed before identifier")
			return &BadExpr{Start: start}
		}

		return p.parseVariable()
	case IntegerSymbol:
		expr = p.parseIntegerConstant()
	case RealSymbol:
		expr = p.parseRealConstant()
	case LParenSymbol:
		p.advance()
		expr = p.parseExpression()
		p.expect(RParenSymbol, "Expecting )")
	default:
		p.syntaxError("Unexpected token")
		return &BadExpr{Start: start}
	}

	if negative {
		return &Unary{
			Operator: NegateNode,
			Operand:  expr,
			Start:    start,
		}
	}

	return expr
}

// parseVariable builds a VARIABLE node for a name used as a value. Using a
// name that was never assigned is a semantic error; the node is still built,
// with a nil entry
func (p *Parser) parseVariable() *Variable {
	tok := p.current
	entry := p.Symtab.Lookup(tok.Lexeme)

	if entry == nil {
		p.semanticError("Undeclared identifier")
	}

	p.advance()

	return &Variable{
		Name:  tok.Lexeme,
		Entry: entry,
		Start: tok.Span.Start,
	}
}

func (p *Parser) parseIntegerConstant() *IntegerConst {
	tok := p.current
	p.advance()

	value, _ := tok.Value.(int64)
	return &IntegerConst{Lexeme: tok.Lexeme, Value: value, Start: tok.Span.Start}
}

func (p *Parser) parseRealConstant() *RealConst {
	tok := p.current
	p.advance()

	value, _ := tok.Value.(float64)
	return &RealConst{Lexeme: tok.Lexeme, Value: value, Start: tok.Span.Start}
}

func (p *Parser) parseStringConstant() *StringConst {
	tok := p.current
	p.advance()

	value, _ := tok.Value.(string)
	return &StringConst{Lexeme: tok.Lexeme, Value: value, Start: tok.Span.Start}
}
