package frontend

import (
	"github.com/isaacev/tpas/feedback"
)

// parseStatement dispatches on the current token. It returns nil for the
// empty statement and for statements too broken to build a node for
func (p *Parser) parseStatement() Stmt {
	defer p.unnest()
	if !p.nest() {
		return nil
	}

	switch p.current.Symbol {
	case IdentSymbol:
		return p.parseAssignmentStatement()
	case BeginSymbol:
		return p.parseCompoundStatement()
	case RepeatSymbol:
		return p.parseRepeatStatement()
	case WhileSymbol:
		return p.parseWhileStatement()
	case IfSymbol:
		return p.parseIfStatement()
	case ForSymbol:
		return p.parseForStatement()
	case CaseSymbol:
		return p.parseCaseStatement()
	case WriteSymbol:
		return p.parseWriteStatement()
	case WritelnSymbol:
		return p.parseWritelnStatement()
	case SemicolonSymbol, EndSymbol, UntilSymbol:
		// empty statement
		return nil
	default:
		p.syntaxError("Unexpected token")
		return nil
	}
}

// parseBody parses the statement controlled by DO, THEN or ELSE. An empty
// statement becomes an empty COMPOUND so the parent keeps its shape
func (p *Parser) parseBody() Stmt {
	start := p.current.Span.Start

	if stmt := p.parseStatement(); stmt != nil {
		return stmt
	}

	return &Compound{Start: start}
}

// Assignment
//  - IDENTIFIER ':=' expression
//  - the first assignment to a name declares it
func (p *Parser) parseAssignmentStatement() *Assign {
	tok := p.current

	entry := p.Symtab.Lookup(tok.Lexeme)
	if entry == nil {
		entry = p.Symtab.Enter(tok.Lexeme)
		entry.Line = tok.Line()
	}

	assign := &Assign{
		Target: &Variable{
			Name:  tok.Lexeme,
			Entry: entry,
			Start: tok.Span.Start,
		},
		Start: tok.Span.Start,
	}

	p.advance()
	p.expect(ColonEqualsSymbol, "Missing :=")

	assign.Value = p.parseExpression()
	return assign
}

// Compound
//  - 'BEGIN' statementList 'END'
func (p *Parser) parseCompoundStatement() *Compound {
	compound := &Compound{Start: p.current.Span.Start}

	p.advance()
	compound.Statements = p.parseStatementList(EndSymbol)
	p.expect(EndSymbol, "Expecting END")

	return compound
}

// Repeat
//  - 'REPEAT' statementList 'UNTIL' expression
//  - lowered to LOOP[statements..., TEST[expression]]
func (p *Parser) parseRepeatStatement() *Loop {
	loop := &Loop{Start: p.current.Span.Start}

	p.advance()
	loop.Parts = p.parseStatementList(UntilSymbol)

	if p.at(UntilSymbol) {
		test := &Test{Start: p.current.Span.Start}
		p.advance()

		test.Condition = p.parseExpression()
		loop.Parts = append(loop.Parts, test)
	} else {
		p.syntaxError("Expecting UNTIL")
	}

	return loop
}

// While
//  - 'WHILE' expression 'DO' statement
//  - lowered to LOOP[TEST[NOT expression], statement]
func (p *Parser) parseWhileStatement() *Loop {
	loop := &Loop{Start: p.current.Span.Start}
	p.advance()

	test := &Test{Start: p.current.Span.Start}
	test.Condition = &Unary{
		Operator: NotNode,
		Operand:  p.parseExpression(),
		Start:    test.Start,
	}

	loop.Parts = []Stmt{test}

	if p.expect(DoSymbol, "Expecting DO") {
		loop.Parts = append(loop.Parts, p.parseBody())
	} else {
		loop.Parts = append(loop.Parts, &Compound{Start: p.current.Span.Start})
	}

	return loop
}

// For
//  - 'FOR' IDENTIFIER ':=' expression ('TO'|'DOWNTO') expression 'DO' statement
//  - lowered to
//      COMPOUND[
//        ASSIGN[var, initial],
//        LOOP[TEST[GT[var, bound]], statement, ASSIGN[var, ADD[var, 1]]]]
//    with LT and SUBTRACT in place of GT and ADD for DOWNTO. Each occurrence
//    of the control variable is its own VARIABLE node
func (p *Parser) parseForStatement() *Compound {
	forTok := p.current
	compound := &Compound{Start: forTok.Span.Start}

	p.advance()

	if !p.at(IdentSymbol) {
		p.syntaxError("Expecting identifier")
		return compound
	}

	initial := p.parseAssignmentStatement()
	compound.Statements = []Stmt{initial}
	control := initial.Target

	var comparison, step NodeKind

	switch p.current.Symbol {
	case ToSymbol:
		comparison, step = GtNode, AddNode
	case DowntoSymbol:
		comparison, step = LtNode, SubtractNode
	default:
		p.syntaxError("Expecting TO or DOWNTO")
		return compound
	}

	directionTok := p.current
	p.advance()

	loop := &Loop{Start: forTok.Span.Start}
	test := &Test{
		Condition: &Binary{
			Operator: comparison,
			Left:     control.Copy(),
			Right:    p.parseExpression(),
			Start:    directionTok.Span.Start,
		},
		Start: directionTok.Span.Start,
	}

	loop.Parts = []Stmt{test}

	if p.expect(DoSymbol, "Expecting DO") {
		loop.Parts = append(loop.Parts, p.parseBody())
	} else {
		loop.Parts = append(loop.Parts, &Compound{Start: p.current.Span.Start})
	}

	loop.Parts = append(loop.Parts, &Assign{
		Target: control.Copy(),
		Value: &Binary{
			Operator: step,
			Left:     control.Copy(),
			Right: &IntegerConst{
				Lexeme: "1",
				Value:  1,
				Start:  directionTok.Span.Start,
			},
			Start: directionTok.Span.Start,
		},
		Start: forTok.Span.Start,
	})

	compound.Statements = append(compound.Statements, loop)
	return compound
}

// If
//  - 'IF' expression 'THEN' statement ['ELSE' statement]
func (p *Parser) parseIfStatement() *If {
	stmt := &If{Start: p.current.Span.Start}
	p.advance()

	stmt.Condition = p.parseExpression()
	stmt.Then = &Compound{Start: p.current.Span.Start}

	if !p.expect(ThenSymbol, "Expecting THEN") {
		return stmt
	}

	if !p.at(ElseSymbol) {
		stmt.Then = p.parseBody()
	}

	if p.at(ElseSymbol) {
		p.advance()
		stmt.Else = p.parseBody()
	}

	return stmt
}

// Case
//  - 'CASE' expression 'OF' statementList 'END' ';'
//  - the body is kept as a flat statement list inside a COMPOUND. Case labels
//    are not given any dispatch structure, which the parser points out with a
//    warning
func (p *Parser) parseCaseStatement() *Compound {
	caseTok := p.current
	compound := &Compound{Start: caseTok.Span.Start}

	p.advance()
	p.parseExpression()

	if !p.expect(OfSymbol, "Expecting OF") {
		return compound
	}

	p.warning(feedback.SyntaxError, caseTok, "CASE labels are not dispatched, body parsed as a statement list")

	compound.Statements = p.parseStatementList(EndSymbol)

	// The ";" after END is left for the enclosing statement list to consume.
	// When another statement follows directly, that list reports it missing
	if p.expect(EndSymbol, "Expecting END") {
		if !p.at(SemicolonSymbol) && !pascal.isStatementStarter(p.current.Symbol) {
			p.reportSyntax("Expecting ;")
		}
	}

	return compound
}

// Write
//  - 'WRITE' '(' argument [':' INTEGER [':' INTEGER]] ')'
func (p *Parser) parseWriteStatement() *Write {
	write := &Write{Start: p.current.Span.Start}
	p.advance()

	p.parseWriteArguments(write)

	if write.Argument == nil {
		p.syntaxError("Invalid WRITE statement")
	}

	return write
}

// Writeln
//  - 'WRITELN' ['(' argument [':' INTEGER [':' INTEGER]] ')']
func (p *Parser) parseWritelnStatement() *Write {
	write := &Write{Newline: true, Start: p.current.Span.Start}
	p.advance()

	if p.at(LParenSymbol) {
		p.parseWriteArguments(write)
	}

	return write
}

// parseWriteArguments parses the parenthesized argument of WRITE and WRITELN.
// The argument is a variable or a string/character literal, optionally
// followed by a field width and a count of decimal places
func (p *Parser) parseWriteArguments(write *Write) {
	if !p.expect(LParenSymbol, "Missing left parenthesis") {
		return
	}

	switch p.current.Symbol {
	case IdentSymbol:
		write.Argument = p.parseVariable()
	case StringSymbol, CharacterSymbol:
		write.Argument = p.parseStringConstant()
	default:
		p.syntaxError("Invalid WRITE or WRITELN statement")
		return
	}

	if p.at(ColonSymbol) {
		p.advance()

		if !p.at(IntegerSymbol) {
			p.syntaxError("Invalid field width")
			return
		}

		write.Width = p.parseIntegerConstant()

		if p.at(ColonSymbol) {
			p.advance()

			if !p.at(IntegerSymbol) {
				p.syntaxError("Invalid count of decimal places")
				return
			}

			write.Precision = p.parseIntegerConstant()
		}
	}

	p.expect(RParenSymbol, "Missing right parenthesis")
}
