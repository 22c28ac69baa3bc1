package frontend

import (
	"github.com/isaacev/tpas/feedback"
	"github.com/isaacev/tpas/source"
)

// DefaultMaxDepth bounds how deeply statements and expressions may nest
// before the parser gives up on the construct
const DefaultMaxDepth = 200

// Options tune a Parser. The zero value is usable
type Options struct {
	MaxDepth int
}

// Parse takes a file and returns its abstract-syntax-tree along with a log of
// every error and warning generated while lexing and parsing. Names are
// entered into (and looked up in) the given symbol table
func Parse(file *source.File, table *Symtab, opts Options) (ast *Program, log *feedback.Log) {
	log = feedback.NewLog(nil)
	parser := NewParser(file, table, log, opts)
	return parser.ParseProgram(), log
}

// Parser holds the state of a single parse: the one token of lookahead, the
// current nesting depth and whether it is recovering from a syntax error.
// While recovering, further syntax errors are dropped until the enclosing
// statement list regains control
type Parser struct {
	Lexer  *Lexer
	Symtab *Symtab
	Log    *feedback.Log

	current    Token
	depth      int
	maxDepth   int
	recovering bool
}

// NewParser returns a Parser positioned on the first token of the file
func NewParser(file *source.File, table *Symtab, log *feedback.Log, opts Options) *Parser {
	p := &Parser{
		Lexer:    NewLexer(file),
		Symtab:   table,
		Log:      log,
		maxDepth: opts.MaxDepth,
	}

	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}

	p.advance()
	return p
}

// ErrorCount returns how many errors have been reported so far, including
// lexical errors
func (p *Parser) ErrorCount() int {
	return p.Log.ErrorCount()
}

// advance replaces the current token with the next one from the lexer,
// logging any lexical error that came with it
func (p *Parser) advance() {
	tok, msg := p.Lexer.Next()
	p.Log.Add(msg)
	p.current = tok
}

func (p *Parser) at(sym TokenSymbol) bool {
	return p.current.Symbol == sym
}

// expect consumes the current token if it matches "sym", otherwise it reports
// a syntax error with the given description
func (p *Parser) expect(sym TokenSymbol, description string) bool {
	if p.at(sym) {
		p.advance()
		return true
	}

	p.syntaxError(description)
	return false
}

func (p *Parser) message(classification, description string) feedback.Error {
	return feedback.Error{
		Classification: classification,
		File:           p.Lexer.File,
		What: feedback.Selection{
			Description: description,
			Span:        p.current.Span,
		},
		Offending: p.current.Lexeme,
	}
}

// reportSyntax records a syntax error at the current token without skipping
// any input
func (p *Parser) reportSyntax(description string) {
	if !p.recovering {
		p.Log.Add(p.message(feedback.SyntaxError, description))
	}
}

// syntaxError records a syntax error at the current token and then skips
// tokens until one that may follow a statement (";", END, UNTIL or EOF)
func (p *Parser) syntaxError(description string) {
	p.reportSyntax(description)
	p.recovering = true

	for !pascal.isStatementFollower(p.current.Symbol) {
		p.advance()
	}
}

// semanticError records an error at the current token. Semantic errors never
// skip input
func (p *Parser) semanticError(description string) {
	p.Log.Add(p.message(feedback.SemanticError, description))
}

func (p *Parser) warning(classification string, tok Token, description string) {
	p.Log.Add(feedback.Warning{
		Classification: classification,
		File:           p.Lexer.File,
		What: feedback.Selection{
			Description: description,
			Span:        tok.Span,
		},
		Offending: tok.Lexeme,
	})
}

// nest increments the nesting depth and reports whether the limit still
// holds. Every call must be paired with a call to unnest
func (p *Parser) nest() bool {
	p.depth++

	if p.depth > p.maxDepth {
		p.syntaxError("Nesting too deep")
		return false
	}

	return true
}

func (p *Parser) unnest() {
	p.depth--
}

// ParseProgram parses a whole compilation unit:
//
//   ['PROGRAM' IDENTIFIER ';'] 'BEGIN' statementList 'END' '.'
//
// A tree is always returned, errors or not
func (p *Parser) ParseProgram() *Program {
	prog := &Program{Start: p.current.Span.Start}

	if p.at(ProgramSymbol) {
		p.advance()

		if p.at(IdentSymbol) {
			prog.Name = p.current.Lexeme
			entry := p.Symtab.Enter(prog.Name)
			entry.Kind = ProgramName
			entry.Line = p.current.Line()
			p.advance()
		} else {
			p.syntaxError("Expecting program name")
		}

		p.expect(SemicolonSymbol, "Missing ;")
	}

	p.recovering = false

	if p.at(BeginSymbol) {
		prog.Body = p.parseCompoundStatement()
	} else {
		// Report the missing BEGIN once, then read the rest as if it had been
		// there so later statements still get checked
		p.reportSyntax("Expecting BEGIN")

		prog.Body = &Compound{Start: p.current.Span.Start}
		prog.Body.Statements = p.parseStatementList(EndSymbol)
		p.expect(EndSymbol, "Expecting END")
	}

	p.recovering = false

	if p.at(PeriodSymbol) {
		p.advance()
	} else {
		p.syntaxError("Expecting .")
	}

	return prog
}

// ParseStatements parses a bare statement list running to the end of the
// input. The interactive shell uses it to parse one entry at a time against a
// symbol table kept between entries
func (p *Parser) ParseStatements() *Compound {
	body := &Compound{Start: p.current.Span.Start}

	for {
		body.Statements = append(body.Statements, p.parseStatementList(EOFSymbol)...)

		if p.at(EOFSymbol) {
			return body
		}

		// A stray END or UNTIL stops the statement list without being consumed
		p.syntaxError("Unexpected token")
		p.advance()
		p.recovering = false
	}
}

// parseStatementList collects statements separated by semicolons until the
// "terminator" token, the end of input, or any other token that can only
// follow a statement. A missing semicolon between two statements is reported
// but the second statement is still parsed
func (p *Parser) parseStatementList(terminator TokenSymbol) (stmts []Stmt) {
	for {
		sym := p.current.Symbol

		if sym == terminator || sym == EOFSymbol {
			return stmts
		}

		if sym != SemicolonSymbol && pascal.isStatementFollower(sym) {
			return stmts
		}

		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}

		p.recovering = false

		if p.at(SemicolonSymbol) {
			for p.at(SemicolonSymbol) {
				p.advance()
			}
		} else if pascal.isStatementStarter(p.current.Symbol) {
			p.reportSyntax("Missing ;")
		}
	}
}
