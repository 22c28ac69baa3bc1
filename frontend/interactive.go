package frontend

import (
	"github.com/isaacev/tpas/feedback"
	"github.com/isaacev/tpas/source"
)

// NeedsMoreInput reports whether interactive input stops in the middle of a
// construct: inside a comment or string literal, or with more BEGIN, REPEAT
// and CASE keywords open than END and UNTIL keywords closing them. The
// interactive shell keeps reading lines while this holds
func NeedsMoreInput(text string) bool {
	toks, msgs := Tokenize(source.NewFile("<repl>", text))

	for _, msg := range msgs {
		if err, ok := msg.(feedback.Error); ok {
			switch err.What.Description {
			case "Unterminated comment", "Unterminated string":
				return true
			}
		}
	}

	open := 0

	for _, tok := range toks {
		switch tok.Symbol {
		case BeginSymbol, RepeatSymbol, CaseSymbol:
			open++
		case EndSymbol, UntilSymbol:
			open--
		}
	}

	return open > 0
}

// ParseInteractive parses one entry of the interactive shell as a statement
// list. The symbol table carries names over from earlier entries
func ParseInteractive(text string, table *Symtab, opts Options) (*Compound, *feedback.Log) {
	log := feedback.NewLog(nil)
	parser := NewParser(source.NewFile("<repl>", text), table, log, opts)
	return parser.ParseStatements(), log
}
