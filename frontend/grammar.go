package frontend

import (
	"strings"
	"unicode"
)

// Grammar holds the fixed tables of the language: reserved words, single rune
// punctuators, the token sets used for statement separation and error
// recovery, and the mapping from operator tokens to the node kinds they build.
// The only instance is built once when the package loads and is never
// modified afterwards
type Grammar struct {
	Keywords    map[string]TokenSymbol
	Punctuators map[rune]TokenSymbol

	statementStarters  map[TokenSymbol]bool
	statementFollowers map[TokenSymbol]bool

	relationalOperators     map[TokenSymbol]NodeKind
	additiveOperators       map[TokenSymbol]NodeKind
	multiplicativeOperators map[TokenSymbol]NodeKind
}

var pascal = newGrammar()

func newGrammar() *Grammar {
	g := &Grammar{
		Keywords:    make(map[string]TokenSymbol),
		Punctuators: make(map[rune]TokenSymbol),
	}

	for _, sym := range []TokenSymbol{
		ProgramSymbol, BeginSymbol, EndSymbol, RepeatSymbol, UntilSymbol,
		WriteSymbol, WritelnSymbol, DivSymbol, ModSymbol, AndSymbol, OrSymbol,
		NotSymbol, ConstSymbol, TypeSymbol, VarSymbol, ProcedureSymbol,
		FunctionSymbol, WhileSymbol, DoSymbol, ForSymbol, ToSymbol,
		DowntoSymbol, IfSymbol, ThenSymbol, ElseSymbol, CaseSymbol, OfSymbol,
	} {
		g.Keywords[string(sym)] = sym
	}

	// Runes which always form a token on their own. The runes '.', ':', '<'
	// and '>' need a rune of lookahead and are handled by the lexer directly
	for _, sym := range []TokenSymbol{
		SemicolonSymbol, CommaSymbol, PlusSymbol, MinusSymbol, StarSymbol,
		SlashSymbol, EqualsSymbol, LParenSymbol, RParenSymbol, LBracketSymbol,
		RBracketSymbol, CaretSymbol,
	} {
		g.Punctuators[rune(sym[0])] = sym
	}

	g.statementStarters = map[TokenSymbol]bool{
		BeginSymbol:   true,
		IdentSymbol:   true,
		RepeatSymbol:  true,
		WhileSymbol:   true,
		IfSymbol:      true,
		ForSymbol:     true,
		CaseSymbol:    true,
		WriteSymbol:   true,
		WritelnSymbol: true,
	}

	g.statementFollowers = map[TokenSymbol]bool{
		SemicolonSymbol: true,
		EndSymbol:       true,
		UntilSymbol:     true,
		EOFSymbol:       true,
	}

	// AND and OR share the precedence level of the comparison operators
	g.relationalOperators = map[TokenSymbol]NodeKind{
		EqualsSymbol:        EqNode,
		LessThanSymbol:      LtNode,
		LessEqualsSymbol:    LeNode,
		GreaterThanSymbol:   GtNode,
		GreaterEqualsSymbol: GeNode,
		NotEqualsSymbol:     NeNode,
		AndSymbol:           AndNode,
		OrSymbol:            OrNode,
	}

	g.additiveOperators = map[TokenSymbol]NodeKind{
		PlusSymbol:  AddNode,
		MinusSymbol: SubtractNode,
	}

	g.multiplicativeOperators = map[TokenSymbol]NodeKind{
		StarSymbol:  MultiplyNode,
		SlashSymbol: DivideNode,
		DivSymbol:   IntegerDivideNode,
	}

	return g
}

func (g *Grammar) isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func (g *Grammar) isCommentStart(r rune) bool {
	return r == '{'
}

func (g *Grammar) isCommentEnd(r rune) bool {
	return r == '}'
}

func (g *Grammar) isAlphabetical(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (g *Grammar) isNumeric(r rune) bool {
	return r >= '0' && r <= '9'
}

// lookupWord classifies a word as a reserved word or an identifier. Reserved
// words are matched without regard to case
func (g *Grammar) lookupWord(lexeme string) TokenSymbol {
	if sym, ok := g.Keywords[strings.ToUpper(lexeme)]; ok {
		return sym
	}

	return IdentSymbol
}

// IsKeyword reports whether a word (in any letter case) is reserved
func IsKeyword(word string) bool {
	return pascal.lookupWord(word) != IdentSymbol
}

func (g *Grammar) isStatementStarter(sym TokenSymbol) bool {
	return g.statementStarters[sym]
}

func (g *Grammar) isStatementFollower(sym TokenSymbol) bool {
	return g.statementFollowers[sym]
}
