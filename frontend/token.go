package frontend

import (
	"github.com/isaacev/tpas/source"
)

// TokenSymbol is the classification system for tokens. Identifier and literal
// tokens are represented by general token symbols (like "Identifier") while
// reserved words are represented by their uppercase spelling and operator and
// punctuation tokens by their literal values
type TokenSymbol string

// Token structs represent a lexical atom. Lexeme is exactly the run of source
// characters that produced the token. Value holds the decoded literal for
// Integer (int64), Real (float64), String and Character (string) tokens
type Token struct {
	Symbol TokenSymbol
	Lexeme string
	Value  interface{}
	Span   source.Span
}

// Line returns the line the token starts on
func (t Token) Line() int {
	return t.Span.Start.Line
}

// Literal classes and other general token symbols
const (
	EOFSymbol       TokenSymbol = "EOF"
	ErrorSymbol     TokenSymbol = "Error"
	IdentSymbol     TokenSymbol = "Identifier"
	IntegerSymbol   TokenSymbol = "Integer"
	RealSymbol      TokenSymbol = "Real"
	StringSymbol    TokenSymbol = "String"
	CharacterSymbol TokenSymbol = "Character"
)

// Reserved words
const (
	ProgramSymbol   TokenSymbol = "PROGRAM"
	BeginSymbol     TokenSymbol = "BEGIN"
	EndSymbol       TokenSymbol = "END"
	RepeatSymbol    TokenSymbol = "REPEAT"
	UntilSymbol     TokenSymbol = "UNTIL"
	WriteSymbol     TokenSymbol = "WRITE"
	WritelnSymbol   TokenSymbol = "WRITELN"
	DivSymbol       TokenSymbol = "DIV"
	ModSymbol       TokenSymbol = "MOD"
	AndSymbol       TokenSymbol = "AND"
	OrSymbol        TokenSymbol = "OR"
	NotSymbol       TokenSymbol = "NOT"
	ConstSymbol     TokenSymbol = "CONST"
	TypeSymbol      TokenSymbol = "TYPE"
	VarSymbol       TokenSymbol = "VAR"
	ProcedureSymbol TokenSymbol = "PROCEDURE"
	FunctionSymbol  TokenSymbol = "FUNCTION"
	WhileSymbol     TokenSymbol = "WHILE"
	DoSymbol        TokenSymbol = "DO"
	ForSymbol       TokenSymbol = "FOR"
	ToSymbol        TokenSymbol = "TO"
	DowntoSymbol    TokenSymbol = "DOWNTO"
	IfSymbol        TokenSymbol = "IF"
	ThenSymbol      TokenSymbol = "THEN"
	ElseSymbol      TokenSymbol = "ELSE"
	CaseSymbol      TokenSymbol = "CASE"
	OfSymbol        TokenSymbol = "OF"
)

// Operators and punctuation
const (
	PeriodSymbol        TokenSymbol = "."
	DotDotSymbol        TokenSymbol = ".."
	ColonSymbol         TokenSymbol = ":"
	ColonEqualsSymbol   TokenSymbol = ":="
	SemicolonSymbol     TokenSymbol = ";"
	CommaSymbol         TokenSymbol = ","
	PlusSymbol          TokenSymbol = "+"
	MinusSymbol         TokenSymbol = "-"
	StarSymbol          TokenSymbol = "*"
	SlashSymbol         TokenSymbol = "/"
	EqualsSymbol        TokenSymbol = "="
	LessThanSymbol      TokenSymbol = "<"
	LessEqualsSymbol    TokenSymbol = "<="
	NotEqualsSymbol     TokenSymbol = "<>"
	GreaterThanSymbol   TokenSymbol = ">"
	GreaterEqualsSymbol TokenSymbol = ">="
	LParenSymbol        TokenSymbol = "("
	RParenSymbol        TokenSymbol = ")"
	LBracketSymbol      TokenSymbol = "["
	RBracketSymbol      TokenSymbol = "]"
	CaretSymbol         TokenSymbol = "^"
)
