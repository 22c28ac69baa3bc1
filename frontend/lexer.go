package frontend

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/isaacev/tpas/feedback"
	"github.com/isaacev/tpas/source"
)

// Lexer structs maintain state during the lexical analysis of a chunk of
// source code, generating a sequence of Tokens. Lexical errors never stop the
// lexer: the bad characters come back as an Error token together with a
// message and lexing resumes right after them
type Lexer struct {
	Source  CharSource
	Grammar *Grammar
	File    *source.File
}

// NewLexer returns a Lexer reading the given file through a Scanner
func NewLexer(file *source.File) *Lexer {
	return &Lexer{
		Source:  NewScanner(file),
		Grammar: pascal,
		File:    file,
	}
}

// Next skips any whitespace and comments and returns the following token. At
// the end of input it returns an EOF token, and keeps doing so on every
// subsequent call without producing messages
func (l *Lexer) Next() (tok Token, msg feedback.Message) {
	for {
		r := l.Source.Current()

		if l.Grammar.isWhitespace(r) {
			l.Source.Advance()
			continue
		}

		if l.Grammar.isCommentStart(r) {
			if tok, msg = l.lexComment(); msg != nil {
				return tok, msg
			}

			continue
		}

		break
	}

	r := l.Source.Current()

	switch {
	case r == EOF:
		pos := l.Source.Pos()
		return Token{EOFSymbol, "", nil, source.Span{Start: pos, End: pos}}, nil
	case l.Grammar.isAlphabetical(r):
		return l.lexWord()
	case l.Grammar.isNumeric(r):
		return l.lexNumber()
	case r == '\'':
		return l.lexString()
	default:
		return l.lexSymbol()
	}
}

// consume appends the current rune to the lexeme, stretches the span over it
// and advances the source
func (l *Lexer) consume(lexeme *strings.Builder, span *source.Span) rune {
	r := l.Source.Current()

	if lexeme.Len() == 0 {
		span.Start = l.Source.Pos()
	}

	lexeme.WriteRune(r)
	span.End = l.Source.Pos()
	l.Source.Advance()
	return r
}

// tokenError builds the message reported for a malformed token
func (l *Lexer) tokenError(tok Token, description string) feedback.Message {
	return feedback.Error{
		Classification: feedback.TokenError,
		File:           l.File,
		What: feedback.Selection{
			Description: description,
			Span:        tok.Span,
		},
		Offending: tok.Lexeme,
	}
}

// Comments
//  - match \{[^}]*\}
//  - a '{' inside the comment body is not special
func (l *Lexer) lexComment() (tok Token, msg feedback.Message) {
	var lexeme strings.Builder
	var span source.Span

	l.consume(&lexeme, &span)

	for {
		r := l.Source.Current()

		if r == EOF {
			tok = Token{ErrorSymbol, lexeme.String(), nil, span}
			return tok, l.tokenError(tok, "Unterminated comment")
		}

		l.consume(&lexeme, &span)

		if l.Grammar.isCommentEnd(r) {
			return tok, nil
		}
	}
}

// Identifiers and Keywords
//  - match [A-Za-z][A-Za-z0-9]*
func (l *Lexer) lexWord() (tok Token, msg feedback.Message) {
	var lexeme strings.Builder
	var span source.Span

	for {
		l.consume(&lexeme, &span)

		peek := l.Source.Current()
		if !l.Grammar.isAlphabetical(peek) && !l.Grammar.isNumeric(peek) {
			break
		}
	}

	word := lexeme.String()
	return Token{l.Grammar.lookupWord(word), word, nil, span}, nil
}

// Integer or Real literals
//  - match [0-9][0-9.]*
//  - no decimal point is an Integer, exactly one is a Real, more is an error
func (l *Lexer) lexNumber() (tok Token, msg feedback.Message) {
	var lexeme strings.Builder
	var span source.Span

	points := 0

	for {
		if l.consume(&lexeme, &span) == '.' {
			points++
		}

		peek := l.Source.Current()
		if !l.Grammar.isNumeric(peek) && peek != '.' {
			break
		}
	}

	tok = Token{Lexeme: lexeme.String(), Span: span}

	switch points {
	case 0:
		i, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			tok.Symbol = ErrorSymbol
			return tok, l.tokenError(tok, "Integer out of range")
		}

		tok.Symbol = IntegerSymbol
		tok.Value = i
	case 1:
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			tok.Symbol = ErrorSymbol
			return tok, l.tokenError(tok, "Invalid number")
		}

		tok.Symbol = RealSymbol
		tok.Value = f
	default:
		tok.Symbol = ErrorSymbol
		return tok, l.tokenError(tok, "Invalid number")
	}

	return tok, nil
}

// String and Character literals
//  - match '([^']|'')*'
//  - the value drops the outer quotes and collapses each '' into a single '
//  - a value of exactly one character is a Character literal
func (l *Lexer) lexString() (tok Token, msg feedback.Message) {
	var lexeme strings.Builder
	var value strings.Builder
	var span source.Span

	l.consume(&lexeme, &span)

	for {
		if l.Source.Current() == EOF {
			tok = Token{ErrorSymbol, lexeme.String(), nil, span}
			return tok, l.tokenError(tok, "Unterminated string")
		}

		r := l.consume(&lexeme, &span)

		if r == '\'' {
			// A doubled quote stands for one embedded apostrophe
			if l.Source.Current() == '\'' {
				l.consume(&lexeme, &span)
				value.WriteRune('\'')
				continue
			}

			break
		}

		value.WriteRune(r)
	}

	tok = Token{StringSymbol, lexeme.String(), value.String(), span}

	if utf8.RuneCountInString(value.String()) == 1 {
		tok.Symbol = CharacterSymbol
	}

	return tok, nil
}

// Special symbols
//  - single runes map directly through the grammar's punctuator table
//  - '.', ':', '<' and '>' look one rune ahead for "..", ":=", "<=", "<>"
//    and ">="
func (l *Lexer) lexSymbol() (tok Token, msg feedback.Message) {
	var lexeme strings.Builder
	var span source.Span

	first := l.consume(&lexeme, &span)
	peek := l.Source.Current()

	var sym TokenSymbol

	switch first {
	case '.':
		sym = PeriodSymbol
		if peek == '.' {
			l.consume(&lexeme, &span)
			sym = DotDotSymbol
		}
	case ':':
		sym = ColonSymbol
		if peek == '=' {
			l.consume(&lexeme, &span)
			sym = ColonEqualsSymbol
		}
	case '<':
		sym = LessThanSymbol
		if peek == '=' {
			l.consume(&lexeme, &span)
			sym = LessEqualsSymbol
		} else if peek == '>' {
			l.consume(&lexeme, &span)
			sym = NotEqualsSymbol
		}
	case '>':
		sym = GreaterThanSymbol
		if peek == '=' {
			l.consume(&lexeme, &span)
			sym = GreaterEqualsSymbol
		}
	default:
		var ok bool
		if sym, ok = l.Grammar.Punctuators[first]; !ok {
			tok = Token{ErrorSymbol, lexeme.String(), nil, span}
			return tok, l.tokenError(tok, "Invalid token")
		}
	}

	return Token{sym, lexeme.String(), nil, span}, nil
}

// Tokenize lexes an entire file and returns every token up to and including
// the EOF token along with any lexical errors
func Tokenize(file *source.File) (toks []Token, msgs []feedback.Message) {
	lexer := NewLexer(file)

	for {
		tok, msg := lexer.Next()
		if msg != nil {
			msgs = append(msgs, msg)
		}

		toks = append(toks, tok)

		if tok.Symbol == EOFSymbol {
			return toks, msgs
		}
	}
}
