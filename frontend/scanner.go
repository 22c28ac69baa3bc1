package frontend

import (
	"unicode/utf8"

	"github.com/isaacev/tpas/source"
)

// EOF is the sentinel rune a CharSource reports once its input is exhausted
const EOF rune = -1

// CharSource is the character stream consumed by the Lexer. Current returns
// the rune under examination without consuming it, Advance consumes it and
// returns the rune that follows. Once the input is exhausted both keep
// returning EOF
type CharSource interface {
	Current() rune
	Advance() rune
	Line() int
	Pos() source.Pos
}

/**
 * # Handling of Line & File terminations
 *
 * The first character in each line is considered to be in column 1. A newline
 * at the end of a line with `N` characters is considered to be in column
 * `N + 1`.
 *
 * Past the last rune the scanner sits on the EOF sentinel forever, so callers
 * may keep advancing without checking for the end first.
 */

// Scanner is the CharSource over an in-memory source.File. Since source code
// documents can be Unicode, the scanner keeps track of each rune's byte
// offset alongside its line and column
type Scanner struct {
	File  *source.File
	cur   rune
	width int
	pos   source.Pos
	next  int
}

// NewScanner returns a Scanner positioned on the first rune of the file
func NewScanner(file *source.File) *Scanner {
	s := &Scanner{
		File: file,
		pos:  source.Pos{Line: 1, Col: 1},
	}

	s.decode()
	return s
}

// decode loads the rune starting at the byte offset "s.next"
func (s *Scanner) decode() {
	if s.next >= len(s.File.Contents) {
		s.cur = EOF
		s.width = 0
		return
	}

	s.cur, s.width = utf8.DecodeRuneInString(s.File.Contents[s.next:])
}

// Current returns the rune under examination
func (s *Scanner) Current() rune {
	return s.cur
}

// Advance consumes the current rune and returns the next one
func (s *Scanner) Advance() rune {
	if s.cur == EOF {
		return EOF
	}

	if s.cur == '\n' {
		s.pos.Line++
		s.pos.Col = 1
	} else {
		s.pos.Col++
	}

	s.next += s.width
	s.decode()
	return s.cur
}

// Line returns the line number of the current rune
func (s *Scanner) Line() int {
	return s.pos.Line
}

// Pos returns the line and column of the current rune
func (s *Scanner) Pos() source.Pos {
	return s.pos
}
