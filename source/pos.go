package source

import (
	"fmt"
)

// Pos holds the line/column data for a single rune in a source document. Both
// lines and columns start at 1
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span holds a Start and End position in a source document. End is the
// position of the last rune inside the span, not one past it
type Span struct {
	Start Pos
	End   Pos
}
