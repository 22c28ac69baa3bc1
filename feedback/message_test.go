package feedback

import (
	"strings"
	"testing"

	"github.com/isaacev/tpas/source"
	"github.com/stretchr/testify/assert"
)

func selection(desc string, line, startCol, endCol int) Selection {
	return Selection{
		Description: desc,
		Span: source.Span{
			Start: source.Pos{Line: line, Col: startCol},
			End:   source.Pos{Line: line, Col: endCol},
		},
	}
}

func TestSummary(t *testing.T) {
	err := Error{
		Classification: SemanticError,
		What:           selection("Undeclared identifier", 3, 7, 7),
		Offending:      "z",
	}

	assert.Equal(t, "SEMANTIC ERROR at line 3: Undeclared identifier at 'z'", err.Summary())
	assert.Equal(t, 3, err.Line())

	warn := Warning{
		Classification: SyntaxError,
		What:           selection("CASE labels are not dispatched", 1, 1, 4),
		Offending:      "CASE",
	}

	assert.Equal(t, "SYNTAX WARNING at line 1: CASE labels are not dispatched at 'CASE'", warn.Summary())
}

func TestMakeUnderlinesOffendingToken(t *testing.T) {
	file := source.NewFile("test.pas", "BEGIN y := zed END.\n")
	err := Error{
		Classification: SemanticError,
		File:           file,
		What:           selection("Undeclared identifier", 1, 12, 14),
		Offending:      "zed",
	}

	expected := strings.Join([]string{
		"SEMANTIC ERROR at line 1: Undeclared identifier at 'zed'",
		"  --> test.pas:1:12",
		"   |",
		" 1 | BEGIN y := zed END.",
		"   | " + strings.Repeat(" ", 11) + "^^^",
	}, "\n")

	assert.Equal(t, expected, err.Make(false))
}

func TestMakeWithoutSourceLine(t *testing.T) {
	err := Error{
		Classification: SyntaxError,
		What:           selection("Expecting .", 4, 1, 1),
		Offending:      "",
	}

	assert.Equal(t, err.Summary(), err.Make(false))

	err.File = source.NewFile("test.pas", "BEGIN END")
	assert.Equal(t, err.Summary(), err.Make(false))
}

func TestHighlightSourceLine(t *testing.T) {
	prefix, focus, suffix := highlightSourceLine("x := ça + 1", 6, 8)
	assert.Equal(t, "x := ", prefix)
	assert.Equal(t, "ça", focus)
	assert.Equal(t, " + 1", suffix)
}
