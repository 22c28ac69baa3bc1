package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		text string
		more bool
	}{
		{"x := 1", false},
		{"BEGIN x := 1", true},
		{"BEGIN x := 1 END", false},
		{"REPEAT x := x + 1", true},
		{"REPEAT x := x + 1 UNTIL x > 3", false},
		{"CASE x OF y := 1", true},
		{"{ a comment", true},
		{"WRITELN('it''s", true},
		{"END", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.more, NeedsMoreInput(test.text), test.text)
	}
}

func TestInteractiveKeepsNames(t *testing.T) {
	table := NewSymtab()

	body, log := ParseInteractive("x := 1", table, Options{})
	assert.Zero(t, log.ErrorCount())
	require.Len(t, body.Statements, 1)

	body, log = ParseInteractive("y := x * 2; WRITELN(y)", table, Options{})
	assert.Zero(t, log.ErrorCount())
	assert.Equal(t, "(compound (assign (variable y) (multiply (variable x) (integer 2))) (writeln (variable y)))", StringifyNode(body))
	assert.Equal(t, 2, table.Len())
}

func TestInteractiveStrayEnd(t *testing.T) {
	body, log := ParseInteractive("x := 1; END; y := 2", NewSymtab(), Options{})
	assert.Equal(t, []string{"Unexpected token"}, descriptions(log))
	assert.Len(t, body.Statements, 2)
}
