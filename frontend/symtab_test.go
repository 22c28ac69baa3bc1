package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymtabIgnoresCase(t *testing.T) {
	table := NewSymtab()
	assert.Nil(t, table.Lookup("count"))

	entry := table.Enter("Count")
	require.NotNil(t, entry)
	assert.Equal(t, "count", entry.Name)
	assert.Equal(t, VariableName, entry.Kind)

	assert.Same(t, entry, table.Lookup("COUNT"))
	assert.Same(t, entry, table.Enter("count"))
	assert.Equal(t, 1, table.Len())
}

func TestSymtabKeepsInsertionOrder(t *testing.T) {
	table := NewSymtab()

	for _, name := range []string{"zeta", "alpha", "Mid", "ALPHA"} {
		table.Enter(name)
	}

	var names []string
	for _, entry := range table.Entries() {
		names = append(names, entry.Name)
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestEntryKindString(t *testing.T) {
	assert.Equal(t, "variable", VariableName.String())
	assert.Equal(t, "program", ProgramName.String())
}
