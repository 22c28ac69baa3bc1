package feedback

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCountsErrorsOnly(t *testing.T) {
	log := NewLog(nil)

	log.Add(nil)
	log.Add(Error{Classification: TokenError, What: selection("Invalid token", 1, 1, 1), Offending: "@"})
	log.Add(Warning{Classification: SyntaxError, What: selection("CASE labels are not dispatched", 2, 1, 4), Offending: "CASE"})
	log.Add(Error{Classification: SyntaxError, What: selection("Missing ;", 3, 1, 1), Offending: "y"})

	assert.Len(t, log.Messages(), 3)
	assert.Equal(t, 2, log.ErrorCount())
	assert.Len(t, log.Errors(), 2)
	require.Len(t, log.Warnings(), 1)
	assert.Equal(t, 1, log.CountOf(TokenError))
	assert.Equal(t, 1, log.CountOf(SyntaxError))
	assert.Equal(t, 0, log.CountOf(SemanticError))

	// Order of addition is kept across severities
	assert.Equal(t, 2, log.Messages()[1].Line())

	log.Reset()
	assert.Empty(t, log.Messages())
	assert.Zero(t, log.ErrorCount())
}

func TestLogEchoesSummaries(t *testing.T) {
	var buf bytes.Buffer
	log := NewLog(&buf)

	log.Add(Error{Classification: SemanticError, What: selection("Undeclared identifier", 1, 12, 12), Offending: "z"})
	assert.Equal(t, "SEMANTIC ERROR at line 1: Undeclared identifier at 'z'\n", buf.String())
}
