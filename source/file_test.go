package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileLines(t *testing.T) {
	file := NewFile("test.pas", "BEGIN\r\n  x := 1\nEND.")

	assert.Equal(t, "BEGIN", file.Line(1))
	assert.Equal(t, "  x := 1", file.Line(2))
	assert.Equal(t, "END.", file.Line(3))
	assert.Equal(t, "", file.Line(0))
	assert.Equal(t, "", file.Line(4))
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "3:14", Pos{Line: 3, Col: 14}.String())
}
