package frontend

import (
	"testing"

	"github.com/isaacev/tpas/source"
	"github.com/stretchr/testify/assert"
)

func TestScannerWalksRunes(t *testing.T) {
	s := NewScanner(source.NewFile("test.pas", "ab\nç"))

	assert.Equal(t, 'a', s.Current())
	assert.Equal(t, source.Pos{Line: 1, Col: 1}, s.Pos())

	assert.Equal(t, 'b', s.Advance())
	assert.Equal(t, '\n', s.Advance())
	assert.Equal(t, source.Pos{Line: 1, Col: 3}, s.Pos())

	assert.Equal(t, 'ç', s.Advance())
	assert.Equal(t, 2, s.Line())
	assert.Equal(t, source.Pos{Line: 2, Col: 1}, s.Pos())

	assert.Equal(t, EOF, s.Advance())
	assert.Equal(t, source.Pos{Line: 2, Col: 2}, s.Pos())
}

func TestScannerStaysAtEOF(t *testing.T) {
	s := NewScanner(source.NewFile("test.pas", ""))
	assert.Equal(t, EOF, s.Current())

	for i := 0; i < 3; i++ {
		assert.Equal(t, EOF, s.Advance())
	}

	assert.Equal(t, source.Pos{Line: 1, Col: 1}, s.Pos())
}
