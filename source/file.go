package source

import (
	"strings"
)

// File represents a chunk of Pascal source handed to the front-end. The
// "Contents" field is the raw text of the program. The "Lines" field caches
// the contents split after each '\n' so diagnostics can quote the offending
// line without re-splitting the whole file.
type File struct {
	Filename string
	Contents string
	Lines    []string
}

// NewFile wraps raw program text. Interactive input uses a pseudo filename
// like "<repl>"
func NewFile(filename string, contents string) *File {
	return &File{
		Filename: filename,
		Contents: contents,
		Lines:    strings.SplitAfter(contents, "\n"),
	}
}

// Line returns the text of the 1-based line number "n" without its trailing
// newline, or the empty string when "n" is out of range
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}

	return strings.TrimRight(f.Lines[n-1], "\r\n")
}
