package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/isaacev/tpas/source"
)

const (
	warningColors = iota
	errorColors   = iota
	noColors      = iota
)

// Message is the interface for all Warnings and Errors that can be emitted
// by the lexer and parser
type Message interface {
	// Summary renders the single-line form:
	//   <KIND> ERROR at line <n>: <message> at '<token text>'
	Summary() string

	// Make renders the summary followed by the offending source line with the
	// offending token underlined, optionally in color
	Make(withColor bool) string

	// Line is the source line the message refers to
	Line() int
}

// Selection represents a region of the source code file along with a
// corresponding description that supplies information as to why a warning or
// error occured
type Selection struct {
	Description string
	Span        source.Span
}

// Error classification constants. Each names the stage that found the problem
const (
	TokenError    string = "TOKEN"
	SyntaxError   string = "SYNTAX"
	SemanticError string = "SEMANTIC"
)

// Error messages count against a compilation. Any Error makes the front-end
// report failure, but never stops it from reading the rest of the program
type Error struct {
	Classification string
	File           *source.File
	What           Selection
	Offending      string
}

// Summary renders the canonical one-line form of the error
func (e Error) Summary() string {
	return summarize(e.Classification, "ERROR", e.What, e.Offending)
}

// Make takes an Error and produces a fully rendered message with the option of
// using colors to make elements of the message more clear
func (e Error) Make(withColor bool) string {
	color.NoColor = !withColor
	return makeMessage(e.Summary(), e.File, e.What, errorColors)
}

// Line returns the line number of the offending token
func (e Error) Line() int {
	return e.What.Span.Start.Line
}

// Warning messages point out constructs which parsed but which the downstream
// evaluator may not handle the way the author expects
type Warning struct {
	Classification string
	File           *source.File
	What           Selection
	Offending      string
}

// Summary renders the canonical one-line form of the warning
func (w Warning) Summary() string {
	return summarize(w.Classification, "WARNING", w.What, w.Offending)
}

// Make takes a Warning and produces a fully rendered message with the option
// of using colors
func (w Warning) Make(withColor bool) string {
	color.NoColor = !withColor
	return makeMessage(w.Summary(), w.File, w.What, warningColors)
}

// Line returns the line number of the token the warning refers to
func (w Warning) Line() int {
	return w.What.Span.Start.Line
}

func summarize(classification, severity string, what Selection, offending string) string {
	return fmt.Sprintf("%s %s at line %d: %s at '%s'",
		classification,
		severity,
		what.Span.Start.Line,
		what.Description,
		offending)
}

// makeMessage renders a message of the form:
//
// <summary>
//   --> <filename>:<line number>:<column number>
//    |
//  1 | <offending line of source code>
//    |  ^^^^^^^^^
//
func makeMessage(summary string, file *source.File, what Selection, colorScheme int) string {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	redBold := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	var lines []string

	if colorScheme == warningColors {
		lines = append(lines, yellowBold(summary))
	} else {
		lines = append(lines, redBold(summary))
	}

	// Without the source text (or with a position outside of it, like the EOF
	// of an empty file) there is nothing more to show
	if file == nil || what.Span.Start.Line < 1 || what.Span.Start.Line > len(file.Lines) {
		return strings.Join(lines, "\n")
	}

	placeValues := utf8.RuneCountInString(fmt.Sprintf("%d", what.Span.Start.Line))
	margin := strings.Repeat(" ", placeValues)

	lines = append(lines, fmt.Sprintf(" %s%s %s:%d:%d",
		margin,
		blue("-->"),
		file.Filename,
		what.Span.Start.Line,
		what.Span.Start.Col))

	lines = append(lines, blue(fmt.Sprintf(" %s |", margin)))
	lines = append(lines, sourceCodeSelection(file, what, colorScheme, placeValues)...)
	return strings.Join(lines, "\n")
}

// sourceCodeSelection extracts the first offending line of source code from
// the file and renders it with its line number and an underline beneath the
// selected columns. Selections spanning several lines are underlined to the
// end of their first line
func sourceCodeSelection(file *source.File, sel Selection, colorScheme int, placeValues int) (lines []string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	srcLine := strings.Replace(file.Line(sel.Span.Start.Line), "\t", " ", -1)
	lineWidth := utf8.RuneCountInString(srcLine)

	focusStart := sel.Span.Start.Col
	focusEnd := sel.Span.End.Col
	if sel.Span.End.Line != sel.Span.Start.Line || focusEnd > lineWidth {
		focusEnd = lineWidth
	}
	if focusEnd < focusStart {
		focusEnd = focusStart
	}

	prefix, focus, suffix := highlightSourceLine(srcLine, focusStart, focusEnd+1)

	switch colorScheme {
	case warningColors:
		focus = yellow(focus)
	case errorColors:
		focus = red(focus)
	}

	lineNumFmt := fmt.Sprintf(fmt.Sprintf("%%%dd", placeValues), sel.Span.Start.Line)
	lines = append(lines, fmt.Sprintf(" %s %s %s%s%s", blue(lineNumFmt), blue("|"), prefix, focus, suffix))

	underline := strings.Repeat("^", focusEnd-focusStart+1)
	if colorScheme == warningColors {
		underline = yellow(underline)
	} else if colorScheme == errorColors {
		underline = red(underline)
	}

	leftPad := strings.Repeat(" ", focusStart-1)
	lines = append(lines, fmt.Sprintf(" %s %s %s%s", strings.Repeat(" ", placeValues), blue("|"), leftPad, underline))

	return lines
}

// highlightSourceLine takes a line of source code and 2 column numbers and
// returns the segment before the first column number, the segment between the
// column numbers, and the segment after the last column number
func highlightSourceLine(line string, start, end int) (prefix, focus, suffix string) {
	nextByte := 0

	for i := 1; i < end && nextByte < len(line); i++ {
		runeValue, runeWidth := utf8.DecodeRuneInString(line[nextByte:])
		nextByte += runeWidth

		if i < start {
			prefix += string(runeValue)
		} else {
			focus += string(runeValue)
		}
	}

	suffix = line[nextByte:]

	return prefix, focus, suffix
}
