package feedback

import (
	"fmt"
	"io"
)

// Log accumulates the messages emitted while compiling one unit. Errors of
// every classification share a single counter which decides whether the
// compilation succeeded. Warnings are kept but never counted
type Log struct {
	messages []Message
	errors   int

	// Echo, when set, receives each message's summary line as soon as the
	// message is added
	Echo io.Writer
}

// NewLog returns an empty Log which echoes summaries to "echo" (may be nil)
func NewLog(echo io.Writer) *Log {
	return &Log{Echo: echo}
}

// Add records a message. A nil message is ignored so callers can pass along
// the second result of functions like Lexer.Next without checking it
func (l *Log) Add(msg Message) {
	if msg == nil {
		return
	}

	l.messages = append(l.messages, msg)

	if _, ok := msg.(Error); ok {
		l.errors++
	}

	if l.Echo != nil {
		fmt.Fprintln(l.Echo, msg.Summary())
	}
}

// Messages returns every recorded message in the order they were added
func (l *Log) Messages() []Message {
	return l.messages
}

// Errors returns only the recorded errors
func (l *Log) Errors() (errs []Error) {
	for _, msg := range l.messages {
		if err, ok := msg.(Error); ok {
			errs = append(errs, err)
		}
	}

	return errs
}

// Warnings returns only the recorded warnings
func (l *Log) Warnings() (warns []Warning) {
	for _, msg := range l.messages {
		if warn, ok := msg.(Warning); ok {
			warns = append(warns, warn)
		}
	}

	return warns
}

// ErrorCount is the number of errors recorded so far
func (l *Log) ErrorCount() int {
	return l.errors
}

// CountOf returns how many errors carry the given classification
func (l *Log) CountOf(classification string) (n int) {
	for _, err := range l.Errors() {
		if err.Classification == classification {
			n++
		}
	}

	return n
}

// Reset forgets every recorded message
func (l *Log) Reset() {
	l.messages = nil
	l.errors = 0
}
