// Package fasta turns an in-memory FASTA text into labeled sequence records.
//
// Records are produced lazily by a Reader that walks a borrowed slice of
// lines with one line of lookahead. Parsing stops at the first empty line.
package fasta

import (
	"errors"
	"fmt"
	"strings"
)

// Marker is the first character of every label line
const Marker = '>'

// ErrMalformedLabel is returned when a line expected to open a record does
// not start with Marker.
var ErrMalformedLabel = errors.New("malformed label line")

// Record is one labeled sequence. Label has the marker stripped and Sequence
// is the verbatim concatenation of the record's body lines.
type Record struct {
	Label    string
	Sequence string
}

// ValidLabel reports whether line can open a record.
func ValidLabel(line string) bool {
	return len(line) > 0 && line[0] == Marker
}

// NewRecord builds a Record from a raw label line (marker included) and the
// already concatenated body.
func NewRecord(labelLine, body string) (Record, error) {
	if !ValidLabel(labelLine) {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLabel, labelLine)
	}
	return Record{Label: labelLine[1:], Sequence: body}, nil
}

// ParseError reports where a parse failed.
type ParseError struct {
	Line int    // 1-based
	Text string // offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fasta: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SplitLines breaks text into lines the way a text line iterator does: lines
// end at '\n', a trailing '\r' is dropped and a final newline does not start
// an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
