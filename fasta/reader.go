package fasta

import (
	"io"
	"iter"
	"strings"
)

type readerState int

const (
	awaitingLabel readerState = iota
	accumulatingBody
	done
)

// Reader yields Records from a slice of lines. It is single-use: once it
// reports io.EOF or an error, every later call returns the same result.
type Reader struct {
	lines []string
	pos   int // index of the next unconsumed line
	state readerState
	err   error
}

// NewReader returns a Reader over lines. The slice is borrowed, not copied.
func NewReader(lines []string) *Reader {
	return &Reader{lines: lines}
}

// peek returns the next line without consuming it
func (r *Reader) peek() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	return r.lines[r.pos], true
}

func (r *Reader) advance() string {
	line := r.lines[r.pos]
	r.pos++
	return line
}

func (r *Reader) finish(err error) (Record, error) {
	r.state = done
	r.err = err
	return Record{}, err
}

// Next returns the next complete record, io.EOF once the input is exhausted
// or a *ParseError wrapping ErrMalformedLabel.
func (r *Reader) Next() (Record, error) {
	if r.state == done {
		return Record{}, r.err
	}

	line, ok := r.peek()
	if !ok || line == "" {
		return r.finish(io.EOF)
	}
	r.advance()
	if !ValidLabel(line) {
		return r.finish(&ParseError{Line: r.pos, Text: line, Err: ErrMalformedLabel})
	}
	labelLine := line
	r.state = accumulatingBody

	var body strings.Builder
	for {
		next, ok := r.peek()
		if !ok || next == "" || next[0] == Marker {
			break // boundary stays unconsumed
		}
		body.WriteString(r.advance())
	}

	rec, err := NewRecord(labelLine, body.String())
	if err != nil {
		return r.finish(&ParseError{Line: r.pos, Text: labelLine, Err: err})
	}
	r.state = awaitingLabel
	return rec, nil
}

// Line returns how many lines have been consumed so far.
func (r *Reader) Line() int { return r.pos }

// All adapts Next to a range-over-func sequence. Iteration ends after the
// input is exhausted or after yielding the first error.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Next()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll drains r. On a parse failure it returns no records.
func ReadAll(r *Reader) ([]Record, error) {
	var records []Record
	for rec, err := range r.All() {
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Parse splits text into lines and reads every record from it.
func Parse(text string) ([]Record, error) {
	return ReadAll(NewReader(SplitLines(text)))
}
