// Package source provides lazy, index-addressable access to the rows of a
// delimited text stream.
//
// The underlying reader is forward-only; rows are pulled on demand and
// memoized so repeated access to the same index is O(1) after the first
// read. "Lazy" means read-ahead only as needed, not never retain.
package source

import (
	"encoding/csv"
	"io"
	"log/slog"
)

// readChunk bounds how many rows a single frontier pull materializes
// beyond the requested index.
const readChunk = 256

// Rows is the minimal row access contract the pager depends on.
type Rows interface {
	// RowAt returns the row at index i, reading forward as needed.
	// The second return is false when i is beyond the end of the stream.
	RowAt(i int) ([]string, bool)
	// KnownRowCount returns the number of rows read so far. It is a
	// lower bound on the total until Exhausted reports true, after
	// which it is exact.
	KnownRowCount() int
	// Exhausted reports whether the end of the stream was reached.
	Exhausted() bool
	// ReadToEnd drains the stream and returns the exact row count.
	ReadToEnd() int
}

// Source reads rows from a csv.Reader on demand and memoizes them.
type Source struct {
	r         *csv.Reader
	rows      [][]string
	exhausted bool
	err       error
	logger    *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used to report a mid-stream read error.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) { s.logger = l }
}

// New creates a Source over r using the given field delimiter.
func New(r io.Reader, delimiter rune, opts ...Option) *Source {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // ragged rows are handled by the formatter
	cr.LazyQuotes = true
	s := &Source{
		r:      cr,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RowAt returns the row at index i, pulling rows from the stream as needed.
func (s *Source) RowAt(i int) ([]string, bool) {
	if i < 0 {
		return nil, false
	}
	s.ensure(i + 1)
	if i >= len(s.rows) {
		return nil, false
	}
	return s.rows[i], true
}

// Ensure reads forward until at least n rows are memoized or the stream
// ends. It returns the number of rows known afterwards.
func (s *Source) Ensure(n int) int {
	s.ensure(n)
	return len(s.rows)
}

// KnownRowCount returns the number of rows memoized so far.
func (s *Source) KnownRowCount() int {
	return len(s.rows)
}

// Exhausted reports whether the end of the stream was reached, either
// normally or because a read error degraded the source.
func (s *Source) Exhausted() bool {
	return s.exhausted
}

// ReadToEnd drains the remaining stream and returns the exact row count.
func (s *Source) ReadToEnd() int {
	for !s.exhausted {
		s.ensure(len(s.rows) + readChunk)
	}
	return len(s.rows)
}

// Err returns the read error that ended the stream early, if any.
func (s *Source) Err() error {
	return s.err
}

// ensure pulls rows until n are known or the stream is done. A read error
// is reported once and degrades the source to exhausted with whatever rows
// were already loaded; the viewer keeps working on the partial data.
func (s *Source) ensure(n int) {
	for !s.exhausted && len(s.rows) < n {
		rec, err := s.r.Read()
		if err == io.EOF {
			s.exhausted = true
			return
		}
		if err != nil {
			s.err = err
			s.exhausted = true
			s.logger.Warn("stopped reading after error", "row", len(s.rows), "error", err)
			return
		}
		s.rows = append(s.rows, rec)
	}
}
