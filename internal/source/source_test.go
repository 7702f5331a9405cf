package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csvLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("a,b,c\n")
	}
	return b.String()
}

func TestRowAtReadsForward(t *testing.T) {
	s := New(strings.NewReader("1,one\n2,two\n3,three\n"), ',')

	row, ok := s.RowAt(1)
	require.True(t, ok)
	assert.Equal(t, []string{"2", "two"}, row)
	// Reading index 1 materialized rows 0..1 but not 2.
	assert.Equal(t, 2, s.KnownRowCount())
	assert.False(t, s.Exhausted())

	row, ok = s.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "one"}, row)

	_, ok = s.RowAt(5)
	assert.False(t, ok)
	assert.True(t, s.Exhausted())
	assert.Equal(t, 3, s.KnownRowCount())
}

func TestRowAtNegativeIndex(t *testing.T) {
	s := New(strings.NewReader("a,b\n"), ',')
	_, ok := s.RowAt(-1)
	assert.False(t, ok)
	assert.Equal(t, 0, s.KnownRowCount())
}

func TestReadToEnd(t *testing.T) {
	s := New(strings.NewReader(csvLines(1000)), ',')
	assert.Equal(t, 1000, s.ReadToEnd())
	assert.True(t, s.Exhausted())
	// Idempotent once exhausted.
	assert.Equal(t, 1000, s.ReadToEnd())
}

func TestEnsureIsBounded(t *testing.T) {
	s := New(strings.NewReader(csvLines(1000)), ',')
	assert.Equal(t, 10, s.Ensure(10))
	assert.Equal(t, 10, s.KnownRowCount())
	// Asking for fewer rows than already known reads nothing.
	assert.Equal(t, 10, s.Ensure(5))
}

func TestTabDelimiter(t *testing.T) {
	s := New(strings.NewReader("a\tb\tc\n"), '\t')
	row, ok := s.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, row)
}

// failingReader yields some data then fails.
type failingReader struct {
	data io.Reader
	err  error
	done bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.done {
		n, err := f.data.Read(p)
		if err == io.EOF {
			f.done = true
			return n, nil
		}
		return n, err
	}
	return 0, f.err
}

func TestReadErrorDegradesToExhausted(t *testing.T) {
	boom := errors.New("disk gone")
	s := New(&failingReader{data: strings.NewReader("1,one\n2,two\n"), err: boom}, ',')

	// The rows before the failure stay available.
	row, ok := s.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "one"}, row)

	_, ok = s.RowAt(10)
	assert.False(t, ok)
	assert.True(t, s.Exhausted())
	assert.Equal(t, 2, s.KnownRowCount())
	assert.ErrorIs(t, s.Err(), boom)

	// Exhaustion is final; no further reads are attempted.
	assert.Equal(t, 2, s.ReadToEnd())
}

func TestMemoization(t *testing.T) {
	s := New(strings.NewReader(csvLines(50)), ',')
	first, ok := s.RowAt(30)
	require.True(t, ok)
	again, ok := s.RowAt(30)
	require.True(t, ok)
	// Same backing slice, not a re-read.
	assert.Equal(t, &first[0], &again[0])
}
