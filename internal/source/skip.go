package source

// Skip returns a view of rows with the first n rows hidden. Index 0 of
// the view is row n of the underlying source. It is used to hide the
// header row from consumers that only iterate data rows.
func Skip(rows Rows, n int) Rows {
	if n <= 0 {
		return rows
	}
	return &skipRows{inner: rows, n: n}
}

type skipRows struct {
	inner Rows
	n     int
}

func (s *skipRows) RowAt(i int) ([]string, bool) {
	if i < 0 {
		return nil, false
	}
	return s.inner.RowAt(i + s.n)
}

func (s *skipRows) KnownRowCount() int {
	if c := s.inner.KnownRowCount() - s.n; c > 0 {
		return c
	}
	return 0
}

func (s *skipRows) Exhausted() bool { return s.inner.Exhausted() }

func (s *skipRows) ReadToEnd() int {
	if c := s.inner.ReadToEnd() - s.n; c > 0 {
		return c
	}
	return 0
}
