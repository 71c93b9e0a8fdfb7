package cost

import "fmt"

// maskedData holds the equal-length data columns of a cost plus an
// optional boolean mask (true keeps the point). It owns the length
// invariants: columns never change length after construction and the
// mask, when set, matches the data length exactly. A NaN in an
// unmasked point flows through aggregation untouched; masking is the
// only filtering mechanism.
type maskedData struct {
	cols [][]float64
	mask []bool
	n    int
}

func newMaskedData(cols ...[]float64) (maskedData, error) {
	m := maskedData{cols: make([][]float64, len(cols)), n: len(cols[0])}
	for i, c := range cols {
		if len(c) != m.n {
			return maskedData{}, fmt.Errorf("data column %d has %d points, want %d: %w", i, len(c), m.n, ErrShape)
		}
		m.cols[i] = append([]float64(nil), c...)
	}
	return m, nil
}

// col returns the stored column. Callers may edit contents in place;
// the length is fixed.
func (m *maskedData) col(i int) []float64 { return m.cols[i] }

// setCol replaces the values of column i with a copy of v. The number
// of points must not change.
func (m *maskedData) setCol(i int, v []float64) error {
	if len(v) != m.n {
		return fmt.Errorf("cannot resize data from %d to %d points: %w", m.n, len(v), ErrShape)
	}
	copy(m.cols[i], v)
	return nil
}

// keep reports whether point i participates in the aggregate.
func (m *maskedData) keep(i int) bool { return m.mask == nil || m.mask[i] }

// setMask installs a copy of mask; nil clears it (all points used).
func (m *maskedData) setMask(mask []bool) error {
	if mask == nil {
		m.mask = nil
		return nil
	}
	if len(mask) != m.n {
		return fmt.Errorf("mask has %d entries for %d data points: %w", len(mask), m.n, ErrShape)
	}
	m.mask = append([]bool(nil), mask...)
	return nil
}

// getMask returns a copy of the active mask, or nil when no mask is set.
func (m *maskedData) getMask() []bool {
	if m.mask == nil {
		return nil
	}
	return append([]bool(nil), m.mask...)
}
