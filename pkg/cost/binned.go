package cost

import (
	"fmt"
	"math"
)

// CDF evaluates a cumulative distribution at x for the given parameter
// values.
type CDF func(x float64, params []float64) float64

// ScaledCDF evaluates a yield-scaled cumulative distribution: its
// differences across bin edges are expected counts directly.
type ScaledCDF func(x float64, params []float64) float64

// BinnedNLL compares histogram counts against a CDF-derived
// expectation using twice the Poisson deviance per bin. Expected
// per-bin probabilities are scaled by the total observed count, so
// only the shape is fitted.
type BinnedNLL struct {
	base
	data maskedData // bin counts
	xe   []float64  // bin edges, one more than counts
	cdf  CDF
}

// NewBinnedNLL builds a binned negative log-likelihood from bin counts
// n and bin edges xe, with len(xe) == len(n)+1. names declares the
// free parameters of cdf, in the order Eval expects them.
func NewBinnedNLL(n, xe []float64, cdf CDF, names []string) (*BinnedNLL, error) {
	sig, err := NewSignature(names...)
	if err != nil {
		return nil, err
	}
	if len(xe) != len(n)+1 {
		return nil, fmt.Errorf("%d bin edges for %d bins, want %d: %w", len(xe), len(n), len(n)+1, ErrShape)
	}
	md, err := newMaskedData(n)
	if err != nil {
		return nil, err
	}
	return &BinnedNLL{base: base{sig: sig}, data: md, xe: append([]float64(nil), xe...), cdf: cdf}, nil
}

// Eval returns twice the Poisson deviance summed over bins kept by the
// mask. Expected counts are the CDF differences across the bin edges
// scaled by the total observed count of the kept bins.
func (c *BinnedNLL) Eval(params []float64) float64 {
	n := c.data.col(0)
	ntot := 0.0
	for i, v := range n {
		if c.data.keep(i) {
			ntot += v
		}
	}
	s := 0.0
	fl := c.cdf(c.xe[0], params)
	for i := range n {
		fr := c.cdf(c.xe[i+1], params)
		if c.data.keep(i) {
			s += poissonDeviance(n[i], (fr-fl)*ntot)
		}
		fl = fr
	}
	v := 2 * s
	c.trace("BinnedNLL", params, v)
	return v
}

// CDF returns the cumulative distribution supplied at construction.
func (c *BinnedNLL) CDF() CDF { return c.cdf }

// N returns the stored bin counts. Contents may be edited in place;
// the length is fixed.
func (c *BinnedNLL) N() []float64 { return c.data.col(0) }

// SetN replaces the bin counts. The number of bins must not change.
func (c *BinnedNLL) SetN(v []float64) error { return c.data.setCol(0, v) }

// Edges returns the stored bin edges. Contents may be edited in place;
// the length is fixed.
func (c *BinnedNLL) Edges() []float64 { return c.xe }

// SetEdges replaces the bin edges. Their number must not change.
func (c *BinnedNLL) SetEdges(v []float64) error { return setEdges(c.xe, v) }

// Mask returns a copy of the active mask, or nil when all bins are used.
func (c *BinnedNLL) Mask() []bool { return c.data.getMask() }

// SetMask installs a bin mask (true keeps the bin); nil clears it.
func (c *BinnedNLL) SetMask(m []bool) error { return c.data.setMask(m) }

// ExtendedBinnedNLL compares histogram counts against a scaled CDF
// whose differences are expected counts, fitting shape and yield at
// the same time.
type ExtendedBinnedNLL struct {
	base
	data      maskedData
	xe        []float64
	scaledCDF ScaledCDF
}

// NewExtendedBinnedNLL builds an extended binned negative
// log-likelihood from bin counts n and bin edges xe, with
// len(xe) == len(n)+1. names declares the free parameters of
// scaledCDF, in the order Eval expects them.
func NewExtendedBinnedNLL(n, xe []float64, scaledCDF ScaledCDF, names []string) (*ExtendedBinnedNLL, error) {
	sig, err := NewSignature(names...)
	if err != nil {
		return nil, err
	}
	if len(xe) != len(n)+1 {
		return nil, fmt.Errorf("%d bin edges for %d bins, want %d: %w", len(xe), len(n), len(n)+1, ErrShape)
	}
	md, err := newMaskedData(n)
	if err != nil {
		return nil, err
	}
	return &ExtendedBinnedNLL{base: base{sig: sig}, data: md, xe: append([]float64(nil), xe...), scaledCDF: scaledCDF}, nil
}

// Eval returns twice the Poisson deviance summed over bins kept by the
// mask, with expected counts read directly from the scaled CDF
// differences.
func (c *ExtendedBinnedNLL) Eval(params []float64) float64 {
	n := c.data.col(0)
	s := 0.0
	fl := c.scaledCDF(c.xe[0], params)
	for i := range n {
		fr := c.scaledCDF(c.xe[i+1], params)
		if c.data.keep(i) {
			s += poissonDeviance(n[i], fr-fl)
		}
		fl = fr
	}
	v := 2 * s
	c.trace("ExtendedBinnedNLL", params, v)
	return v
}

// ScaledCDF returns the scaled cumulative distribution supplied at
// construction.
func (c *ExtendedBinnedNLL) ScaledCDF() ScaledCDF { return c.scaledCDF }

// N returns the stored bin counts. Contents may be edited in place;
// the length is fixed.
func (c *ExtendedBinnedNLL) N() []float64 { return c.data.col(0) }

// SetN replaces the bin counts. The number of bins must not change.
func (c *ExtendedBinnedNLL) SetN(v []float64) error { return c.data.setCol(0, v) }

// Edges returns the stored bin edges. Contents may be edited in place;
// the length is fixed.
func (c *ExtendedBinnedNLL) Edges() []float64 { return c.xe }

// SetEdges replaces the bin edges. Their number must not change.
func (c *ExtendedBinnedNLL) SetEdges(v []float64) error { return setEdges(c.xe, v) }

// Mask returns a copy of the active mask, or nil when all bins are used.
func (c *ExtendedBinnedNLL) Mask() []bool { return c.data.getMask() }

// SetMask installs a bin mask (true keeps the bin); nil clears it.
func (c *ExtendedBinnedNLL) SetMask(m []bool) error { return c.data.setMask(m) }

func setEdges(dst, v []float64) error {
	if len(v) != len(dst) {
		return fmt.Errorf("cannot resize bin edges from %d to %d: %w", len(dst), len(v), ErrShape)
	}
	copy(dst, v)
	return nil
}

// poissonDeviance is mu - n + n*log(n/mu), the per-bin half deviance,
// with the 0*log(0) convention resolved to 0.
func poissonDeviance(n, mu float64) float64 {
	d := mu - n
	if n > 0 {
		d += n * math.Log(n/mu)
	}
	return d
}
