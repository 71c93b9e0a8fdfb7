package cost

import "math"

// Density evaluates a probability density at x for the given parameter
// values (same order as the declared names).
type Density func(x float64, params []float64) float64

// ScaledDensity evaluates an extended, yield-scaled density at x. It
// returns the expected total event count and the density value. The
// total must not depend on x.
type ScaledDensity func(x float64, params []float64) (total, density float64)

// UnbinnedNLL is twice the negative log-likelihood of raw sample
// values under a density. The factor two makes the value comparable to
// a chi-square.
type UnbinnedNLL struct {
	base
	data maskedData
	pdf  Density
}

// NewUnbinnedNLL builds an unbinned negative log-likelihood over the
// sample data. names declares the free parameters of pdf, in the order
// Eval expects them.
func NewUnbinnedNLL(data []float64, pdf Density, names []string) (*UnbinnedNLL, error) {
	sig, err := NewSignature(names...)
	if err != nil {
		return nil, err
	}
	md, err := newMaskedData(data)
	if err != nil {
		return nil, err
	}
	return &UnbinnedNLL{base: base{sig: sig}, data: md, pdf: pdf}, nil
}

// Eval returns 2 * sum of -log pdf(x_i) over points kept by the mask.
// Densities <= 0 or NaN propagate through the log unclipped.
func (c *UnbinnedNLL) Eval(params []float64) float64 {
	s := 0.0
	for i, x := range c.data.col(0) {
		if !c.data.keep(i) {
			continue
		}
		s -= math.Log(c.pdf(x, params))
	}
	v := 2 * s
	c.trace("UnbinnedNLL", params, v)
	return v
}

// PDF returns the density supplied at construction.
func (c *UnbinnedNLL) PDF() Density { return c.pdf }

// Data returns the stored sample. Contents may be edited in place; the
// length is fixed.
func (c *UnbinnedNLL) Data() []float64 { return c.data.col(0) }

// SetData replaces the sample values. The number of points must not change.
func (c *UnbinnedNLL) SetData(v []float64) error { return c.data.setCol(0, v) }

// Mask returns a copy of the active mask, or nil when all points are used.
func (c *UnbinnedNLL) Mask() []bool { return c.data.getMask() }

// SetMask installs a point mask (true keeps the point); nil clears it.
func (c *UnbinnedNLL) SetMask(m []bool) error { return c.data.setMask(m) }

// ExtendedUnbinnedNLL is the extended unbinned negative log-likelihood:
// it fits the shape of a density and the expected total event count at
// the same time.
type ExtendedUnbinnedNLL struct {
	base
	data      maskedData
	scaledPDF ScaledDensity
}

// NewExtendedUnbinnedNLL builds an extended unbinned negative
// log-likelihood over the sample data. names declares the free
// parameters of scaledPDF, in the order Eval expects them.
func NewExtendedUnbinnedNLL(data []float64, scaledPDF ScaledDensity, names []string) (*ExtendedUnbinnedNLL, error) {
	sig, err := NewSignature(names...)
	if err != nil {
		return nil, err
	}
	md, err := newMaskedData(data)
	if err != nil {
		return nil, err
	}
	return &ExtendedUnbinnedNLL{base: base{sig: sig}, data: md, scaledPDF: scaledPDF}, nil
}

// Eval returns 2 * (total - sum of log f(x_i)), summing over points
// kept by the mask. The total is taken from the scaled density, which
// by contract returns it independently of x.
func (c *ExtendedUnbinnedNLL) Eval(params []float64) float64 {
	total, s := 0.0, 0.0
	for i, x := range c.data.col(0) {
		n, f := c.scaledPDF(x, params)
		total = n
		if !c.data.keep(i) {
			continue
		}
		s += math.Log(f)
	}
	v := 2 * (total - s)
	c.trace("ExtendedUnbinnedNLL", params, v)
	return v
}

// ScaledPDF returns the scaled density supplied at construction.
func (c *ExtendedUnbinnedNLL) ScaledPDF() ScaledDensity { return c.scaledPDF }

// Data returns the stored sample. Contents may be edited in place; the
// length is fixed.
func (c *ExtendedUnbinnedNLL) Data() []float64 { return c.data.col(0) }

// SetData replaces the sample values. The number of points must not change.
func (c *ExtendedUnbinnedNLL) SetData(v []float64) error { return c.data.setCol(0, v) }

// Mask returns a copy of the active mask, or nil when all points are used.
func (c *ExtendedUnbinnedNLL) Mask() []bool { return c.data.getMask() }

// SetMask installs a point mask (true keeps the point); nil clears it.
func (c *ExtendedUnbinnedNLL) SetMask(m []bool) error { return c.data.setMask(m) }
