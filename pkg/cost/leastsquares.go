package cost

import (
	"fmt"
	"math"
)

// Model evaluates a regression model at x for the given parameter
// values.
type Model func(x float64, params []float64) float64

// LossFunc transforms a squared normalized residual. Robust losses
// grow slower than identity for large arguments, reducing the pull of
// outliers.
type LossFunc func(z float64) float64

// Loss tags accepted by LeastSquares.
const (
	LossLinear = "linear"
	LossSoftL1 = "soft_l1"
	// LossCustom is reported by Loss after SetLossFunc; it cannot be
	// set by tag.
	LossCustom = "custom"
)

// LeastSquares is a weighted sum of squared normalized residuals
// between measured values y and a model, optionally passed through a
// robust loss.
type LeastSquares struct {
	base
	data     maskedData // columns: x, y, yerror
	model    Model
	loss     string
	lossFunc LossFunc // set only when loss == LossCustom
}

// NewLeastSquares builds a least-squares cost over points (x, y) with
// per-point uncertainties yerror; all three must have equal length.
// names declares the free parameters of model, in the order Eval
// expects them. loss is LossLinear or LossSoftL1; use SetLossFunc for
// a custom transform.
func NewLeastSquares(x, y, yerror []float64, model Model, names []string, loss string) (*LeastSquares, error) {
	sig, err := NewSignature(names...)
	if err != nil {
		return nil, err
	}
	md, err := newMaskedData(x, y, yerror)
	if err != nil {
		return nil, err
	}
	c := &LeastSquares{base: base{sig: sig}, data: md, model: model}
	if err := c.SetLoss(loss); err != nil {
		return nil, err
	}
	return c, nil
}

// Eval applies the loss to each squared normalized residual
// ((y - model(x)) / yerror)^2 and sums over points kept by the mask.
func (c *LeastSquares) Eval(params []float64) float64 {
	x, y, ye := c.data.col(0), c.data.col(1), c.data.col(2)
	s := 0.0
	for i := range x {
		if !c.data.keep(i) {
			continue
		}
		r := (y[i] - c.model(x[i], params)) / ye[i]
		z := r * r
		switch c.loss {
		case LossLinear:
			s += z
		case LossSoftL1:
			s += 2 * (math.Sqrt(1+z) - 1)
		default:
			s += c.lossFunc(z)
		}
	}
	c.trace("LeastSquares", params, s)
	return s
}

// Model returns the model function supplied at construction.
func (c *LeastSquares) Model() Model { return c.model }

// Loss returns the active loss tag: LossLinear, LossSoftL1 or
// LossCustom.
func (c *LeastSquares) Loss() string { return c.loss }

// SetLoss selects a loss by tag. Only LossLinear and LossSoftL1 are
// recognized.
func (c *LeastSquares) SetLoss(loss string) error {
	switch loss {
	case LossLinear, LossSoftL1:
		c.loss = loss
		c.lossFunc = nil
		return nil
	}
	return fmt.Errorf("loss %q: %w", loss, ErrLoss)
}

// SetLossFunc installs a custom transform of the squared normalized
// residual; Loss reports LossCustom afterwards.
func (c *LeastSquares) SetLossFunc(f LossFunc) {
	c.loss = LossCustom
	c.lossFunc = f
}

// X returns the stored abscissa values. Contents may be edited in
// place; the length is fixed.
func (c *LeastSquares) X() []float64 { return c.data.col(0) }

// SetX replaces the abscissa values. The number of points must not change.
func (c *LeastSquares) SetX(v []float64) error { return c.data.setCol(0, v) }

// Y returns the stored measured values. Contents may be edited in
// place; the length is fixed.
func (c *LeastSquares) Y() []float64 { return c.data.col(1) }

// SetY replaces the measured values. The number of points must not change.
func (c *LeastSquares) SetY(v []float64) error { return c.data.setCol(1, v) }

// YError returns the stored uncertainties. Contents may be edited in
// place; the length is fixed.
func (c *LeastSquares) YError() []float64 { return c.data.col(2) }

// SetYError replaces the uncertainties. The number of points must not change.
func (c *LeastSquares) SetYError(v []float64) error { return c.data.setCol(2, v) }

// Mask returns a copy of the active mask, or nil when all points are used.
func (c *LeastSquares) Mask() []bool { return c.data.getMask() }

// SetMask installs a point mask (true keeps the point); nil clears it.
func (c *LeastSquares) SetMask(m []bool) error { return c.data.setMask(m) }
