package cost

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NormalConstraint is a multivariate normal penalty pulling parameters
// toward externally known values, e.g. a measurement from another
// experiment folded into a fit as a prior. It has no mask: a
// multivariate prior applies as a whole or not at all.
type NormalConstraint struct {
	base
	value []float64
	cov   *mat.SymDense
	chol  mat.Cholesky
}

// NewNormalConstraint builds a constraint with independent
// uncertainties. errors are standard deviations; they are squared into
// the diagonal of the covariance.
func NewNormalConstraint(names []string, value, errors []float64) (*NormalConstraint, error) {
	k := len(names)
	if len(value) != k || len(errors) != k {
		return nil, fmt.Errorf("constraint on %d parameters got %d values and %d errors: %w",
			k, len(value), len(errors), ErrShape)
	}
	cov := mat.NewSymDense(k, nil)
	for i, e := range errors {
		cov.SetSym(i, i, e*e)
	}
	return newNormalConstraint(names, value, cov)
}

// NewNormalConstraintCov builds a constraint with a full covariance
// matrix, allowing correlated uncertainties.
func NewNormalConstraintCov(names []string, value []float64, cov *mat.SymDense) (*NormalConstraint, error) {
	k := len(names)
	if len(value) != k || cov.SymmetricDim() != k {
		return nil, fmt.Errorf("constraint on %d parameters got %d values and a %dx%d covariance: %w",
			k, len(value), cov.SymmetricDim(), cov.SymmetricDim(), ErrShape)
	}
	cp := mat.NewSymDense(k, nil)
	cp.CopySym(cov)
	return newNormalConstraint(names, value, cp)
}

func newNormalConstraint(names []string, value []float64, cov *mat.SymDense) (*NormalConstraint, error) {
	sig, err := NewSignature(names...)
	if err != nil {
		return nil, err
	}
	c := &NormalConstraint{
		base:  base{sig: sig},
		value: append([]float64(nil), value...),
		cov:   cov,
	}
	if err := c.refactorize(); err != nil {
		return nil, err
	}
	return c, nil
}

// refactorize refreshes the cached Cholesky decomposition used by Eval.
func (c *NormalConstraint) refactorize() error {
	if ok := c.chol.Factorize(c.cov); !ok {
		return fmt.Errorf("covariance is not positive definite: %w", ErrShape)
	}
	return nil
}

// Eval returns r^T cov^-1 r with r the deviation of params from the
// constraint value.
func (c *NormalConstraint) Eval(params []float64) float64 {
	k := len(c.value)
	r := mat.NewVecDense(k, nil)
	for i, v := range c.value {
		r.SetVec(i, params[i]-v)
	}
	var y mat.VecDense
	if err := c.chol.SolveVecTo(&y, r); err != nil {
		return math.NaN()
	}
	v := mat.Dot(r, &y)
	c.trace("NormalConstraint", params, v)
	return v
}

// Value returns a copy of the constraint center.
func (c *NormalConstraint) Value() []float64 {
	return append([]float64(nil), c.value...)
}

// SetValue replaces the constraint center. Its dimension must not change.
func (c *NormalConstraint) SetValue(v []float64) error {
	if len(v) != len(c.value) {
		return fmt.Errorf("cannot resize constraint value from %d to %d: %w", len(c.value), len(v), ErrShape)
	}
	copy(c.value, v)
	return nil
}

// Covariance returns a copy of the covariance matrix.
func (c *NormalConstraint) Covariance() *mat.SymDense {
	k := c.cov.SymmetricDim()
	cp := mat.NewSymDense(k, nil)
	cp.CopySym(c.cov)
	return cp
}

// SetCovariance replaces the covariance matrix. Its dimension must not
// change and it must be positive definite.
func (c *NormalConstraint) SetCovariance(cov *mat.SymDense) error {
	if cov.SymmetricDim() != c.cov.SymmetricDim() {
		return fmt.Errorf("cannot resize covariance from %d to %d: %w",
			c.cov.SymmetricDim(), cov.SymmetricDim(), ErrShape)
	}
	c.cov.CopySym(cov)
	return c.refactorize()
}

// SetVariances replaces the covariance with a diagonal matrix of the
// given variances.
func (c *NormalConstraint) SetVariances(v []float64) error {
	k := c.cov.SymmetricDim()
	if len(v) != k {
		return fmt.Errorf("got %d variances for %d constrained parameters: %w", len(v), k, ErrShape)
	}
	cov := mat.NewSymDense(k, nil)
	for i, vi := range v {
		cov.SetSym(i, i, vi)
	}
	c.cov = cov
	return c.refactorize()
}
