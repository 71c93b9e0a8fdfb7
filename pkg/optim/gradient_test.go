package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhateverOP/iminuit/pkg/cost"
)

// quadratic cost (p0-1)^2 + (p1-2)^2/4 with known derivatives
func quadratic(t *testing.T) cost.Cost {
	t.Helper()
	c, err := cost.NewNormalConstraint([]string{"a", "b"}, []float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	return c
}

func TestGradientQuadratic(t *testing.T) {
	c := quadratic(t)
	g := Gradient(c, []float64{2, 4})
	assert.InDelta(t, 2, g[0], 1e-6)
	assert.InDelta(t, 1, g[1], 1e-6)

	g = Gradient(c, []float64{1, 2})
	assert.InDelta(t, 0, g[0], 1e-6)
	assert.InDelta(t, 0, g[1], 1e-6)
}

func TestHessianQuadratic(t *testing.T) {
	c := quadratic(t)
	h := Hessian(c, []float64{0.3, -1.7})
	assert.InDelta(t, 2, h.At(0, 0), 1e-5)
	assert.InDelta(t, 0.5, h.At(1, 1), 1e-5)
	assert.InDelta(t, 0, h.At(0, 1), 1e-5)
}

func TestCovarianceRecoversConstraint(t *testing.T) {
	// for a pure normal constraint, 2*H^-1 is the constraint covariance
	c := quadratic(t)
	cov, err := Covariance(c, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, cov.At(0, 0), 1e-4)
	assert.InDelta(t, 4, cov.At(1, 1), 1e-4)
	assert.InDelta(t, 0, cov.At(0, 1), 1e-4)
}

func TestMinimizeQuadratic(t *testing.T) {
	c := quadratic(t)
	res, err := Minimize(c, []float64{-3, 7})
	require.NoError(t, err)
	assert.InDelta(t, 1, res.X[0], 1e-4)
	assert.InDelta(t, 2, res.X[1], 1e-4)
	assert.InDelta(t, 0, res.F, 1e-6)
}
