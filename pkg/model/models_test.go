package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	assert.InDelta(t, 7, Line(3, []float64{1, 2}), 1e-12)
	assert.Equal(t, []string{"a", "b"}, LineNames())
}

func TestPolynomial(t *testing.T) {
	poly, names := Polynomial(2)
	assert.Equal(t, []string{"c0", "c1", "c2"}, names)
	// 1 + 2x + 3x^2 at x=2 -> 17
	assert.InDelta(t, 17, poly(2, []float64{1, 2, 3}), 1e-12)
}

func TestNormalPDF(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), NormalPDF(0, []float64{0, 1}), 1e-12)
	// invalid sigma floors the density instead of going NaN
	assert.Greater(t, NormalPDF(0, []float64{0, -1}), 0.0)
}

func TestNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0, []float64{0, 1}), 1e-12)
	assert.InDelta(t, 1, NormalCDF(100, []float64{0, 1}), 1e-9)
}

func TestExponentialCDF(t *testing.T) {
	assert.InDelta(t, 1-math.Exp(-2), ExponentialCDF(2, []float64{1}), 1e-12)
	assert.Equal(t, []string{"tau"}, ExponentialNames())
}

func TestScaled(t *testing.T) {
	scaled, names := Scaled(NormalPDF, NormalNames())
	assert.Equal(t, []string{"n", "mu", "sigma"}, names)
	total, f := scaled(0, []float64{100, 0, 1})
	assert.InDelta(t, 100, total, 1e-12)
	assert.InDelta(t, 100/math.Sqrt(2*math.Pi), f, 1e-9)
}

func TestScaledCDF(t *testing.T) {
	scaled, names := ScaledCDF(NormalCDF, NormalNames())
	assert.Equal(t, []string{"n", "mu", "sigma"}, names)
	assert.InDelta(t, 50, scaled(0, []float64{100, 0, 1}), 1e-9)
}
