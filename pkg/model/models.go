// Package model provides ready-made model functions for the cost
// package: common densities, cumulative distributions and regression
// shapes with their conventional parameter names.
package model

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/WhateverOP/iminuit/pkg/cost"
)

// floor returned for invalid scale parameters so the objective stays
// finite while a minimizer explores the boundary
const tinyDensity = 1e-300

// Line is y = a + b*x with parameters (a, b).
func Line(x float64, p []float64) float64 { return p[0] + p[1]*x }

// LineNames returns the parameter names of Line.
func LineNames() []string { return []string{"a", "b"} }

// Polynomial builds a polynomial of the given degree with parameters
// (c0, c1, ..., cdegree), evaluated by Horner's rule.
func Polynomial(degree int) (cost.Model, []string) {
	names := make([]string, degree+1)
	for i := range names {
		names[i] = "c" + strconv.Itoa(i)
	}
	m := func(x float64, p []float64) float64 {
		v := p[degree]
		for i := degree - 1; i >= 0; i-- {
			v = v*x + p[i]
		}
		return v
	}
	return m, names
}

// NormalPDF is the gaussian density with parameters (mu, sigma). A
// non-positive sigma yields a tiny density instead of NaN, so a
// minimizer probing the boundary sees a large finite cost.
func NormalPDF(x float64, p []float64) float64 {
	if p[1] <= 0 {
		return tinyDensity
	}
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.Prob(x)
}

// NormalCDF is the gaussian cumulative distribution with parameters
// (mu, sigma).
func NormalCDF(x float64, p []float64) float64 {
	if p[1] <= 0 {
		return 0
	}
	return distuv.Normal{Mu: p[0], Sigma: p[1]}.CDF(x)
}

// NormalNames returns the parameter names of NormalPDF and NormalCDF.
func NormalNames() []string { return []string{"mu", "sigma"} }

// ExponentialCDF is 1 - exp(-x/tau) with parameter (tau).
func ExponentialCDF(x float64, p []float64) float64 {
	if p[0] <= 0 {
		return 0
	}
	return 1 - math.Exp(-x/p[0])
}

// ExponentialNames returns the parameter names of ExponentialCDF.
func ExponentialNames() []string { return []string{"tau"} }

// Scaled wraps a density into the extended form expected by
// ExtendedUnbinnedNLL, prepending a yield parameter n.
func Scaled(pdf cost.Density, names []string) (cost.ScaledDensity, []string) {
	scaled := func(x float64, p []float64) (float64, float64) {
		n := p[0]
		if n <= 0 {
			return 0, tinyDensity
		}
		return n, n * pdf(x, p[1:])
	}
	return scaled, append([]string{"n"}, names...)
}

// ScaledCDF wraps a cumulative distribution into the yield-scaled form
// expected by ExtendedBinnedNLL, prepending a yield parameter n.
func ScaledCDF(cdf cost.CDF, names []string) (cost.ScaledCDF, []string) {
	scaled := func(x float64, p []float64) float64 {
		return p[0] * cdf(x, p[1:])
	}
	return scaled, append([]string{"n"}, names...)
}
