// Package stats provides the small statistics toolbox used around the
// cost functions: sample moments, histogramming for binned likelihoods
// and an analytic weighted line fit that serves as a closed-form
// cross-check for least-squares results.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Sum(x) / float64(len(x))
}

// Variance computes the population variance (normalized by n).
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	m := Mean(x)
	s := 0.0
	for _, v := range x {
		d := v - m
		s += d * d
	}
	return s / n
}

// SampleVariance computes the unbiased variance (normalized by n-1).
func SampleVariance(x []float64) float64 {
	n := float64(len(x))
	if n < 2 {
		return 0
	}
	return Variance(x) * n / (n - 1)
}

// Std computes the population standard deviation.
func Std(x []float64) float64 { return math.Sqrt(Variance(x)) }

// SampleStd computes the unbiased standard deviation.
func SampleStd(x []float64) float64 { return math.Sqrt(SampleVariance(x)) }

// Histogram bins x into the given number of equal-width bins over
// [lo, hi) and returns the counts and the bin edges (one more edge
// than bins). Values outside the range are dropped. Counts are
// float64 so they feed binned costs directly.
func Histogram(x []float64, bins int, lo, hi float64) (n, xe []float64) {
	n = make([]float64, bins)
	xe = make([]float64, bins+1)
	w := (hi - lo) / float64(bins)
	for i := range xe {
		xe[i] = lo + float64(i)*w
	}
	xe[bins] = hi // avoid accumulation error on the last edge
	for _, v := range x {
		if v < lo || v >= hi {
			continue
		}
		k := int((v - lo) / w)
		if k == bins {
			k--
		}
		n[k]++
	}
	return n, xe
}

// WeightedLineFit computes the analytic weighted least-squares
// solution for y = a + b*x with per-point uncertainties yerr. It
// returns the parameters (a, b) and their covariance matrix.
func WeightedLineFit(x, y, yerr []float64) (params []float64, cov *mat.SymDense, err error) {
	if len(y) != len(x) || len(yerr) != len(x) {
		return nil, nil, fmt.Errorf("stats: line fit needs equal lengths, got %d/%d/%d", len(x), len(y), len(yerr))
	}
	var s, sx, sxx, sy, sxy float64
	for i := range x {
		w := 1 / (yerr[i] * yerr[i])
		s += w
		sx += w * x[i]
		sxx += w * x[i] * x[i]
		sy += w * y[i]
		sxy += w * x[i] * y[i]
	}
	det := s*sxx - sx*sx
	if det == 0 {
		return nil, nil, fmt.Errorf("stats: singular normal equations in line fit")
	}
	a := (sxx*sy - sx*sxy) / det
	b := (s*sxy - sx*sy) / det
	cov = mat.NewSymDense(2, []float64{
		sxx / det, -sx / det,
		-sx / det, s / det,
	})
	return []float64{a, b}, cov, nil
}
