package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/WhateverOP/iminuit/pkg/cost"
)

// finite-difference step scales; central differences
const (
	gradStep = 1e-6
	hessStep = 1e-4
)

// Gradient estimates the gradient of c at params by central
// differences. params is not modified.
func Gradient(c cost.Cost, params []float64) []float64 {
	x := append([]float64(nil), params...)
	g := make([]float64, len(x))
	for i := range x {
		h := gradStep * math.Max(1, math.Abs(x[i]))
		xi := x[i]
		x[i] = xi + h
		fp := c.Eval(x)
		x[i] = xi - h
		fm := c.Eval(x)
		x[i] = xi
		g[i] = (fp - fm) / (2 * h)
	}
	return g
}

// Hessian estimates the Hessian of c at params by central second
// differences. params is not modified.
func Hessian(c cost.Cost, params []float64) *mat.SymDense {
	x := append([]float64(nil), params...)
	k := len(x)
	h := make([]float64, k)
	for i := range x {
		h[i] = hessStep * math.Max(1, math.Abs(x[i]))
	}
	f0 := c.Eval(x)
	hess := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		xi := x[i]
		x[i] = xi + h[i]
		fp := c.Eval(x)
		x[i] = xi - h[i]
		fm := c.Eval(x)
		x[i] = xi
		hess.SetSym(i, i, (fp-2*f0+fm)/(h[i]*h[i]))
		for j := i + 1; j < k; j++ {
			xj := x[j]
			x[i], x[j] = xi+h[i], xj+h[j]
			fpp := c.Eval(x)
			x[i], x[j] = xi+h[i], xj-h[j]
			fpm := c.Eval(x)
			x[i], x[j] = xi-h[i], xj+h[j]
			fmp := c.Eval(x)
			x[i], x[j] = xi-h[i], xj-h[j]
			fmm := c.Eval(x)
			x[i], x[j] = xi, xj
			hess.SetSym(i, j, (fpp-fpm-fmp+fmm)/(4*h[i]*h[j]))
		}
	}
	return hess
}

// Covariance estimates the parameter covariance matrix at a minimum of
// c as twice the inverse Hessian, the convention matching 2*NLL and
// chi-square objectives.
func Covariance(c cost.Cost, params []float64) (*mat.SymDense, error) {
	hess := Hessian(c, params)
	k := hess.SymmetricDim()
	var inv mat.Dense
	if err := inv.Inverse(hess); err != nil {
		return nil, fmt.Errorf("optim: hessian is not invertible: %w", err)
	}
	cov := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			cov.SetSym(i, j, inv.At(i, j)+inv.At(j, i)) // 2 * symmetrized inverse
		}
	}
	return cov, nil
}
