// Package optim bridges cost functions to a numerical minimizer. The
// minimization algorithm itself is external (gonum/optimize); this
// package only adapts the objective and derives gradients, Hessians
// and parameter covariances from it numerically.
package optim

import (
	"gonum.org/v1/gonum/optimize"

	"github.com/WhateverOP/iminuit/pkg/cost"
)

// Problem adapts a cost to a gonum optimization problem.
func Problem(c cost.Cost) optimize.Problem {
	return optimize.Problem{Func: c.Eval}
}

// Minimize runs gonum's Nelder-Mead simplex on the cost starting from
// init, which must match the cost's parameter order. The cost may
// return NaN or Inf for invalid trial points.
func Minimize(c cost.Cost, init []float64) (*optimize.Result, error) {
	res, err := optimize.Minimize(Problem(c), init, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, err
	}
	if err := res.Status.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
