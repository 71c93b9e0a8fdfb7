package main

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/WhateverOP/iminuit/pkg/cost"
	"github.com/WhateverOP/iminuit/pkg/model"
	"github.com/WhateverOP/iminuit/pkg/optim"
	"github.com/WhateverOP/iminuit/pkg/stats"
)

// generateLine creates noisy measurements of y = a + b*x.
func generateLine(n int, a, b, sigma float64) (x, y, ye []float64) {
	rng := rand.New(rand.NewSource(42))
	x = make([]float64, n)
	y = make([]float64, n)
	ye = make([]float64, n)
	for i := range x {
		x[i] = 2 * rng.Float64()
		y[i] = a + b*x[i] + sigma*rng.NormFloat64()
		ye[i] = sigma
	}
	return x, y, ye
}

// plotFit visualizes the data points and the fitted line.
func plotFit(x, y []float64, a, b float64, filename string) {
	p := plot.New()
	p.Title.Text = "Weighted least-squares line fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		fmt.Println("scatter error:", err)
		return
	}
	p.Add(s)

	line := plotter.NewFunction(func(v float64) float64 { return a + b*v })
	line.Width = vg.Points(2)
	p.Add(line)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		fmt.Println("save error:", err)
		return
	}
	fmt.Printf("Saved fit plot to %s\n", filename)
}

func main() {
	fmt.Println("=== Joint line fit with a constraint on the slope ===")

	x, y, ye := generateLine(50, 1, 2, 0.1)

	lsq, err := cost.NewLeastSquares(x, y, ye, model.Line, model.LineNames(), cost.LossLinear)
	if err != nil {
		fmt.Println("cost error:", err)
		return
	}

	// pretend another experiment measured the slope as 2.0 +- 0.05
	nc, err := cost.NewNormalConstraint([]string{"b"}, []float64{2}, []float64{0.05})
	if err != nil {
		fmt.Println("constraint error:", err)
		return
	}
	joint := cost.Combine(lsq, nc)
	fmt.Printf("Joint parameters: %v\n", joint.Parameters())

	res, err := optim.Minimize(joint, []float64{0, 0})
	if err != nil {
		fmt.Println("minimize error:", err)
		return
	}
	cov, err := optim.Covariance(joint, res.X)
	if err != nil {
		fmt.Println("covariance error:", err)
		return
	}
	fmt.Printf("a = %.4f +- %.4f\n", res.X[0], math.Sqrt(cov.At(0, 0)))
	fmt.Printf("b = %.4f +- %.4f\n", res.X[1], math.Sqrt(cov.At(1, 1)))

	// closed-form cross-check without the constraint
	ols, _, err := stats.WeightedLineFit(x, y, ye)
	if err != nil {
		fmt.Println("ols error:", err)
		return
	}
	fmt.Printf("Unconstrained OLS: a = %.4f, b = %.4f\n", ols[0], ols[1])

	plotFit(x, y, res.X[0], res.X[1], "line_fit.png")
}
