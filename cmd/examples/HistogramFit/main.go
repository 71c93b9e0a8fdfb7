package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/rs/zerolog"

	"github.com/WhateverOP/iminuit/pkg/cost"
	"github.com/WhateverOP/iminuit/pkg/model"
	"github.com/WhateverOP/iminuit/pkg/optim"
	"github.com/WhateverOP/iminuit/pkg/stats"
)

func main() {
	fmt.Println("=== Binned vs unbinned gaussian fit ===")

	cost.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel))

	rng := rand.New(rand.NewSource(7))
	sample := make([]float64, 1000)
	for i := range sample {
		sample[i] = 0.5 + 1.5*rng.NormFloat64()
	}
	fmt.Printf("Sample: mean = %.4f, std = %.4f\n", stats.Mean(sample), stats.SampleStd(sample))

	unbinned, err := cost.NewUnbinnedNLL(sample, model.NormalPDF, model.NormalNames())
	if err != nil {
		fmt.Println("cost error:", err)
		return
	}
	res, err := optim.Minimize(unbinned, []float64{0, 1})
	if err != nil {
		fmt.Println("minimize error:", err)
		return
	}
	fmt.Printf("Unbinned fit:  mu = %.4f, sigma = %.4f (2NLL = %.2f)\n", res.X[0], res.X[1], res.F)

	n, xe := stats.Histogram(sample, 50, -5, 6)
	binned, err := cost.NewBinnedNLL(n, xe, model.NormalCDF, model.NormalNames())
	if err != nil {
		fmt.Println("cost error:", err)
		return
	}
	binned.Verbose = 0 // set to 1 to trace every evaluation
	res, err = optim.Minimize(binned, []float64{0, 1})
	if err != nil {
		fmt.Println("minimize error:", err)
		return
	}
	fmt.Printf("Binned fit:    mu = %.4f, sigma = %.4f (deviance = %.2f)\n", res.X[0], res.X[1], res.F)

	cov, err := optim.Covariance(binned, res.X)
	if err != nil {
		fmt.Println("covariance error:", err)
		return
	}
	fmt.Printf("Uncertainties: mu +- %.4f, sigma +- %.4f\n",
		math.Sqrt(cov.At(0, 0)), math.Sqrt(cov.At(1, 1)))
}
