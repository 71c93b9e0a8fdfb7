// Package cost provides composable objective functions for fitting
// statistical models to data. Each cost maps a parameter vector to a
// scalar (smaller = better fit) and is consumed by an external
// minimizer. Costs built from independent data sets can be combined
// into a joint objective with Combine; parameters with the same name
// are shared across the combined terms.
package cost

import (
	"os"

	"github.com/rs/zerolog"
)

// Cost is a scalar objective consumed by a minimizer.
type Cost interface {
	// Parameters returns the ordered names of the free parameters.
	Parameters() []string
	// Eval computes the cost for a parameter vector given in
	// Parameters order. The result may be NaN or infinite when the
	// trial point is invalid; a minimizer treats such points as
	// rejected steps.
	Eval(params []float64) float64
}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogger replaces the logger used for verbose evaluation traces.
func SetLogger(l zerolog.Logger) { logger = l }

// base carries what every cost shares: the declared parameter
// signature and a verbosity level for diagnostic traces.
type base struct {
	sig Signature

	// Verbose enables a trace event per evaluation at >= 1. It never
	// affects the numeric result.
	Verbose int
}

// Parameters returns the ordered names of the free parameters.
func (b *base) Parameters() []string { return b.sig.Names() }

func (b *base) trace(kind string, params []float64, value float64) {
	if b.Verbose < 1 {
		return
	}
	logger.Debug().
		Str("cost", kind).
		Floats64("params", params).
		Float64("value", value).
		Msg("eval")
}
