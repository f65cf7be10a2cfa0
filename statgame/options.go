package statgame

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/lox/statgames/internal/solver"
)

// MethodBisection is the only supported root-finding method.
const MethodBisection = "bisection"

// DefaultGamma is the relative risk aversion used by DefaultOptions.
const DefaultGamma = 0.5

// Options tune SolveStatisticalGame.
type Options struct {
	// Gamma is the relative risk aversion. Exactly 1 selects the risk-neutral
	// Bayesian game.
	Gamma float64

	// Method names the root finder; only MethodBisection is supported.
	Method string

	// MaxIter caps bisection steps; zero leaves termination to MaxError.
	MaxIter int

	// MaxError bounds the half-width of the final bracket.
	MaxError float64

	// Logger receives debug traces of the solve. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns gamma 1/2 with an unbounded bisection to a 2^-10
// half-width.
func DefaultOptions() Options {
	return Options{
		Gamma:    DefaultGamma,
		Method:   MethodBisection,
		MaxIter:  0,
		MaxError: solver.DefaultMaxError,
	}
}

// Validate reports unusable options as ErrInvalidArgumentRange.
func (o Options) Validate() error {
	if math.IsNaN(o.Gamma) || math.IsInf(o.Gamma, 0) || o.Gamma <= 0 {
		return fmt.Errorf("%w: gamma must be a positive finite number, got %v", ErrInvalidArgumentRange, o.Gamma)
	}
	if o.Method != MethodBisection {
		return fmt.Errorf("%w: unsupported method %q", ErrInvalidArgumentRange, o.Method)
	}
	if err := o.solverConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgumentRange, err)
	}
	return nil
}

func (o Options) solverConfig() solver.Config {
	return solver.Config{MaxIter: o.MaxIter, MaxError: o.MaxError}
}
