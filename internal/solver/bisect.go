// Package solver finds the equilibrium mixing probability by bisection on
// (0,1). The residual is assumed to change sign exactly once on the interval,
// negative below the root and positive above it.
package solver

import (
	"github.com/charmbracelet/log"

	"github.com/lox/statgames/internal/logging"
)

// Residual is a scalar equation in the mixing probability p whose root is the
// equilibrium.
type Residual interface {
	Residual(p float64) float64
}

// ResidualFunc adapts an ordinary function to the Residual interface.
type ResidualFunc func(p float64) float64

// Residual calls f(p).
func (f ResidualFunc) Residual(p float64) float64 {
	return f(p)
}

// Bracket is the result of a bisection search.
type Bracket struct {
	Lower      float64
	Upper      float64
	Iterations int

	// Exact is set when the residual vanished at a midpoint; Lower and Upper
	// then both hold that midpoint.
	Exact bool

	// Converged reports whether the half-width met the tolerance. A search cut
	// short by MaxIter still returns its best bracket with Converged unset.
	Converged bool
}

// Mid returns the midpoint of the bracket, the equilibrium estimate.
func (b Bracket) Mid() float64 {
	return (b.Lower + b.Upper) / 2
}

// Width returns Upper - Lower.
func (b Bracket) Width() float64 {
	return b.Upper - b.Lower
}

// Step describes a single bisection iteration.
type Step struct {
	Iteration int
	Mid       float64
	Residual  float64
	Lower     float64
	Upper     float64
}

// Solver runs bounded bisection searches.
type Solver struct {
	cfg    Config
	logger *log.Logger
	onStep func(Step)
}

// New constructs a solver. A nil logger discards output.
func New(cfg Config, logger *log.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg, logger: logging.OrDiscard(logger)}, nil
}

// OnStep registers a callback invoked after every iteration.
func (s *Solver) OnStep(fn func(Step)) {
	s.onStep = fn
}

// Solve bisects [0,1] until the half-width is within MaxError or MaxIter
// evaluations have been spent, whichever comes first.
func (s *Solver) Solve(f Residual) Bracket {
	lower, upper := 0.0, 1.0
	i := 0
	for (s.cfg.Unbounded() || i < s.cfg.MaxIter) && (upper-lower)/2 > s.cfg.MaxError {
		mid := (lower + upper) / 2
		r := f.Residual(mid)
		i++

		switch {
		case r > 0:
			upper = mid
		case r < 0:
			lower = mid
		case r == 0:
			s.logger.Debug("residual vanished", "iter", i, "p", mid)
			s.step(Step{Iteration: i, Mid: mid, Residual: r, Lower: mid, Upper: mid})
			return Bracket{Lower: mid, Upper: mid, Iterations: i, Exact: true, Converged: true}
		}
		// A NaN residual leaves the bracket unchanged.

		s.logger.Debug("bisection step", "iter", i, "p", mid, "residual", r, "lower", lower, "upper", upper)
		s.step(Step{Iteration: i, Mid: mid, Residual: r, Lower: lower, Upper: upper})
	}

	b := Bracket{Lower: lower, Upper: upper, Iterations: i}
	b.Converged = (upper-lower)/2 <= s.cfg.MaxError
	if !b.Converged {
		s.logger.Warn("iteration cap reached before tolerance", "iter", i, "lower", lower, "upper", upper, "max_error", s.cfg.MaxError)
	}
	return b
}

func (s *Solver) step(st Step) {
	if s.onStep != nil {
		s.onStep(st)
	}
}
