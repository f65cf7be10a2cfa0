package statgame

import (
	"fmt"

	"github.com/lox/statgames/internal/equilibrium"
	"github.com/lox/statgames/internal/logging"
	"github.com/lox/statgames/internal/solver"
)

// SolveBayesianGame solves the risk-neutral game over a finite population of
// m bits, with ka ones under scenario A and kb under scenario B, observed
// through a sample of n bits. The payoff is the growth rate G.
func SolveBayesianGame(n, ka, kb, m int) (*Result, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: population size must be non-negative, got %d", ErrInvalidArgumentRange, m)
	}
	opts := DefaultOptions()
	opts.Gamma = 1
	return SolveStatisticalGame(n, []float64{float64(ka), float64(kb)}, Finite(m), opts)
}

// SolveStatisticalGame solves the game at relative risk aversion opts.Gamma.
// With a finite population m the values are the counts of ones [KA, KB];
// with Infinite they are the densities [xA, xB]. The pair is reordered so the
// smaller value is scenario A.
func SolveStatisticalGame(n int, values []float64, m Population, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g, err := newGame(n, values, m)
	if err != nil {
		return nil, err
	}

	logger := logging.OrDiscard(opts.Logger)
	s, err := solver.New(opts.solverConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgumentRange, err)
	}

	logger.Debug("solving game", "n", g.n, "m", g.m, "a", g.a, "b", g.b, "gamma", opts.Gamma, "swapped", g.swapped)
	out := equilibrium.Solve(g.distribution(), opts.Gamma, s, logger)
	return newResult(out, g, opts.Gamma), nil
}
