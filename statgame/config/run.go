package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/statgames/internal/logging"
	"github.com/lox/statgames/statgame"
)

// Outcome pairs a game name with its equilibrium.
type Outcome struct {
	Name   string
	Result *statgame.Result
}

// Run solves every game of cfg in declaration order. The first invalid game
// aborts the batch.
func Run(cfg *Config, logger *log.Logger) ([]Outcome, error) {
	logger = logging.OrDiscard(logger)

	outcomes := make([]Outcome, 0, len(cfg.Games))
	for _, g := range cfg.Games {
		opts := cfg.Options(g)
		opts.Logger = logger.With("game", g.Name)

		res, err := statgame.SolveStatisticalGame(g.N, g.Scenarios, g.PopulationValue(), opts)
		if err != nil {
			return nil, fmt.Errorf("game %q: %w", g.Name, err)
		}

		logger.Info("solved game",
			"game", g.Name,
			"kind", res.Kind,
			"p", res.P,
			"payoff", res.Payoff,
			"sure_win", res.SureWin,
			"converged", res.Converged,
		)
		outcomes = append(outcomes, Outcome{Name: g.Name, Result: res})
	}
	return outcomes, nil
}
