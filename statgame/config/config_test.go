package config

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/statgames/statgame"
)

const sampleHCL = `
log_level = "debug"

solver {
  method    = "bisection"
  max_error = 0.0009765625
}

game "urn" {
  n          = 1
  scenarios  = [0, 1]
  population = 2
  gamma      = 0.5
}

game "coin" {
  n         = 10
  scenarios = [0.3, 0.5]
}

game "bayes" {
  n          = 1
  scenarios  = [0, 1]
  population = 2
  bayesian   = true
}
`

const sampleJSON = `{
  "game": {
    "urn": {
      "n": 1,
      "scenarios": [0, 1],
      "population": 2
    }
  }
}`

const sampleYAML = `
log_format: logfmt
solver:
  max_iter: 4
games:
  - name: coin
    n: 10
    scenarios: [0.5, 0.3]
    gamma: 0.5
  - name: sure
    n: 1
    scenarios: [0, 1]
    population: 1
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestParseHCL(t *testing.T) {
	cfg, err := Parse("games.hcl", []byte(sampleHCL))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	require.NotNil(t, cfg.Solver)
	assert.Equal(t, statgame.MethodBisection, cfg.Solver.Method)
	require.Len(t, cfg.Games, 3)

	urn := cfg.Games[0]
	assert.Equal(t, "urn", urn.Name)
	assert.Equal(t, statgame.Finite(2), urn.PopulationValue())
	assert.Equal(t, []float64{0, 1}, urn.Scenarios)
	assert.Equal(t, 0.5, *urn.Gamma)

	coin := cfg.Games[1]
	assert.Nil(t, coin.Population)
	assert.Equal(t, statgame.Infinite, coin.PopulationValue())
	assert.Equal(t, statgame.DefaultGamma, *coin.Gamma)

	bayes := cfg.Games[2]
	assert.True(t, bayes.Bayesian)
	assert.Equal(t, 1.0, *bayes.Gamma)
	assert.Equal(t, 1.0, cfg.Options(bayes).Gamma)
}

func TestParseJSON(t *testing.T) {
	cfg, err := Parse("games.json", []byte(sampleJSON))
	require.NoError(t, err)

	require.Len(t, cfg.Games, 1)
	assert.Equal(t, "urn", cfg.Games[0].Name)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, statgame.DefaultOptions().MaxError, cfg.Solver.MaxError)
}

func TestParseYAML(t *testing.T) {
	cfg, err := Parse("games.yml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "logfmt", cfg.LogFormat)
	assert.Equal(t, 4, cfg.Solver.MaxIter)
	assert.Equal(t, statgame.MethodBisection, cfg.Solver.Method)
	require.Len(t, cfg.Games, 2)
	assert.Equal(t, 4, cfg.Options(cfg.Games[0]).MaxIter)
	assert.Equal(t, statgame.Finite(1), cfg.Games[1].PopulationValue())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      string
	}{
		{"unknown extension", "games.toml", sampleHCL},
		{"hcl syntax", "games.hcl", `game "x" {`},
		{"missing sample size", "games.hcl", `game "x" { scenarios = [0.1, 0.2] }`},
		{"missing label", "games.hcl", `game { n = 1 scenarios = [0.1, 0.2] }`},
		{"no games", "games.hcl", `log_level = "info"`},
		{"empty yaml", "games.yaml", ``},
		{"unknown yaml field", "games.yaml", "games:\n  - name: a\n    n: 1\n    scenarios: [0, 1]\n    sample: 3\n"},
		{"duplicate names", "games.hcl", `
game "a" {
  n = 1
  scenarios = [0.1, 0.2]
}
game "a" {
  n = 2
  scenarios = [0.1, 0.2]
}`},
		{"unnamed yaml game", "games.yaml", "games:\n  - n: 1\n    scenarios: [0, 1]\n"},
		{"bayesian without population", "games.hcl", `
game "b" {
  n = 1
  scenarios = [0, 1]
  bayesian = true
}`},
		{"bayesian with gamma", "games.hcl", `
game "b" {
  n = 1
  scenarios = [0, 1]
  population = 2
  bayesian = true
  gamma = 0.5
}`},
		{"bad gamma", "games.hcl", `
game "g" {
  n = 1
  scenarios = [0.1, 0.2]
  gamma = -1
}`},
		{"bad method", "games.hcl", `
solver {
  method = "secant"
}
game "g" {
  n = 1
  scenarios = [0.1, 0.2]
}`},
		{"negative population", "games.hcl", `
game "neg" {
  n = 1
  scenarios = [0, 1]
  population = -1
}`},
		{"negative yaml population", "games.yaml", "games:\n  - name: neg\n    n: 1\n    scenarios: [0, 1]\n    population: -1\n"},
		{"bad log level", "games.hcl", `
log_level = "loud"
game "g" {
  n = 1
  scenarios = [0.1, 0.2]
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.filename, []byte(tt.src))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestRun(t *testing.T) {
	cfg, err := Parse("games.hcl", []byte(sampleHCL))
	require.NoError(t, err)

	outcomes, err := Run(cfg, quietLogger())
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	urn := outcomes[0]
	assert.Equal(t, "urn", urn.Name)
	assert.Equal(t, 0.3994140625, urn.Result.P)
	assert.InDelta(t, -0.3999993129521612, urn.Result.Payoff, 1e-12)

	coin := outcomes[1]
	assert.Equal(t, 0.4951171875, coin.Result.P)
	assert.InDelta(t, -0.38742895605774774, coin.Result.Payoff, 1e-12)

	bayes := outcomes[2]
	assert.Equal(t, statgame.Growth, bayes.Result.Kind)
	want, err := statgame.SolveBayesianGame(1, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, want.P, bayes.Result.P)
	assert.Equal(t, want.Payoff, bayes.Result.Payoff)
}

func TestRunHonoursSolverSettings(t *testing.T) {
	cfg, err := Parse("games.yaml", []byte(sampleYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	outcomes, err := Run(cfg, logger)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	coin := outcomes[0].Result
	assert.True(t, coin.Swapped)
	assert.Equal(t, 4, coin.Iterations)
	assert.False(t, coin.Converged)

	sure := outcomes[1].Result
	assert.True(t, sure.SureWin)

	out := buf.String()
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "iteration cap reached")
	assert.Contains(t, out, "game=coin")
	assert.Contains(t, out, `msg="solved game"`)
	assert.Contains(t, out, "sure_win=true")
}

func TestRunStopsAtInvalidGame(t *testing.T) {
	cfg, err := Parse("games.hcl", []byte(`
game "ok" {
  n = 2
  scenarios = [0.1, 0.2]
}
game "broken" {
  n = 2
  scenarios = [0.1, 1.2]
}`))
	require.NoError(t, err)

	outcomes, err := Run(cfg, nil)
	assert.Nil(t, outcomes)
	require.Error(t, err)
	assert.ErrorIs(t, err, statgame.ErrInvalidArgumentRange)
	assert.Contains(t, err.Error(), `game "broken"`)
}

func TestRunRejectsNegativePopulation(t *testing.T) {
	population, gamma := -1, 0.5
	cfg := &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Solver:    &SolverConfig{Method: statgame.MethodBisection, MaxError: statgame.DefaultOptions().MaxError},
		Games: []GameConfig{{
			Name:       "neg",
			N:          1,
			Scenarios:  []float64{0, 1},
			Population: &population,
			Gamma:      &gamma,
		}},
	}

	assert.False(t, cfg.Games[0].PopulationValue().IsInfinite())

	outcomes, err := Run(cfg, nil)
	assert.Nil(t, outcomes)
	require.Error(t, err)
	assert.ErrorIs(t, err, statgame.ErrInvalidArgumentRange)
	assert.Contains(t, err.Error(), `game "neg"`)
}
