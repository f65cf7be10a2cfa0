// Package config decodes batches of statistical games from HCL, HCL-flavoured
// JSON, or YAML source and solves them.
//
// A configuration lists named games and optional solver settings:
//
//	log_level = "debug"
//
//	solver {
//	  max_error = 0.0009765625
//	}
//
//	game "urn" {
//	  n          = 1
//	  scenarios  = [0, 1]
//	  population = 2
//	  gamma      = 0.5
//	}
//
//	game "coin" {
//	  n         = 10
//	  scenarios = [0.3, 0.5]
//	}
//
// A game without population is drawn from an infinite population and its
// scenarios are densities. Decoding works on in-memory source only.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/statgames/internal/logging"
	"github.com/lox/statgames/statgame"
)

// Config is a batch of games sharing solver and logging settings.
type Config struct {
	LogLevel  string        `hcl:"log_level,optional" yaml:"log_level"`
	LogFormat string        `hcl:"log_format,optional" yaml:"log_format"`
	Solver    *SolverConfig `hcl:"solver,block" yaml:"solver"`
	Games     []GameConfig  `hcl:"game,block" yaml:"games"`
}

// SolverConfig mirrors the root-finding fields of statgame.Options.
type SolverConfig struct {
	Method   string  `hcl:"method,optional" yaml:"method"`
	MaxIter  int     `hcl:"max_iter,optional" yaml:"max_iter"`
	MaxError float64 `hcl:"max_error,optional" yaml:"max_error"`
}

// GameConfig describes one game.
type GameConfig struct {
	Name      string    `hcl:"name,label" yaml:"name"`
	N         int       `hcl:"n" yaml:"n"`
	Scenarios []float64 `hcl:"scenarios" yaml:"scenarios"`

	// Population is the finite population size; nil means infinite.
	Population *int `hcl:"population,optional" yaml:"population"`

	// Gamma defaults to statgame.DefaultGamma, or 1 for Bayesian games.
	Gamma *float64 `hcl:"gamma,optional" yaml:"gamma"`

	// Bayesian marks a risk-neutral game over a finite population.
	Bayesian bool `hcl:"bayesian,optional" yaml:"bayesian"`
}

// PopulationValue returns the game's population.
func (g GameConfig) PopulationValue() statgame.Population {
	if g.Population == nil {
		return statgame.Infinite
	}
	return statgame.Finite(*g.Population)
}

// Parse decodes src, choosing the syntax from the extension of filename:
// .hcl, .json or .yaml/.yml. Defaults are applied and the result validated.
func Parse(filename string, src []byte) (*Config, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl", ".json":
		parser := hclparse.NewParser()
		var file *hcl.File
		var diags hcl.Diagnostics
		if ext == ".json" {
			file, diags = parser.ParseJSON(src, filename)
		} else {
			file, diags = parser.ParseHCL(src, filename)
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = logging.FormatText
	}

	defaults := statgame.DefaultOptions()
	if c.Solver == nil {
		c.Solver = &SolverConfig{}
	}
	if c.Solver.Method == "" {
		c.Solver.Method = defaults.Method
	}
	if c.Solver.MaxError == 0 {
		c.Solver.MaxError = defaults.MaxError
	}

	for i := range c.Games {
		if c.Games[i].Gamma != nil {
			continue
		}
		gamma := defaults.Gamma
		if c.Games[i].Bayesian {
			gamma = 1
		}
		c.Games[i].Gamma = &gamma
	}
}

// Validate checks the batch structure. Game parameters themselves are
// validated when solved.
func (c *Config) Validate() error {
	if _, err := logging.New(io.Discard, logging.Options{Level: c.LogLevel, Format: c.LogFormat}); err != nil {
		return err
	}
	if len(c.Games) == 0 {
		return errors.New("at least one game is required")
	}

	seen := make(map[string]bool, len(c.Games))
	for i, g := range c.Games {
		if g.Name == "" {
			return fmt.Errorf("game[%d] must have a name", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate game name %q", g.Name)
		}
		seen[g.Name] = true

		if g.Population != nil && *g.Population < 0 {
			return fmt.Errorf("game %q: population must be non-negative, got %d", g.Name, *g.Population)
		}
		if g.Bayesian {
			if g.Population == nil {
				return fmt.Errorf("game %q: bayesian games need a finite population", g.Name)
			}
			if g.Gamma != nil && *g.Gamma != 1 {
				return fmt.Errorf("game %q: bayesian games are risk neutral, got gamma %v", g.Name, *g.Gamma)
			}
		}
		if err := c.Options(g).Validate(); err != nil {
			return fmt.Errorf("game %q: %w", g.Name, err)
		}
	}
	return nil
}

// Options returns the solver options for g.
func (c *Config) Options(g GameConfig) statgame.Options {
	opts := statgame.DefaultOptions()
	if c.Solver != nil {
		opts.Method = c.Solver.Method
		opts.MaxIter = c.Solver.MaxIter
		opts.MaxError = c.Solver.MaxError
	}
	if g.Gamma != nil {
		opts.Gamma = *g.Gamma
	}
	return opts
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger(w io.Writer) (*log.Logger, error) {
	return logging.New(w, logging.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Prefix: "statgames",
	})
}
