package solver

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxError is the default bound on the half-width of the final
// bracket, 2^-10.
const DefaultMaxError = 1.0 / 1024

// Config bounds the bisection search.
type Config struct {
	// MaxIter caps the number of residual evaluations. Zero means unbounded,
	// leaving termination to MaxError alone.
	MaxIter int

	// MaxError is the absolute tolerance on the half-width of the bracket.
	MaxError float64
}

// Validate ensures the search parameters are usable.
func (c Config) Validate() error {
	if c.MaxIter < 0 {
		return errors.New("max iterations cannot be negative")
	}
	if math.IsNaN(c.MaxError) || c.MaxError <= 0 {
		return fmt.Errorf("max error must be > 0, got %v", c.MaxError)
	}
	return nil
}

// Unbounded reports whether only the tolerance terminates the search.
func (c Config) Unbounded() bool {
	return c.MaxIter == 0
}

// DefaultConfig returns an unbounded search with a 2^-10 tolerance.
func DefaultConfig() Config {
	return Config{
		MaxIter:  0,
		MaxError: DefaultMaxError,
	}
}
