// Package statistics holds the scalar information-theory and utility helpers
// shared by the equilibrium equations.
package statistics

import (
	"fmt"
	"math"
)

// NormalizationTolerance is the slack allowed when checking that a probability
// vector sums to one.
const NormalizationTolerance = 1e-9

// Sum returns the plain left-to-right sum of values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Entropy returns the Shannon entropy -Σ p ln p in nats. Zero entries
// contribute nothing (0·ln 0 = 0).
func Entropy(ps []float64) float64 {
	h := 0.0
	for _, p := range ps {
		h -= XLogX(p)
	}
	return h
}

// XLogX returns x·ln(x), defined as 0 at x = 0.
func XLogX(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(x)
}

// LogOdds maps a probability in (0,1) to ln(p/(1-p)).
func LogOdds(p float64) float64 {
	return math.Log(p / (1 - p))
}

// Isoelastic returns the constant relative risk aversion utility
// (c^(1-γ) - 1) / (1-γ). It must not be called with gamma == 1.
func Isoelastic(c, gamma float64) float64 {
	return (math.Pow(c, 1-gamma) - 1) / (1 - gamma)
}

// Validate checks that ps is a probability vector: every entry lies in [0,1]
// and the entries sum to one within NormalizationTolerance.
func Validate(ps []float64) error {
	if len(ps) == 0 {
		return fmt.Errorf("empty probability vector")
	}
	for i, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("probability[%d] out of range: %v", i, p)
		}
	}
	if total := Sum(ps); math.Abs(total-1) > NormalizationTolerance {
		return fmt.Errorf("probabilities sum to %.12f, want 1", total)
	}
	return nil
}
