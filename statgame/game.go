package statgame

import (
	"fmt"
	"math"

	"github.com/lox/statgames/internal/distribution"
)

// game is a validated parameter set with scenarios ordered so that a <= b.
type game struct {
	n       int
	m       Population
	a, b    float64
	swapped bool
}

func newGame(n int, values []float64, m Population) (game, error) {
	if len(values) != 2 {
		return game{}, fmt.Errorf("%w: scenario pair must hold two values, got %d", ErrInvalidArgumentType, len(values))
	}
	if n < 0 {
		return game{}, fmt.Errorf("%w: sample size must be non-negative, got %d", ErrInvalidArgumentRange, n)
	}
	if !m.IsInfinite() && m.size < 0 {
		return game{}, fmt.Errorf("%w: population size must be non-negative, got %d", ErrInvalidArgumentRange, m.size)
	}
	if !m.IsInfinite() && n > m.size {
		return game{}, fmt.Errorf("%w: sample size %d exceeds population size %d", ErrInvalidArgumentRange, n, m.size)
	}

	for i, v := range values {
		if math.IsNaN(v) {
			return game{}, fmt.Errorf("%w: scenario value %d is NaN", ErrInvalidArgumentType, i)
		}
		if v < 0 {
			return game{}, fmt.Errorf("%w: scenario value %d must be non-negative, got %v", ErrInvalidArgumentRange, i, v)
		}
		if m.IsInfinite() {
			if v > 1 {
				return game{}, fmt.Errorf("%w: density %d must lie in [0,1] for an infinite population, got %v", ErrInvalidArgumentRange, i, v)
			}
			continue
		}
		if v != math.Trunc(v) {
			return game{}, fmt.Errorf("%w: count %d must be an integer for a finite population, got %v", ErrInvalidArgumentType, i, v)
		}
		if v > float64(m.size) {
			return game{}, fmt.Errorf("%w: count %d is %v, above population size %d", ErrInvalidArgumentRange, i, v, m.size)
		}
	}

	g := game{n: n, m: m, a: values[0], b: values[1]}
	if g.a > g.b {
		g.a, g.b = g.b, g.a
		g.swapped = true
	}
	return g, nil
}

func (g game) distribution() distribution.Distribution {
	if g.m.IsInfinite() {
		return distribution.Binomial(g.n, g.a, g.b)
	}
	return distribution.Hypergeometric(g.n, int(g.a), int(g.b), g.m.size)
}

// Probabilities returns the outcome distributions of the two scenarios as
// maps from the count of ones k to its probability, in the order the values
// were given. Each map covers its own scenario's feasible outcomes.
func Probabilities(n int, values []float64, m Population) (map[int]float64, map[int]float64, error) {
	g, err := newGame(n, values, m)
	if err != nil {
		return nil, nil, err
	}

	d := g.distribution()
	if g.swapped {
		d = d.Swap()
	}
	pa := make(map[int]float64, d.A.Len())
	for _, k := range d.A.Counts() {
		pa[k] = d.ProbA(k)
	}
	pb := make(map[int]float64, d.B.Len())
	for _, k := range d.B.Counts() {
		pb[k] = d.ProbB(k)
	}
	return pa, pb, nil
}
