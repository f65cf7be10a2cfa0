package equilibrium

import (
	"math"

	"github.com/lox/statgames/internal/distribution"
	"github.com/lox/statgames/internal/statistics"
)

// EntropyBalance is the risk-neutral equilibrium condition. With
// q_k = P·pA[k] + (1-P)·pB[k] the growth rate is
//
//	G(P) = P ln P + (1-P) ln(1-P) - P·HA - (1-P)·HB - Σ q_k ln q_k
//
// and the residual is dG/dP. Both sums over k run across the whole union of
// the supports.
type EntropyBalance struct {
	dist distribution.Distribution
	ha   float64
	hb   float64
}

// NewEntropyBalance precomputes the scenario entropies of d.
func NewEntropyBalance(d distribution.Distribution) *EntropyBalance {
	return &EntropyBalance{
		dist: d,
		ha:   statistics.Entropy(d.SideA()),
		hb:   statistics.Entropy(d.SideB()),
	}
}

// Entropies returns HA and HB in nats.
func (e *EntropyBalance) Entropies() (float64, float64) {
	return e.ha, e.hb
}

// Residual returns ln(P/(1-P)) - HA + HB - Σ (pA[k]-pB[k])·ln q_k.
func (e *EntropyBalance) Residual(p float64) float64 {
	sum := 0.0
	for i, pa := range e.dist.PA {
		pb := e.dist.PB[i]
		q := p*pa + (1-p)*pb
		if q == 0 {
			continue
		}
		sum += (pa - pb) * math.Log(q)
	}
	return statistics.LogOdds(p) - e.ha + e.hb - sum
}

// Payoff returns the growth rate G(P).
func (e *EntropyBalance) Payoff(p float64) float64 {
	sum := 0.0
	for i, pa := range e.dist.PA {
		sum += statistics.XLogX(p*pa + (1-p)*e.dist.PB[i])
	}
	return statistics.XLogX(p) + statistics.XLogX(1-p) - (p*e.ha + (1-p)*e.hb) - sum
}

// Posterior returns p'[k] = P·pA[k] / q_k.
func (e *EntropyBalance) Posterior(p float64) map[int]float64 {
	out := make(map[int]float64, e.dist.Range.Len())
	for i, pa := range e.dist.PA {
		num := p * pa
		den := num + (1-p)*e.dist.PB[i]
		out[e.dist.Range.Min+i] = ratio(num, den)
	}
	return out
}

// Kind returns Growth.
func (e *EntropyBalance) Kind() Kind {
	return Growth
}

// ratio returns num/den, or zero when both vanish.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
