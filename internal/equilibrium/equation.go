// Package equilibrium turns a pair of outcome distributions into the
// equilibrium of the statistical game played over them.
//
// An Equation is a stateless strategy value: its Residual vanishes at the
// equilibrium mixing probability P*, and Payoff and Posterior assemble the
// equilibrium quantities once P* is known. EntropyBalance covers the
// risk-neutral game (gamma == 1, payoff G) and RiskAdjusted every other
// relative risk aversion (payoff U).
package equilibrium

import (
	"github.com/lox/statgames/internal/distribution"
	"github.com/lox/statgames/internal/solver"
)

// Kind names the payoff reported by an equation.
type Kind uint8

const (
	// Growth is the entropy-based growth rate G of the risk-neutral game.
	Growth Kind = iota
	// Utility is the expected isoelastic utility U of the risk-adjusted game.
	Utility
)

func (k Kind) String() string {
	switch k {
	case Growth:
		return "G"
	case Utility:
		return "U"
	default:
		return "unknown"
	}
}

// Equation is one variant of the equilibrium condition.
type Equation interface {
	solver.Residual

	// Payoff returns the equilibrium payoff at mixing probability p.
	Payoff(p float64) float64

	// Posterior returns the splitting ratio p'[k] for every outcome k in the
	// union of the scenario supports.
	Posterior(p float64) map[int]float64

	// Kind reports which payoff Payoff computes.
	Kind() Kind
}

// New selects the equation variant for gamma. Only gamma exactly equal to one
// selects the entropy balance.
func New(d distribution.Distribution, gamma float64) Equation {
	if gamma == 1 {
		return NewEntropyBalance(d)
	}
	return NewRiskAdjusted(d, gamma)
}
