package statgame

import (
	"sort"

	"github.com/lox/statgames/internal/equilibrium"
)

// PayoffKind names the payoff carried by a Result.
type PayoffKind = equilibrium.Kind

const (
	// Growth marks the growth rate G of the risk-neutral game.
	Growth PayoffKind = equilibrium.Growth
	// Utility marks the expected isoelastic utility U.
	Utility PayoffKind = equilibrium.Utility
)

// Result holds the equilibrium of one game. Scenario A is always the one with
// the smaller count or density; Swapped reports that the caller listed them
// the other way round.
type Result struct {
	// P is the equilibrium mixing probability on scenario A, the midpoint of
	// Interval. It is zero when SureWin is set.
	P float64

	// SureWin is set when the scenarios share no feasible outcome, so one
	// sample settles the game and no mixing is needed.
	SureWin bool

	// Interval is the final bisection bracket, [0,1] for a sure win.
	Interval [2]float64

	Payoff float64
	Kind   PayoffKind

	// Posterior maps each outcome count k to the splitting ratio p'[k], the
	// weight placed on scenario A after observing k ones.
	Posterior map[int]float64

	Iterations int

	// Converged is set when the bracket half-width met MaxError. A search
	// stopped by MaxIter still reports its best bracket.
	Converged bool

	Swapped bool
	Gamma   float64
}

// G returns the growth rate when the result comes from the risk-neutral game.
func (r *Result) G() (float64, bool) {
	return r.Payoff, r.Kind == Growth
}

// U returns the expected utility when the result comes from the
// risk-adjusted game.
func (r *Result) U() (float64, bool) {
	return r.Payoff, r.Kind == Utility
}

// Counts returns the outcome counts of Posterior in increasing order.
func (r *Result) Counts() []int {
	ks := make([]int, 0, len(r.Posterior))
	for k := range r.Posterior {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	return ks
}

func newResult(out equilibrium.Outcome, g game, gamma float64) *Result {
	return &Result{
		P:          out.P,
		SureWin:    out.SureWin,
		Interval:   [2]float64{out.Bracket.Lower, out.Bracket.Upper},
		Payoff:     out.Payoff,
		Kind:       out.Kind,
		Posterior:  out.Posterior,
		Iterations: out.Bracket.Iterations,
		Converged:  out.Bracket.Converged,
		Swapped:    g.swapped,
		Gamma:      gamma,
	}
}
