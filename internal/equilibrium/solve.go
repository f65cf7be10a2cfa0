package equilibrium

import (
	"github.com/charmbracelet/log"
	"github.com/lox/statgames/internal/distribution"
	"github.com/lox/statgames/internal/logging"
	"github.com/lox/statgames/internal/solver"
)

// Outcome collects the equilibrium quantities of one game.
type Outcome struct {
	// P is the equilibrium mixing probability, the midpoint of Bracket. It is
	// zero and meaningless when SureWin is set.
	P       float64
	SureWin bool
	Bracket solver.Bracket
	Payoff  float64
	Kind    Kind

	// Posterior maps each outcome count k to the splitting ratio p'[k].
	Posterior map[int]float64
}

// SureWin reports whether the scenario supports of d are disjoint. When they
// are, a single sample identifies the scenario and the returned posterior is 1
// on A's support and 0 on B's.
func SureWin(d distribution.Distribution) (map[int]float64, bool) {
	if !d.Overlap().Empty() {
		return nil, false
	}
	post := make(map[int]float64, d.A.Len()+d.B.Len())
	for k := d.A.Min; k <= d.A.Max; k++ {
		post[k] = 1
	}
	for k := d.B.Min; k <= d.B.Max; k++ {
		post[k] = 0
	}
	return post, true
}

// Solve finds the equilibrium of the game over d at risk aversion gamma. A nil
// logger discards output.
func Solve(d distribution.Distribution, gamma float64, s *solver.Solver, logger *log.Logger) Outcome {
	logger = logging.OrDiscard(logger)
	eq := New(d, gamma)

	if post, ok := SureWin(d); ok {
		logger.Debug("disjoint supports, sure win", "a", d.A, "b", d.B)
		return Outcome{
			SureWin:   true,
			Bracket:   solver.Bracket{Lower: 0, Upper: 1},
			Kind:      eq.Kind(),
			Posterior: post,
		}
	}

	b := s.Solve(eq)
	p := b.Mid()
	out := Outcome{
		P:         p,
		Bracket:   b,
		Payoff:    eq.Payoff(p),
		Kind:      eq.Kind(),
		Posterior: eq.Posterior(p),
	}
	logger.Debug("equilibrium", "kind", out.Kind, "p", p, "payoff", out.Payoff, "iter", b.Iterations)
	return out
}
