// Package statgame solves the Bayesian game and the Statistical game of
// J. Konczer, "Statistical Games" (arXiv:2402.15892).
//
// A sample of N bits is drawn from one of two populations, A or B, each with a
// known number (finite population) or density (infinite population) of ones.
// A decision-maker splits a wager between the two hypotheses after seeing how
// many ones the sample holds. The package returns the Nash equilibrium of the
// resulting zero-sum game: the mixing probability P* on A, the posterior
// splitting ratio p'[k] for every outcome count k, and the equilibrium payoff,
// either the growth rate G (risk neutral, gamma == 1) or the expected
// isoelastic utility U (any other relative risk aversion gamma).
//
//	res, err := statgame.SolveStatisticalGame(10, []float64{0.3, 0.5}, statgame.Infinite, statgame.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.P, res.Payoff, res.Posterior[4])
//
// Every call is a pure function of its arguments; results share no state and
// calls may run in parallel on different inputs.
package statgame
