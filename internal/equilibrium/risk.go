package equilibrium

import (
	"math"

	"github.com/lox/statgames/internal/distribution"
	"github.com/lox/statgames/internal/statistics"
)

// RiskAdjusted is the equilibrium condition under constant relative risk
// aversion gamma != 1. In log-odds θ = ln(P/(1-P)) it reads θ = Φ(θ), with
//
//	a_k(θ) = e^{θ/2γ}·pA[k]^{1/γ} + e^{-θ/2γ}·pB[k]^{1/γ}
//	Φ(θ)   = -γ/(1-γ) · ln( Σ_A pA^{1/γ}/a_k^{1-γ} / Σ_B pB^{1/γ}/a_k^{1-γ} )
//
// where Σ_A and Σ_B range over each scenario's own support.
type RiskAdjusted struct {
	dist  distribution.Distribution
	gamma float64

	// pA^{1/γ} and pB^{1/γ}, indexed like dist.PA.
	rootA []float64
	rootB []float64
}

// NewRiskAdjusted precomputes the 1/gamma powers of d's probabilities.
func NewRiskAdjusted(d distribution.Distribution, gamma float64) *RiskAdjusted {
	r := &RiskAdjusted{
		dist:  d,
		gamma: gamma,
		rootA: make([]float64, len(d.PA)),
		rootB: make([]float64, len(d.PB)),
	}
	for i := range d.PA {
		r.rootA[i] = math.Pow(d.PA[i], 1/gamma)
		r.rootB[i] = math.Pow(d.PB[i], 1/gamma)
	}
	return r
}

// Gamma returns the relative risk aversion.
func (r *RiskAdjusted) Gamma() float64 {
	return r.gamma
}

func (r *RiskAdjusted) a(i int, theta float64) float64 {
	return math.Exp(theta/r.gamma/2)*r.rootA[i] + math.Exp(-theta/r.gamma/2)*r.rootB[i]
}

// Phi evaluates Φ(θ).
func (r *RiskAdjusted) Phi(theta float64) float64 {
	sumA := r.weightedSum(r.rootA, r.dist.A, theta)
	sumB := r.weightedSum(r.rootB, r.dist.B, theta)
	return -r.gamma / (1 - r.gamma) * math.Log(sumA/sumB)
}

func (r *RiskAdjusted) weightedSum(roots []float64, s distribution.Support, theta float64) float64 {
	sum := 0.0
	for k := s.Min; k <= s.Max; k++ {
		i := k - r.dist.Range.Min
		sum += roots[i] / math.Pow(r.a(i, theta), 1-r.gamma)
	}
	return sum
}

// Residual returns θ(P) - Φ(θ(P)).
func (r *RiskAdjusted) Residual(p float64) float64 {
	theta := statistics.LogOdds(p)
	return theta - r.Phi(theta)
}

// Posterior returns the splitting ratio
// (P·pA)^{1/γ} / ((P·pA)^{1/γ} + ((1-P)·pB)^{1/γ}).
func (r *RiskAdjusted) Posterior(p float64) map[int]float64 {
	out := make(map[int]float64, r.dist.Range.Len())
	for i, pa := range r.dist.PA {
		wa := math.Pow(p*pa, 1/r.gamma)
		wb := math.Pow((1-p)*r.dist.PB[i], 1/r.gamma)
		out[r.dist.Range.Min+i] = ratio(wa, wa+wb)
	}
	return out
}

// Payoff returns the expected isoelastic utility
// U = P·Σ_A pA·u(p'[k]) + (1-P)·Σ_B pB·u(1-p'[k]).
func (r *RiskAdjusted) Payoff(p float64) float64 {
	post := r.Posterior(p)
	sumA := 0.0
	for k := r.dist.A.Min; k <= r.dist.A.Max; k++ {
		sumA += r.dist.ProbA(k) * statistics.Isoelastic(post[k], r.gamma)
	}
	sumB := 0.0
	for k := r.dist.B.Min; k <= r.dist.B.Max; k++ {
		sumB += r.dist.ProbB(k) * statistics.Isoelastic(1-post[k], r.gamma)
	}
	return p*sumA + (1-p)*sumB
}

// Kind returns Utility.
func (r *RiskAdjusted) Kind() Kind {
	return Utility
}
