// Package distribution builds the outcome probabilities of the two scenarios
// of a statistical game: how likely each count k of ones is in a sample of N
// bits drawn under scenario A and under scenario B.
//
// Two models are provided. Hypergeometric draws N bits without replacement
// from a finite population of M bits; Binomial draws N independent bits from
// an infinite population. Binomial coefficients are computed exactly with
// math/big so realistic population sizes neither overflow nor lose precision
// before the final division.
package distribution

import "math/big"

// Distribution holds the outcome probabilities of scenarios A and B over the
// union of their supports.
type Distribution struct {
	// A and B are the per-scenario supports.
	A Support
	B Support

	// Range is the union of A and B. PA and PB are indexed by k - Range.Min.
	Range Support
	PA    []float64
	PB    []float64
}

// ProbA returns the probability of k ones under scenario A.
func (d Distribution) ProbA(k int) float64 {
	if !d.Range.Contains(k) {
		return 0
	}
	return d.PA[k-d.Range.Min]
}

// ProbB returns the probability of k ones under scenario B.
func (d Distribution) ProbB(k int) float64 {
	if !d.Range.Contains(k) {
		return 0
	}
	return d.PB[k-d.Range.Min]
}

// Overlap returns the outcomes possible under both scenarios. An empty
// overlap means a single sample always reveals the scenario.
func (d Distribution) Overlap() Support {
	return d.A.Intersect(d.B)
}

// SideA returns A's probabilities restricted to its own support.
func (d Distribution) SideA() []float64 {
	return d.side(d.PA, d.A)
}

// SideB returns B's probabilities restricted to its own support.
func (d Distribution) SideB() []float64 {
	return d.side(d.PB, d.B)
}

func (d Distribution) side(ps []float64, s Support) []float64 {
	if s.Empty() {
		return nil
	}
	return ps[s.Min-d.Range.Min : s.Max-d.Range.Min+1]
}

// Swap returns the distribution with the roles of A and B exchanged.
func (d Distribution) Swap() Distribution {
	return Distribution{A: d.B, B: d.A, Range: d.Range, PA: d.PB, PB: d.PA}
}

// Hypergeometric returns the distribution of the number of ones among n bits
// drawn without replacement from m bits, of which ka (scenario A) or kb
// (scenario B) are ones. Callers guarantee 0 <= n, ka, kb <= m.
func Hypergeometric(n, ka, kb, m int) Distribution {
	a := HypergeometricSupport(n, ka, m)
	b := HypergeometricSupport(n, kb, m)
	d := Distribution{A: a, B: b, Range: a.Union(b)}

	total := Binom(int64(m), int64(n))
	d.PA = make([]float64, d.Range.Len())
	d.PB = make([]float64, d.Range.Len())
	for i, k := range d.Range.Counts() {
		d.PA[i] = hypergeometric(n, ka, m, k, total)
		d.PB[i] = hypergeometric(n, kb, m, k, total)
	}
	return d
}

// hypergeometric returns C(ones,k)·C(m-ones,n-k)/total, dividing only once the
// numerator is exact.
func hypergeometric(n, ones, m, k int, total *big.Int) float64 {
	num := Binom(int64(ones), int64(k))
	num.Mul(num, Binom(int64(m-ones), int64(n-k)))
	if num.Sign() == 0 || total.Sign() == 0 {
		return 0
	}
	p, _ := new(big.Rat).SetFrac(num, total).Float64()
	return p
}

// Binomial returns the distribution of the number of ones among n independent
// bits with density xa (scenario A) or xb (scenario B). Callers guarantee
// n >= 0 and densities in [0,1].
func Binomial(n int, xa, xb float64) Distribution {
	a := BinomialSupport(n, xa)
	b := BinomialSupport(n, xb)
	d := Distribution{A: a, B: b, Range: a.Union(b)}

	d.PA = make([]float64, d.Range.Len())
	d.PB = make([]float64, d.Range.Len())
	for i, k := range d.Range.Counts() {
		d.PA[i] = binomial(n, k, xa)
		d.PB[i] = binomial(n, k, xb)
	}
	return d
}

// binomialPrec is the mantissa width used for binomial products. big.Float
// exponents do not underflow, so x^k stays representable for any sample size.
const binomialPrec = 256

func binomial(n, k int, x float64) float64 {
	p := new(big.Float).SetPrec(binomialPrec).SetInt(Binom(int64(n), int64(k)))
	p.Mul(p, pow(x, k))
	p.Mul(p, pow(1-x, n-k))
	f, _ := p.Float64()
	return f
}

// pow returns x^e by repeated squaring at binomialPrec.
func pow(x float64, e int) *big.Float {
	result := new(big.Float).SetPrec(binomialPrec).SetFloat64(1)
	base := new(big.Float).SetPrec(binomialPrec).SetFloat64(x)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
	}
	return result
}

// Binom returns the binomial coefficient C(n, k), or zero when k lies outside
// [0, n].
func Binom(n, k int64) *big.Int {
	if k < 0 || n < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(n, k)
}
