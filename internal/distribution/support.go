package distribution

import "fmt"

// Support is an inclusive range [Min, Max] of outcome counts k. A support with
// Min > Max is empty.
type Support struct {
	Min int
	Max int
}

// Empty reports whether the support contains no outcome.
func (s Support) Empty() bool {
	return s.Min > s.Max
}

// Len returns the number of outcomes in the support.
func (s Support) Len() int {
	if s.Empty() {
		return 0
	}
	return s.Max - s.Min + 1
}

// Contains reports whether k lies in the support.
func (s Support) Contains(k int) bool {
	return k >= s.Min && k <= s.Max
}

// Union returns the smallest support covering both s and o.
func (s Support) Union(o Support) Support {
	return Support{Min: min(s.Min, o.Min), Max: max(s.Max, o.Max)}
}

// Intersect returns the outcomes shared by s and o, which may be empty.
func (s Support) Intersect(o Support) Support {
	return Support{Min: max(s.Min, o.Min), Max: min(s.Max, o.Max)}
}

// Counts lists the outcomes of the support in increasing order.
func (s Support) Counts() []int {
	out := make([]int, 0, s.Len())
	for k := s.Min; k <= s.Max; k++ {
		out = append(out, k)
	}
	return out
}

func (s Support) String() string {
	return fmt.Sprintf("[%d, %d]", s.Min, s.Max)
}

// HypergeometricSupport returns the feasible number of ones when n bits are
// drawn without replacement from m bits of which k are ones.
func HypergeometricSupport(n, k, m int) Support {
	return Support{Min: max(0, n-(m-k)), Max: min(n, k)}
}

// BinomialSupport returns the outcomes with non-zero probability for n
// independent draws of density x.
func BinomialSupport(n int, x float64) Support {
	switch x {
	case 0:
		return Support{Min: 0, Max: 0}
	case 1:
		return Support{Min: n, Max: n}
	default:
		return Support{Min: 0, Max: n}
	}
}
