package statgame

import (
	"math"
	"strconv"
)

// Population is the number of bits the sample is drawn from: a finite size, or
// Infinite for independent draws.
type Population struct {
	size     int
	infinite bool
}

// Infinite selects the binomial model, where scenario values are densities of
// ones in [0,1].
var Infinite = Population{infinite: true}

// Finite returns a population of m bits. Scenario values are then counts of
// ones in [0, m]. A negative m never becomes Infinite; it is rejected when
// solving.
func Finite(m int) Population {
	return Population{size: m}
}

// IsInfinite reports whether p is Infinite.
func (p Population) IsInfinite() bool {
	return p.infinite
}

// Size returns the population size, or +Inf for Infinite.
func (p Population) Size() float64 {
	if p.infinite {
		return math.Inf(1)
	}
	return float64(p.size)
}

func (p Population) String() string {
	if p.infinite {
		return "inf"
	}
	return strconv.Itoa(p.size)
}
