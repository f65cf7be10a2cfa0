package statgame_test

import (
	"fmt"

	"github.com/lox/statgames/statgame"
)

func ExampleSolveStatisticalGame() {
	res, err := statgame.SolveStatisticalGame(1, []float64{0, 1}, statgame.Finite(2), statgame.DefaultOptions())
	if err != nil {
		panic(err)
	}

	fmt.Println("P:", res.P)
	fmt.Println("interval:", res.Interval)
	fmt.Printf("%s: %.6f\n", res.Kind, res.Payoff)
	for _, k := range res.Counts() {
		fmt.Printf("p'[%d] = %.6f\n", k, res.Posterior[k])
	}
	// Output:
	// P: 0.3994140625
	// interval: [0.3984375 0.400390625]
	// U: -0.399999
	// p'[0] = 0.638874
	// p'[1] = 0.000000
}

func ExampleSolveBayesianGame() {
	res, err := statgame.SolveBayesianGame(1, 0, 1, 1)
	if err != nil {
		panic(err)
	}

	fmt.Println("sure win:", res.SureWin)
	fmt.Println("posterior:", res.Posterior)
	// Output:
	// sure win: true
	// posterior: map[0:1 1:0]
}
