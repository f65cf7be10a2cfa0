package statgame

import "errors"

var (
	// ErrInvalidArgumentType reports an argument of the wrong shape: a
	// scenario pair that is not two values long, or a non-integral count
	// for a finite population.
	ErrInvalidArgumentType = errors.New("invalid argument type")

	// ErrInvalidArgumentRange reports an argument outside its domain: a
	// negative size or count, a count above the population size, a density
	// outside [0,1], or unusable solver options.
	ErrInvalidArgumentRange = errors.New("invalid argument range")
)
