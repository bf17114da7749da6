package forecast

import "errors"

var (
	// ErrInvalidParameter is returned when a distribution parameter cannot be
	// used to draw a sample, like a negative volatility.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidConfig is returned when a configuration cannot produce a
	// summary: no trials, or too few of them for the requested confidence level.
	ErrInvalidConfig = errors.New("invalid config")
)
