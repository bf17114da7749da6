package forecast

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ReturnSampler draws yearly returns from a normal distribution.
//
// A ReturnSampler owns the state of its random source: it is not safe for
// concurrent use, each goroutine must have its own.
type ReturnSampler struct {
	normal distuv.Normal
}

// NewReturnSampler creates a ReturnSampler drawing from src.
//
// A nil src uses the auto-seeded global generator of math/rand/v2, and therefore
// is not reproducible.
func NewReturnSampler(src rand.Source) *ReturnSampler {
	return &ReturnSampler{normal: distuv.Normal{Src: src}}
}

// Sample returns one yearly return drawn from Normal(mu, sigma).
//
// Returns are not clamped: they can be below -100% or above +100%.
func (s *ReturnSampler) Sample(mu, sigma float64) (float64, error) {
	// written as a negation so that NaN is rejected too.
	if !(sigma >= 0) {
		return 0, fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, sigma)
	}
	s.normal.Mu, s.normal.Sigma = mu, sigma
	return s.normal.Rand(), nil
}
