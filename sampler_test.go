package forecast

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestReturnSampler_InvalidVolatility(t *testing.T) {
	s := NewReturnSampler(rand.NewPCG(1, 2))
	for _, sigma := range []float64{-0.1, -1e-12, math.NaN()} {
		if _, err := s.Sample(0.07, sigma); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Sample(0.07, %v) error = %v, want ErrInvalidParameter", sigma, err)
		}
	}
}

func TestReturnSampler_ZeroVolatility(t *testing.T) {
	s := NewReturnSampler(rand.NewPCG(1, 2))
	for range 100 {
		got, err := s.Sample(0.07, 0)
		if err != nil {
			t.Fatalf("Sample() unexpected error: %v", err)
		}
		if got != 0.07 {
			t.Fatalf("Sample(0.07, 0) = %v, want 0.07", got)
		}
	}
}

func TestReturnSampler_Seeded(t *testing.T) {
	a := NewReturnSampler(rand.NewPCG(42, 7))
	b := NewReturnSampler(rand.NewPCG(42, 7))
	c := NewReturnSampler(rand.NewPCG(43, 7))
	same := true
	for i := range 50 {
		x, _ := a.Sample(0.05, 0.2)
		y, _ := b.Sample(0.05, 0.2)
		z, _ := c.Sample(0.05, 0.2)
		if x != y {
			t.Fatalf("draw %d: same seed gave %v and %v", i, x, y)
		}
		if x != z {
			same = false
		}
	}
	if same {
		t.Error("different seeds gave the same draws")
	}
}

func TestReturnSampler_Moments(t *testing.T) {
	const (
		mu    = 0.07
		sigma = 0.15
		n     = 200_000
	)
	s := NewReturnSampler(rand.NewPCG(3, 4))
	var sum, sum2 float64
	for range n {
		r, err := s.Sample(mu, sigma)
		if err != nil {
			t.Fatal(err)
		}
		sum += r
		sum2 += r * r
	}
	mean := sum / n
	sd := math.Sqrt(sum2/n - mean*mean)
	// standard error of the mean is sigma/sqrt(n) ~ 0.0003.
	if math.Abs(mean-mu) > 0.003 {
		t.Errorf("mean = %v, want ~%v", mean, mu)
	}
	if math.Abs(sd-sigma) > 0.003 {
		t.Errorf("standard deviation = %v, want ~%v", sd, sigma)
	}
}

func TestReturnSampler_Unseeded(t *testing.T) {
	s := NewReturnSampler(nil)
	if _, err := s.Sample(0, 1); err != nil {
		t.Errorf("Sample() with the global generator: %v", err)
	}
}
