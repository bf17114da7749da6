package forecast

import (
	"fmt"
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultConfidenceLevel is the level of the confidence interval when none is requested.
const DefaultConfidenceLevel = 0.90

// Interval is a pair of sample values, Lower <= Upper.
type Interval struct {
	Lower float64
	Upper float64
}

// Stats are descriptive statistics of a sample.
type Stats struct {
	Mean   float64
	StdDev float64 // population standard deviation
	Min    float64
	Max    float64
}

// Bucket counts the trial outcomes in [From, To).
type Bucket struct {
	From  float64
	To    float64
	Count int
}

// Summary is the result of an experiment: the statistics of the distribution of
// final portfolio values.
type Summary struct {
	Trials int     // number of trial outcomes
	Goal   float64 // target value GoalProbability refers to

	// Median is the sample element at index n/2 of the sorted sample. For an
	// even n it is the upper of the two middle elements, never an average.
	Median float64

	// GoalProbability is the fraction of outcomes greater than or equal to Goal.
	GoalProbability float64

	ConfidenceLevel    float64
	ConfidenceInterval Interval

	Stats Stats

	// Seed is the seed the trials were drawn with. Zero when the summary was
	// computed from an external sample.
	Seed uint64

	// Distribution is a histogram of the outcomes, empty unless requested.
	Distribution []Bucket
}

// Summarize reduces a sample of trial outcomes to a Summary.
//
// sample is sorted in place. The confidence interval bounds are the sorted
// sample elements at floor(n(1-level)/2) and floor(n(1+level)/2).
//
// It returns ErrInvalidConfig for an empty sample, or when the interval indices
// fall outside the sample.
func Summarize(sample []float64, goal, level float64) (*Summary, error) {
	n := len(sample)
	if n == 0 {
		return nil, fmt.Errorf("%w: no trial outcome to summarize", ErrInvalidConfig)
	}
	lower, upper, err := intervalIndices(n, level)
	if err != nil {
		return nil, err
	}

	slices.Sort(sample)

	reached := 0
	for _, v := range sample {
		if v >= goal {
			reached++
		}
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return nil, fmt.Errorf("computing mean: %w", err)
	}
	sd, err := stats.StandardDeviation(sample)
	if err != nil {
		return nil, fmt.Errorf("computing standard deviation: %w", err)
	}

	return &Summary{
		Trials:          n,
		Goal:            goal,
		Median:          sample[n/2],
		GoalProbability: float64(reached) / float64(n),
		ConfidenceLevel: level,
		ConfidenceInterval: Interval{
			Lower: sample[lower],
			Upper: sample[upper],
		},
		Stats: Stats{
			Mean:   mean,
			StdDev: sd,
			Min:    sample[0],
			Max:    sample[n-1],
		},
	}, nil
}

// intervalIndices returns the indices of the confidence interval bounds in a
// sorted sample of n elements.
func intervalIndices(n int, level float64) (lower, upper int, err error) {
	if !(level > 0 && level <= 1) {
		return 0, 0, fmt.Errorf("%w: confidence level must be in (0, 1], got %v", ErrInvalidConfig, level)
	}
	// conversions truncate, which is floor for non negative values.
	lower = int(float64(n) * (1 - level) / 2)
	upper = int(float64(n) * (1 + level) / 2)
	if lower < 0 || upper >= n {
		return 0, 0, fmt.Errorf("%w: %d trials are too few for a %v confidence interval (index %d out of range)", ErrInvalidConfig, n, level, upper)
	}
	return lower, upper, nil
}

// Histogram splits a sorted sample into bins buckets of equal width spanning
// its range. A sample with a single distinct value gets one bucket.
func Histogram(sorted []float64, bins int) []Bucket {
	if len(sorted) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo == hi {
		bins = 1
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// Span rounds its last element, and the last divider is excluded from its
	// bucket: the maximum must be strictly below it.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	if !slices.IsSorted(dividers) || slices.ContainsFunc(dividers, math.IsNaN) || dividers[bins-1] >= dividers[bins] {
		// the range is too narrow or too wide to be split in floats.
		dividers = []float64{lo, dividers[bins]}
	}
	counts := stat.Histogram(nil, dividers, sorted, nil)

	buckets := make([]Bucket, len(counts))
	for i, c := range counts {
		buckets[i] = Bucket{From: dividers[i], To: dividers[i+1], Count: int(c)}
	}
	return buckets
}
