// Package stats summarizes variate sequences.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stddev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
}

// Summarize computes a Summary of xs. The variance is the unbiased sample
// variance, reported as zero for a single value. An empty sample yields a
// zero Summary.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	mean, variance := stat.MeanVariance(xs, nil)
	if len(xs) == 1 {
		variance = 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	floats.Argsort(sorted, make([]int, len(sorted)))

	return Summary{
		Count:    len(xs),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Median:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
}
