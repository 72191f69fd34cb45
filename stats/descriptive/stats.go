// Package descriptive computes descriptive statistics (mean, median,
// mode, population standard deviation, harmonic mean, extrema) over a
// buffered data set. The standalone functions operate on raw []float64
// slices; Calculate fills a Summary from a finalized sample.Buffer in
// one call.
//
// All functions assume at least one value. An empty slice yields the
// zero value rather than NaN; Calculate reports it as ErrEmpty.
package descriptive

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-stats/internal/babylonian"
	"github.com/cwbudde/algo-stats/sample"
	"github.com/cwbudde/algo-vecmath"
)

// Summary holds descriptive statistics over one data set.
type Summary struct {
	Count        int
	Mean         float64
	Median       float64
	Mode         float64
	StdDev       float64 // population (divides by Count)
	Variance     float64 // population
	HarmonicMean float64
	Min          float64
	Max          float64
	Range        float64 // Max - Min
	UnusedCap    int     // allocated but unoccupied buffer slots
}

var (
	// ErrEmpty reports a buffer with no values; every statistic would
	// divide by zero.
	ErrEmpty = errors.New("empty buffer")

	// ErrUnsorted reports a buffer that was not finalized with Sort;
	// median and mode require ascending order.
	ErrUnsorted = errors.New("buffer not sorted")
)

// Calculate computes all statistics over a finalized buffer.
func Calculate(b *sample.Buffer) (Summary, error) {
	if b.Len() == 0 {
		return Summary{}, ErrEmpty
	}
	if !b.Sorted() {
		return Summary{}, ErrUnsorted
	}

	values := b.Values()
	mean := Mean(values)
	variance := Variance(values, mean)

	return Summary{
		Count:        b.Len(),
		Mean:         mean,
		Median:       Median(values),
		Mode:         Mode(values),
		StdDev:       babylonian.Sqrt(variance),
		Variance:     variance,
		HarmonicMean: HarmonicMean(values),
		Min:          values[0],
		Max:          values[len(values)-1],
		Range:        values[len(values)-1] - values[0],
		UnusedCap:    b.Unused(),
	}, nil
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	// Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range values {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(values))
}

// Median returns the middle value of an ascending-sorted slice; for an
// even count it averages the two central elements.
func Median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

// Mode returns the most frequent value of an ascending-sorted slice,
// found as the longest run of equal elements in a single left-to-right
// scan. Runs are compared with a strict greater-than update, so the
// first run to reach the maximum length wins ties, and the final run
// is never compared: a strictly longer trailing run does not win.
func Mode(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	mode := sorted[0]
	maxRun, run := 1, 1

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
			continue
		}
		if run > maxRun {
			maxRun = run
			mode = sorted[i-1]
		}
		run = 1
	}

	return mode
}

// Variance returns the population variance of values around mean
// (divides by len, not len-1).
func Variance(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	dev := make([]float64, len(values))
	for i, x := range values {
		dev[i] = x - mean
	}
	vecmath.MulBlockInPlace(dev, dev)

	var sum float64
	for _, d := range dev {
		sum += d
	}

	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values around
// mean, using the Babylonian square-root approximation. Results agree
// with math.Sqrt of the variance only up to roughly 1e-6.
func StdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return babylonian.Sqrt(Variance(values, mean))
}

// HarmonicMean returns len / sum(1/x). All values must be non-zero: a
// zero element drives the reciprocal sum to +-Inf and the result to 0.
// This is a precondition, not a handled case.
func HarmonicMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var recip float64
	for _, x := range values {
		recip += 1 / x
	}

	return float64(len(values)) / recip
}

// Min returns the smallest value.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	minVal := values[0]
	for _, x := range values[1:] {
		if x < minVal {
			minVal = x
		}
	}

	return minVal
}

// Max returns the largest value.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	maxVal := values[0]
	for _, x := range values[1:] {
		if x > maxVal {
			maxVal = x
		}
	}

	return maxVal
}

// Range returns Max - Min.
func Range(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return Max(values) - Min(values)
}

// Percentile returns the nearest-rank p-th percentile of an
// ascending-sorted slice, with p in [0, 100]. Percentile(sorted, 50)
// is the lower median.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	rank := int(math.Ceil(p / 100 * float64(n)))
	if rank < 1 {
		rank = 1
	}

	return sorted[rank-1]
}
