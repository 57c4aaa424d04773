package analysis

import (
	"fmt"
	"math"

	"github.com/arloliu/ordo/growth"
)

// Outcome identifies the kind of verdict the ratio heuristic produced.
type Outcome int

const (
	// OutcomeInsufficientData marks an estimate attempted over fewer than
	// two usable samples.
	OutcomeInsufficientData Outcome = iota
	// OutcomeClassified marks a successful match against a complexity
	// class.
	OutcomeClassified
	// OutcomeComplexPattern marks growth that fits none of the ratio
	// bands.
	OutcomeComplexPattern
)

// outcomeNames maps Outcome values to their string representations.
var outcomeNames = map[Outcome]string{
	OutcomeInsufficientData: "insufficient-data",
	OutcomeClassified:       "classified",
	OutcomeComplexPattern:   "complex-pattern",
}

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	if name, exists := outcomeNames[o]; exists {
		return name
	}

	return "unknown"
}

// Estimate is the verdict of the ratio heuristic.
//
// TimeRatio and SizeRatio carry the averaged consecutive-pair ratios the
// verdict was derived from; they are zero when the outcome is
// OutcomeInsufficientData. Class is meaningful only when the outcome is
// OutcomeClassified.
type Estimate struct {
	// Outcome tells whether the samples were classified, defied the
	// known bands, or were too few to judge.
	Outcome Outcome
	// Class is the matched complexity class for a classified outcome.
	Class growth.Class
	// TimeRatio is the average ratio of consecutive measured times.
	TimeRatio float64
	// SizeRatio is the average ratio of consecutive input sizes.
	SizeRatio float64
}

// String renders the verdict in the report form:
// "O(n²) - Quadratic", "Complex pattern (ratio: 2.37)", or
// "Insufficient data".
func (e Estimate) String() string {
	switch e.Outcome {
	case OutcomeClassified:
		return fmt.Sprintf("%s - %s", e.Class.Notation(), e.Class.DisplayName())
	case OutcomeComplexPattern:
		return fmt.Sprintf("Complex pattern (ratio: %.2f)", e.TimeRatio)
	default:
		return "Insufficient data"
	}
}

// EstimateComplexity classifies empirical (size, time) samples into a
// complexity class by comparing the average growth ratio of consecutive
// measurements against the ratio each class would produce.
//
// For each consecutive pair with a positive predecessor time it computes
// timeRatio = t[i]/t[i-1] and sizeRatio = n[i]/n[i-1], averages both
// across the valid pairs, and tests the averages against threshold bands
// in fixed priority order:
//
//  1. Constant:     |avgTime − 1| < 0.1
//  2. Linear:       |avgTime − avgSize| < 0.2
//  3. Quadratic:    |avgTime − avgSize²| < 0.3
//  4. Linearithmic: |avgTime − expected n·log n ratio| < 0.3
//
// The priority order is part of the contract: a linear measurement that
// also brushes the quadratic band must classify as linear because linear
// is tested first. Samples that fit no band yield OutcomeComplexPattern
// with the raw average ratio; mismatched or too-short inputs (or inputs
// whose every pair has a zero predecessor time) yield
// OutcomeInsufficientData. Never an error: unusable data is a benign
// verdict here, not a fault.
//
// Parameters:
//   - sizes: Input sizes, ordered by increasing size
//   - times: Measured durations in seconds, one per size
//
// Returns:
//   - Estimate: The classification verdict with its supporting ratios
func EstimateComplexity(sizes []int, times []float64) Estimate {
	if len(sizes) != len(times) || len(sizes) < 2 {
		return Estimate{Outcome: OutcomeInsufficientData}
	}

	var timeRatios, sizeRatios []float64
	for i := 1; i < len(sizes); i++ {
		// A zero predecessor has no meaningful ratio; skip the pair.
		if times[i-1] <= 0 {
			continue
		}

		timeRatios = append(timeRatios, times[i]/times[i-1])
		sizeRatios = append(sizeRatios, float64(sizes[i])/float64(sizes[i-1]))
	}

	if len(timeRatios) == 0 {
		return Estimate{Outcome: OutcomeInsufficientData}
	}

	avgTime := mean(timeRatios)
	avgSize := mean(sizeRatios)

	est := Estimate{TimeRatio: avgTime, SizeRatio: avgSize}

	switch {
	case math.Abs(avgTime-1) < 0.1:
		est.Outcome, est.Class = OutcomeClassified, growth.Constant
	case math.Abs(avgTime-avgSize) < 0.2:
		est.Outcome, est.Class = OutcomeClassified, growth.Linear
	case math.Abs(avgTime-avgSize*avgSize) < 0.3:
		est.Outcome, est.Class = OutcomeClassified, growth.Quadratic
	case math.Abs(avgTime-linearithmicRatio(sizes, times)) < 0.3:
		est.Outcome, est.Class = OutcomeClassified, growth.Linearithmic
	default:
		est.Outcome = OutcomeComplexPattern
	}

	return est
}

// linearithmicRatio computes the average consecutive-pair time ratio an
// n·log n algorithm would produce over the given sizes:
// mean of (n2·ln n2)/(n1·ln n1) across the pairs EstimateComplexity
// considers valid. Pairs whose denominator vanishes (n1 <= 1) are
// skipped; with no usable pair the result is NaN, which fails every
// band comparison and lets the verdict fall through.
func linearithmicRatio(sizes []int, times []float64) float64 {
	var sum float64
	var count int

	for i := 1; i < len(sizes); i++ {
		if times[i-1] <= 0 {
			continue
		}

		n1 := float64(sizes[i-1])
		n2 := float64(sizes[i])
		if n1 <= 1 || n2 <= 0 {
			continue
		}

		sum += (n2 * math.Log(n2)) / (n1 * math.Log(n1))
		count++
	}

	if count == 0 {
		return math.NaN()
	}

	return sum / float64(count)
}

// mean computes the arithmetic mean of a non-empty slice.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
