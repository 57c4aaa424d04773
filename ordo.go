// Package ordo measures algorithm running times across input sizes and
// identifies the complexity class that best explains their growth.
//
// The pipeline has three stages, each usable on its own:
//
//   - timing: run a function across input sizes and record durations
//     (Timer, Benchmark, Recorder)
//   - analysis: classify the growth pattern, rank candidate classes by
//     goodness of fit, and extrapolate to larger inputs
//   - growth: canonical reference formulas, comparison tables, and
//     crossover points for the complexity classes
//
// The algorithms package supplies textbook workloads and seeded input
// generators for exercising the pipeline end to end.
//
// # Basic Usage
//
// Measuring a sort across input sizes and estimating its class:
//
//	gen := algorithms.NewGenerator(42)
//	results, err := timing.Benchmark(timing.NewTimer(), func(data []int) {
//	    algorithms.BubbleSort(data)
//	}, gen.RandomSlice, []int{100, 200, 400, 800}, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	est := ordo.EstimateComplexity(results.Sizes(), results.Seconds())
//	fmt.Println(est) // e.g. "O(n²) - Quadratic"
//
// Ranking every candidate class and extrapolating to a larger input:
//
//	for _, fit := range ordo.FitGrowth(results.Sizes(), results.Seconds()) {
//	    fmt.Println(fit)
//	}
//
//	for _, pred := range ordo.PredictPerformance(results.Sizes(), results.Seconds(), 10000) {
//	    fmt.Println(pred)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// timing, analysis, and growth packages, covering the most common use
// cases. For fine-grained control, use those packages directly.
package ordo

import (
	"time"

	"github.com/arloliu/ordo/analysis"
	"github.com/arloliu/ordo/growth"
	"github.com/arloliu/ordo/internal/hash"
	"github.com/arloliu/ordo/timing"
)

// AlgorithmID converts an algorithm name to its 64-bit hash identifier.
//
// Ordo uses xxHash64 to turn names into fixed-size IDs for fast lookups
// and compact series keys. The hash is deterministic, so the same name
// always maps to the same ID across runs and machines.
//
// The timing.Recorder applies the same hash internally and verifies
// names on insert, so collisions between distinct names are detected
// rather than silently merged.
//
// Example:
//
//	bubbleID := ordo.AlgorithmID("bubble_sort")
//	mergeID := ordo.AlgorithmID("merge_sort")
func AlgorithmID(name string) uint64 {
	return hash.ID(name)
}

// NewComparator creates a growth.Comparator pre-populated with the
// canonical complexity classes, ready for Compare and Crossover
// queries. Custom functions can be added with Add.
//
// Example:
//
//	cmp := ordo.NewComparator()
//	point, err := cmp.Crossover("linearithmic", "quadratic", 1000)
func NewComparator() *growth.Comparator {
	return growth.NewComparator()
}

// NewTimer creates a timing.Timer with the given options.
//
// Example:
//
//	timer := ordo.NewTimer()
//	mean, stddev := timer.AverageTime(work, 10)
func NewTimer(opts ...timing.Option) *timing.Timer {
	return timing.NewTimer(opts...)
}

// Timed measures a single invocation of fn and returns its wall-clock
// duration. It is the one-shot form of timing.Timer for callers that
// need neither history nor statistics.
//
// Example:
//
//	elapsed := ordo.Timed(func() {
//	    algorithms.MergeSort(data)
//	})
func Timed(fn func()) time.Duration {
	timer := timing.NewTimer()

	return timer.Time(fn)
}

// EstimateComplexity classifies measured running times by the ratios
// between consecutive measurements. See analysis.EstimateComplexity for
// the classification rules.
func EstimateComplexity(sizes []int, times []float64) analysis.Estimate {
	return analysis.EstimateComplexity(sizes, times)
}

// FitGrowth ranks the candidate complexity classes by squared Pearson
// correlation against the measurements, best first. See analysis.Fit.
func FitGrowth(sizes []int, times []float64) []analysis.ClassFit {
	return analysis.Fit(sizes, times)
}

// PredictPerformance extrapolates the last measurement to targetSize
// under each candidate class. See analysis.Predict.
func PredictPerformance(sizes []int, times []float64, targetSize int) []analysis.Prediction {
	return analysis.Predict(sizes, times, targetSize)
}
