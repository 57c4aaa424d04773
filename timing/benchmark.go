package timing

import (
	"fmt"
	"time"

	"github.com/arloliu/ordo/errs"
)

// SizeResult is the aggregated measurement of one input size in a
// benchmark sweep.
type SizeResult struct {
	// Size is the input size the measurements were taken at.
	Size int
	// Mean is the mean duration across the runs at this size.
	Mean time.Duration
	// StdDev is the sample standard deviation across the runs.
	StdDev time.Duration
}

// SizeResults is an ordered sequence of per-size benchmark results.
type SizeResults []SizeResult

// Sizes returns the input sizes in result order.
func (rs SizeResults) Sizes() []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Size
	}

	return out
}

// Seconds returns the mean durations as float seconds in result order.
// This is the bridge into the analysis package, which consumes
// (sizes, seconds) sample pairs.
func (rs SizeResults) Seconds() []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Mean.Seconds()
	}

	return out
}

// Benchmark measures fn across a sweep of input sizes.
//
// For each size, in the given order, one input is produced by gen(size)
// and that same input is reused across all runs repetitions. Generating
// once per size is intentional: it isolates the measured algorithm cost
// from the input generation cost. Functions that mutate their input see
// the mutated value on subsequent runs; pass a copying wrapper if that
// skews the measurement.
//
// Every measurement lands in the timer's history. A nil timer gets a
// private default, which still measures correctly but leaves no history
// behind for the caller.
//
// Parameters:
//   - timer: Timer that performs and records the measurements
//   - fn: Function under measurement, called once per run
//   - gen: Input generator, called exactly once per size
//   - sizes: Input sizes to sweep, order preserved in the results
//   - runs: Repetitions per size, must be positive
//
// Returns:
//   - SizeResults: One entry per size, same order as sizes
//   - error: errs.ErrNilFunction if fn or gen is nil,
//     errs.ErrInvalidRuns if runs <= 0, errs.ErrInvalidSizes on a
//     non-positive size
//
// Example:
//
//	timer := timing.NewTimer()
//	results, err := timing.Benchmark(timer,
//	    func(data []int) { sort.Ints(data) },
//	    gen.RandomSlice,
//	    []int{100, 200, 400}, 5)
func Benchmark[T any](timer *Timer, fn func(T), gen func(int) T, sizes []int, runs int) (SizeResults, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: benchmark function", errs.ErrNilFunction)
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: input generator", errs.ErrNilFunction)
	}
	if runs <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidRuns, runs)
	}
	if timer == nil {
		timer = NewTimer()
	}

	results := make(SizeResults, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSizes, size)
		}

		input := gen(size)
		stats, err := timer.Measure(func() { fn(input) }, runs)
		if err != nil {
			return nil, err
		}

		results = append(results, SizeResult{Size: size, Mean: stats.Mean, StdDev: stats.StdDev})
	}

	return results, nil
}
