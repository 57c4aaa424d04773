// Package timing measures wall-clock execution of callables and sweeps
// them across input sizes.
//
// # Overview
//
// Three pieces cover the measurement side of the pipeline:
//
//   - Timer: times single invocations against a monotonic clock and
//     aggregates repeated runs into mean and standard deviation.
//   - Benchmark: sweeps a function over a list of input sizes with a
//     caller-supplied input generator, producing one SizeResult per size.
//   - Recorder: groups SizeResults into named series for multi-algorithm
//     suite runs, keyed by xxhash IDs of the names.
//
// The output of a sweep feeds directly into the analysis package:
//
//	results, err := timing.Benchmark(timer, run, gen.RandomSlice, sizes, 5)
//	if err != nil {
//	    return err
//	}
//	est := analysis.EstimateComplexity(results.Sizes(), results.Seconds())
//
// # Measurement Model
//
// Time measures exactly one invocation and appends it to the timer's
// history. Benchmark generates ONE input per size and reuses it across
// all runs at that size, so generation cost never pollutes the measured
// durations. The timed function is trusted: panics propagate uncaught,
// and a hung function blocks the measurement indefinitely. There is no
// outlier rejection and no confidence interval; the statistics are plain
// mean and sample standard deviation.
//
// # Concurrency
//
// Everything here is single-owner and synchronous. A Timer's history and
// a Recorder's series are not safe for concurrent mutation; create one
// per goroutine if measurements must run in parallel.
package timing
