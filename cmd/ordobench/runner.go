package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/ordo/algorithms"
	"github.com/arloliu/ordo/analysis"
	"github.com/arloliu/ordo/growth"
	"github.com/arloliu/ordo/timing"
)

// workload couples a named algorithm with the input shape it expects
// and the complexity class it is known to belong to.
type workload struct {
	// Name keys the workload in configs, flags, and reports.
	Name string

	// Expected is the documented class of the algorithm, printed next
	// to the measured verdict.
	Expected growth.Class

	// FixedSizes pins the sweep for workloads whose cost explodes past
	// small inputs. Nil means the configured sweep applies.
	FixedSizes []int

	// Measure runs the benchmark sweep for this workload.
	Measure func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error)
}

// workloads is the registry, ordered from cheapest class to most
// expensive. Searches probe for 0, which the generators never produce,
// so every search pays its worst case.
var workloads = []workload{
	{
		Name:     "constant_access",
		Expected: growth.Constant,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.ConstantAccess(data, len(data)/2)
			}, gen.RandomSlice, sizes, runs)
		},
	},
	{
		Name:     "binary_search",
		Expected: growth.Logarithmic,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.BinarySearch(data, 0)
			}, gen.SortedSlice, sizes, runs)
		},
	},
	{
		Name:     "linear_search",
		Expected: growth.Linear,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.LinearSearch(data, 0)
			}, gen.RandomSlice, sizes, runs)
		},
	},
	{
		Name:     "fib_iterative",
		Expected: growth.Linear,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(n int) {
				algorithms.FibIterative(n)
			}, func(size int) int { return size }, sizes, runs)
		},
	},
	{
		Name:     "merge_sort",
		Expected: growth.Linearithmic,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.MergeSort(data)
			}, gen.RandomSlice, sizes, runs)
		},
	},
	{
		Name:     "insertion_sort",
		Expected: growth.Quadratic,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.InsertionSort(data)
			}, gen.RandomSlice, sizes, runs)
		},
	},
	{
		Name:     "bubble_sort",
		Expected: growth.Quadratic,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.BubbleSort(data)
			}, gen.RandomSlice, sizes, runs)
		},
	},
	{
		Name:     "triple_loop",
		Expected: growth.Cubic,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(data []int) {
				algorithms.TripleLoopCount(data)
			}, gen.RandomSlice, sizes, runs)
		},
	},
	{
		Name:     "matmul",
		Expected: growth.Cubic,
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(m [][]int) {
				_, _ = algorithms.MatMul(m, m)
			}, gen.SquareMatrix, sizes, runs)
		},
	},
	{
		Name:       "fib_recursive",
		Expected:   growth.Exponential,
		FixedSizes: []int{10, 15, 20, 25},
		Measure: func(timer *timing.Timer, gen *algorithms.Generator, sizes []int, runs int) (timing.SizeResults, error) {
			return timing.Benchmark(timer, func(n int) {
				algorithms.FibRecursive(n)
			}, func(size int) int { return size }, sizes, runs)
		},
	},
}

// workloadByName finds a registered workload by its config name.
func workloadByName(name string) (workload, bool) {
	for _, w := range workloads {
		if w.Name == name {
			return w, true
		}
	}

	return workload{}, false
}

// WorkloadResult carries one workload's measurements together with
// every analysis verdict derived from them.
type WorkloadResult struct {
	// Name is the workload's registry name.
	Name string
	// Expected is the documented class of the algorithm.
	Expected growth.Class
	// Results holds the per-size timing aggregates.
	Results timing.SizeResults
	// Estimate is the ratio-heuristic verdict.
	Estimate analysis.Estimate
	// Fits ranks every candidate class by fit quality, best first.
	Fits []analysis.ClassFit
	// Predictions extrapolates each class to the target size. Nil when
	// prediction is disabled.
	Predictions []analysis.Prediction
}

// Suite executes a configured set of workloads and records their
// measurements under a unique run identity.
type Suite struct {
	cfg      *Config
	runID    uuid.UUID
	started  time.Time
	recorder *timing.Recorder
}

// NewSuite prepares a suite for the given configuration. The
// configuration is expected to be validated already.
func NewSuite(cfg *Config) *Suite {
	return &Suite{
		cfg:      cfg,
		runID:    uuid.New(),
		started:  time.Now(),
		recorder: timing.NewRecorder(),
	}
}

// Run benchmarks every selected workload and analyzes the results.
//
// Workloads share one seeded generator, so the full suite is
// reproducible from the configured seed alone. Each workload gets a
// fresh timer; the per-size aggregates also land in the suite recorder
// keyed by workload name.
func (s *Suite) Run() ([]WorkloadResult, error) {
	gen := algorithms.NewGenerator(s.cfg.Seed)

	selected := s.selectWorkloads()
	out := make([]WorkloadResult, 0, len(selected))
	for _, w := range selected {
		sizes := s.cfg.Sizes
		if len(w.FixedSizes) > 0 {
			sizes = w.FixedSizes
		}

		timer := timing.NewTimer()
		results, err := w.Measure(timer, gen, sizes, s.cfg.Runs)
		if err != nil {
			return nil, fmt.Errorf("workload %s: %w", w.Name, err)
		}
		if err := s.recorder.RecordAll(w.Name, results); err != nil {
			return nil, fmt.Errorf("workload %s: %w", w.Name, err)
		}

		secs := results.Seconds()
		res := WorkloadResult{
			Name:     w.Name,
			Expected: w.Expected,
			Results:  results,
			Estimate: analysis.EstimateComplexity(sizes, secs),
			Fits:     analysis.Fit(sizes, secs),
		}
		if s.cfg.TargetSize > 0 {
			res.Predictions = analysis.Predict(sizes, secs, s.cfg.TargetSize)
		}

		out = append(out, res)
	}

	return out, nil
}

// selectWorkloads resolves the configured workload names against the
// registry, preserving config order. An empty config selects the whole
// registry.
func (s *Suite) selectWorkloads() []workload {
	if len(s.cfg.Workloads) == 0 {
		return workloads
	}

	selected := make([]workload, 0, len(s.cfg.Workloads))
	for _, name := range s.cfg.Workloads {
		if w, ok := workloadByName(name); ok {
			selected = append(selected, w)
		}
	}

	return selected
}
