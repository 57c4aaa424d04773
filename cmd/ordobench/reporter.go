package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/ordo/analysis"
	"github.com/arloliu/ordo/growth"
)

// printHeader prints the run identity and the effective configuration.
func printHeader(s *Suite) {
	fmt.Println("=== Ordo Benchmark Suite ===")
	fmt.Println()
	fmt.Printf("  Run ID:  %s\n", s.runID)
	fmt.Printf("  Started: %s\n", s.started.Format(time.RFC3339))
	fmt.Printf("  Sizes:   %v\n", s.cfg.Sizes)
	fmt.Printf("  Runs:    %d\n", s.cfg.Runs)
	fmt.Printf("  Seed:    %d\n", s.cfg.Seed)
	if s.cfg.TargetSize > 0 {
		fmt.Printf("  Target:  %d\n", s.cfg.TargetSize)
	}
	fmt.Println()
}

// printResult prints one workload's timing table and analysis verdicts.
func printResult(res WorkloadResult, targetSize int) {
	fmt.Printf("=== %s ===\n", res.Name)
	fmt.Println()

	fmt.Printf("%-10s | %-13s | %-13s\n", "Size", "Mean", "Std Dev")
	fmt.Println(strings.Repeat("-", 42))
	for _, r := range res.Results {
		fmt.Printf("%-10d | %-13v | %-13v\n", r.Size, r.Mean, r.StdDev)
	}
	fmt.Println()

	fmt.Printf("  Expected: %s\n", res.Expected.Notation())
	fmt.Printf("  Estimate: %s\n", res.Estimate)

	if len(res.Fits) > 0 {
		fmt.Println("  Formula fits:")
		for _, fit := range res.Fits {
			fmt.Printf("    %-12s R²=%.4f\n", fit.Class.Notation()+":", fit.RSquared)
		}
	}

	if pred, ok := bestPrediction(res); ok {
		eta := time.Duration(pred.Seconds * float64(time.Second))
		fmt.Printf("  📊 Predicted: %v at size %d assuming %s\n", eta, targetSize, pred.Class.Notation())
	}
	fmt.Println()
}

// printSummary prints the expected-versus-measured table across all
// workloads.
func printSummary(results []WorkloadResult) {
	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Printf("%-16s | %-12s | %-12s | %s\n", "Workload", "Expected", "Best Fit", "Match")
	fmt.Println(strings.Repeat("-", 54))
	for _, res := range results {
		best := "-"
		match := "⚠️"
		if len(res.Fits) > 0 {
			best = res.Fits[0].Class.Notation()
			if res.Fits[0].Class == res.Expected {
				match = "✅"
			}
		}
		// The fit candidates stop at cubic; classes beyond it cannot
		// match, so do not report a mismatch for them.
		if res.Expected > growth.Cubic {
			match = "n/a"
		}
		fmt.Printf("%-16s | %-12s | %-12s | %s\n", res.Name, res.Expected.Notation(), best, match)
	}
	fmt.Println()
}

// bestPrediction returns the extrapolation for the best-fitting class.
func bestPrediction(res WorkloadResult) (analysis.Prediction, bool) {
	if len(res.Fits) == 0 {
		return analysis.Prediction{}, false
	}
	for _, p := range res.Predictions {
		if p.Class == res.Fits[0].Class {
			return p, true
		}
	}

	return analysis.Prediction{}, false
}
