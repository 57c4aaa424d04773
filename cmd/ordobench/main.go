package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	// Define CLI flags
	configPath := flag.String("config", "", "Path to a TOML suite definition")
	sizesFlag := flag.String("sizes", "", "Comma-separated input sizes (overrides config)")
	runsFlag := flag.Int("runs", 0, "Timed runs per size (overrides config)")
	targetFlag := flag.Int("target", 0, "Prediction target size (overrides config)")
	seedFlag := flag.Int64("seed", 0, "Input generator seed (overrides config)")
	listFlag := flag.Bool("list", false, "List available workloads and exit")

	flag.Parse()

	if *listFlag {
		listWorkloads()
		return
	}

	// Build the effective configuration: file over defaults, flags
	// over file, positional arguments as the workload selection.
	cfg := Default()
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *sizesFlag != "" {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Sizes = sizes
	}
	if *runsFlag > 0 {
		cfg.Runs = *runsFlag
	}
	if *targetFlag > 0 {
		cfg.TargetSize = *targetFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Workloads = args
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	suite := NewSuite(cfg)
	printHeader(suite)

	results, err := suite.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		printResult(res, cfg.TargetSize)
	}
	printSummary(results)
}

// parseSizes parses a comma-separated size list like "100,200,400".
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// listWorkloads prints the registry with each workload's documented
// class and pinned sweep, if any.
func listWorkloads() {
	fmt.Println("Available workloads:")
	for _, w := range workloads {
		if len(w.FixedSizes) > 0 {
			fmt.Printf("  %-16s %-10s (pinned sizes %v)\n", w.Name, w.Expected.Notation(), w.FixedSizes)
			continue
		}
		fmt.Printf("  %-16s %s\n", w.Name, w.Expected.Notation())
	}
}
