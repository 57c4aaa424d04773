// Package growth models the canonical complexity classes as evaluatable
// functions of input size and compares their growth.
//
// # Overview
//
// The package has two layers:
//
//   - Class: an enumeration of the canonical complexity classes, from
//     Constant through Factorial, each carrying its big-O notation, a
//     display name, a presentation tag, and a reference formula.
//   - Comparator: a registry of named growth functions, pre-populated
//     with the canonical classes and extensible with custom entries, that
//     tabulates values over a domain and locates crossover points.
//
// # Evaluation Model
//
// Growth formulas are mathematically partial: logarithms reject
// non-positive inputs, factorials overflow quickly, and custom functions
// may divide by zero. Rather than force error handling onto every call
// site, evaluation is total by convention: Function.Eval returns the
// Unbounded sentinel (+Inf) whenever the underlying function panics or
// produces a non-finite value. Callers that care can test for it with
// IsUnbounded; callers that plot or tabulate can treat it as "off the
// chart".
//
// Two reference formulas are capped to stay representable in a float64:
// the exponential clamps its exponent to 50 and the factorial clamps its
// argument to 20. Past those caps the curves flatten instead of
// overflowing, which preserves their ordering against the slower classes
// over any practical domain.
//
// # Comparing Functions
//
// A Comparator tabulates every registered function over a shared integer
// domain:
//
//	cmp := growth.NewComparator()
//	table := cmp.Compare(1000, 10)
//	for _, key := range cmp.Keys() {
//	    fmt.Println(key, table.Series[key][len(table.X)-1])
//	}
//
// Crossover answers "past which n does one function dominate another" by
// linear scan, which is the only general strategy when entries are opaque
// callables:
//
//	pt, err := cmp.Crossover("quadratic", "linearithmic", 1000)
//	if err == nil && pt.Found() {
//	    fmt.Printf("n² overtakes n·log n at n=%d\n", pt.N)
//	}
//
// # Custom Functions
//
// Add registers any func(float64) float64 under a key, with optional
// display name and tag:
//
//	cmp.Add("sqrt", math.Sqrt,
//	    growth.WithDisplayName("O(√n)"),
//	    growth.WithTag("teal"),
//	)
//
// Re-adding a key overwrites its function in place, keeping the key's
// original position in the iteration order.
package growth
