package growth

import (
	"fmt"
	"math"

	"github.com/arloliu/ordo/errs"
	"github.com/arloliu/ordo/internal/options"
)

// Comparator is a registry of named growth functions.
//
// A new Comparator is pre-populated with the canonical complexity classes
// (see Classes), keyed by their lowercase names, and may be extended with
// custom entries via Add. Entries are never removed; re-adding a key
// overwrites its function while keeping its original position in the
// iteration order.
//
// Comparator is not safe for concurrent mutation; it is built once and
// then read, matching the single-owner usage of the rest of the module.
type Comparator struct {
	functions map[string]Function
	keys      []string
}

// NewComparator creates a Comparator populated with the canonical classes.
//
// Iteration order starts with the canonical classes in ascending growth
// order; custom functions added later follow in insertion order.
//
// Example:
//
//	cmp := growth.NewComparator()
//	cmp.Add("sqrt", math.Sqrt, growth.WithDisplayName("O(√n)"))
//	table := cmp.Compare(100, 1)
func NewComparator() *Comparator {
	classes := Classes()
	c := &Comparator{
		functions: make(map[string]Function, len(classes)),
		keys:      make([]string, 0, len(classes)),
	}
	for _, cls := range classes {
		c.insert(cls.String(), Function{Name: cls.Notation(), Tag: cls.Tag(), fn: cls.Ref()})
	}

	return c
}

// Add registers a custom growth function under key.
//
// The display name defaults to key and the tag to "gray"; override them
// with WithDisplayName and WithTag. Adding an existing key overwrites the
// entry (last write wins) without error and without changing the key's
// position in the iteration order.
//
// Parameters:
//   - key: Registry key for lookups, Compare series, and Crossover
//   - fn: The function of one variable to register (nil is tolerated and
//     evaluates to Unbounded everywhere)
//   - opts: Optional display name and tag
func (c *Comparator) Add(key string, fn func(float64) float64, opts ...AddOption) {
	cfg := addConfig{displayName: key, tag: "gray"}
	// All Add options are infallible.
	_ = options.Apply(&cfg, opts...)

	c.insert(key, Function{Name: cfg.displayName, Tag: cfg.tag, fn: fn})
}

// insert stores fn under key, appending the key to the iteration order on
// first insertion only.
func (c *Comparator) insert(key string, fn Function) {
	if _, exists := c.functions[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.functions[key] = fn
}

// Lookup returns the function registered under key.
func (c *Comparator) Lookup(key string) (Function, bool) {
	fn, ok := c.functions[key]
	return fn, ok
}

// Keys returns the registry keys in iteration order: canonical classes
// first, then custom additions in insertion order.
func (c *Comparator) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)

	return out
}

// Len returns the number of registered functions.
func (c *Comparator) Len() int {
	return len(c.keys)
}

// Table holds the tabulated values produced by Compare.
//
// X is the evaluation domain and Series maps each registry key to the
// values of its function over X, in the same order and of the same
// length. Unbounded marks the points where a function could not be
// evaluated.
type Table struct {
	X      []float64
	Series map[string][]float64
}

// Compare evaluates every registered function over x in {1, 1+step, ...}
// up to and including nMax.
//
// The evaluation is deterministic: same registry, same arguments, same
// table. A nMax or step below 1 yields an empty table (there is no
// well-defined domain to evaluate).
//
// Parameters:
//   - nMax: Upper bound of the domain (inclusive)
//   - step: Distance between consecutive evaluation points
//
// Returns:
//   - Table: One series per registered function plus the shared domain
func (c *Comparator) Compare(nMax, step int) Table {
	t := Table{Series: make(map[string][]float64, len(c.keys))}
	if nMax < 1 || step < 1 {
		return t
	}

	xs := make([]float64, 0, (nMax-1)/step+1)
	for x := 1; x <= nMax; x += step {
		xs = append(xs, float64(x))
	}
	t.X = xs

	for _, key := range c.keys {
		t.Series[key] = c.functions[key].EvalRange(xs)
	}

	return t
}

// CrossoverPoint is the result of a Crossover scan.
//
// N is the first input at which the first function exceeds the second
// with both values finite, and V1/V2 are the two values there. When no
// such input exists within the scanned bound, N is -1 and both values
// are zero.
type CrossoverPoint struct {
	N  int
	V1 float64
	V2 float64
}

// Found reports whether the scan located a crossover.
func (p CrossoverPoint) Found() bool {
	return p.N > 0
}

// String returns a short human-readable form of the crossover point.
func (p CrossoverPoint) String() string {
	if !p.Found() {
		return "CrossoverPoint{not found}"
	}

	return fmt.Sprintf("CrossoverPoint{N: %d, V1: %.4g, V2: %.4g}", p.N, p.V1, p.V2)
}

// Crossover scans n = 1..maxN in increasing order and returns the FIRST n
// where the function under key1 exceeds the function under key2 with both
// values finite.
//
// Registered functions are opaque callables with no algebraic inverse
// to solve against, so the scan visits every n. Points where either
// function is Unbounded are skipped, so a crossover is only ever
// reported between two finite values.
//
// Parameters:
//   - key1, key2: Registry keys of the two functions to compare
//   - maxN: Upper bound of the scan (inclusive)
//
// Returns:
//   - CrossoverPoint: The first crossover, or the not-found sentinel
//     (N = -1) when none occurs within the bound
//   - error: errs.ErrUnknownFunction if either key is not registered
func (c *Comparator) Crossover(key1, key2 string, maxN int) (CrossoverPoint, error) {
	f1, ok := c.functions[key1]
	if !ok {
		return CrossoverPoint{}, fmt.Errorf("%w: %q", errs.ErrUnknownFunction, key1)
	}
	f2, ok := c.functions[key2]
	if !ok {
		return CrossoverPoint{}, fmt.Errorf("%w: %q", errs.ErrUnknownFunction, key2)
	}

	for n := 1; n <= maxN; n++ {
		v1 := f1.Eval(float64(n))
		v2 := f2.Eval(float64(n))

		if v1 > v2 && !math.IsInf(v1, 0) && !math.IsInf(v2, 0) {
			return CrossoverPoint{N: n, V1: v1, V2: v2}, nil
		}
	}

	return CrossoverPoint{N: -1}, nil
}
