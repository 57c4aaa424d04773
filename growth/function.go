package growth

import "math"

// Unbounded is the sentinel value returned by Eval when a function cannot
// be evaluated at a point: the callee panicked, produced NaN, or overflowed
// to an infinity. It is positive infinity, so unbounded values sort after
// every finite value and comparisons against finite values stay total.
var Unbounded = math.Inf(1)

// IsUnbounded reports whether v is the Unbounded sentinel.
func IsUnbounded(v float64) bool {
	return math.IsInf(v, 1)
}

// Function pairs a mathematical function of one variable with a display
// name and an opaque tag.
//
// Function is the unit a Comparator registers and compares. The zero value
// is usable but evaluates to Unbounded everywhere; construct with
// NewFunction.
type Function struct {
	// Name is the display name, e.g. a big-O notation like "O(n log n)".
	Name string
	// Tag is an opaque label carried alongside the function, conventionally
	// a plotting color.
	Tag string

	fn func(float64) float64
}

// NewFunction wraps fn with a display name and tag.
//
// A nil fn is tolerated: the resulting Function evaluates to Unbounded at
// every point rather than panicking.
func NewFunction(name string, fn func(float64) float64, tag string) Function {
	return Function{Name: name, Tag: tag, fn: fn}
}

// Eval evaluates the function at x.
//
// Eval never panics. Faults during evaluation are converted to the
// Unbounded sentinel:
//
//   - a panic in the wrapped function (index error, integer division by
//     zero, explicit panic)
//   - a NaN result (invalid domain, e.g. log of a negative number)
//   - an infinite result of either sign (overflow)
//
// Canonical class formulas pre-clamp their arguments (see Class.Ref), so
// for them the guard only catches residual faults; arbitrary user
// functions rely on it entirely.
func (f Function) Eval(x float64) (v float64) {
	defer func() {
		if recover() != nil {
			v = Unbounded
		}
	}()

	if f.fn == nil {
		return Unbounded
	}

	v = f.fn(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unbounded
	}

	return v
}

// EvalRange evaluates the function at every point of xs.
//
// The result has the same length and order as xs; each element is the
// Eval of the corresponding input. There is no short-circuiting: a fault
// at one point yields Unbounded at that position and evaluation
// continues.
func (f Function) EvalRange(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Eval(x)
	}

	return out
}
