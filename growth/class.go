package growth

import "math"

// Class identifies one of the canonical complexity classes.
type Class uint8

const (
	// Constant represents O(1): work independent of input size.
	Constant Class = iota
	// Logarithmic represents O(log n).
	Logarithmic
	// Linear represents O(n).
	Linear
	// Linearithmic represents O(n log n).
	Linearithmic
	// Quadratic represents O(n²).
	Quadratic
	// Cubic represents O(n³).
	Cubic
	// Exponential represents O(2ⁿ).
	Exponential
	// Factorial represents O(n!).
	Factorial
)

// classNames maps Class to their registry key / string representations.
var classNames = map[Class]string{
	Constant:     "constant",
	Logarithmic:  "logarithmic",
	Linear:       "linear",
	Linearithmic: "linearithmic",
	Quadratic:    "quadratic",
	Cubic:        "cubic",
	Exponential:  "exponential",
	Factorial:    "factorial",
}

// String returns the lowercase name of the class. It doubles as the
// registry key under which the class is pre-registered in a Comparator.
func (c Class) String() string {
	if name, exists := classNames[c]; exists {
		return name
	}

	return "unknown"
}

// Notation returns the big-O notation of the class, e.g. "O(n log n)".
func (c Class) Notation() string {
	switch c {
	case Constant:
		return "O(1)"
	case Logarithmic:
		return "O(log n)"
	case Linear:
		return "O(n)"
	case Linearithmic:
		return "O(n log n)"
	case Quadratic:
		return "O(n²)"
	case Cubic:
		return "O(n³)"
	case Exponential:
		return "O(2ⁿ)"
	case Factorial:
		return "O(n!)"
	default:
		return "Unknown"
	}
}

// DisplayName returns the capitalized human-readable class name, e.g.
// "Linearithmic".
func (c Class) DisplayName() string {
	switch c {
	case Constant:
		return "Constant"
	case Logarithmic:
		return "Logarithmic"
	case Linear:
		return "Linear"
	case Linearithmic:
		return "Linearithmic"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	case Exponential:
		return "Exponential"
	case Factorial:
		return "Factorial"
	default:
		return "Unknown"
	}
}

// Tag returns the conventional plotting color for the class. Tags are
// opaque labels carried through the registry; nothing in this module
// renders them.
func (c Class) Tag() string {
	switch c {
	case Constant:
		return "red"
	case Logarithmic:
		return "orange"
	case Linear:
		return "green"
	case Linearithmic:
		return "blue"
	case Quadratic:
		return "purple"
	case Cubic:
		return "brown"
	case Exponential:
		return "red"
	case Factorial:
		return "black"
	default:
		return "gray"
	}
}

// Ref returns the canonical reference formula for the class.
//
// The returned function is the raw formula without the fault guard; wrap
// it in a Function (or use a Comparator, which does so) to get the
// Unbounded sentinel behavior. Conventions baked into the formulas:
//
//   - Logarithmic and Linearithmic return 0 for n <= 0. That is a
//     convention to keep small-domain tables plottable, not a
//     mathematical value.
//   - Exponential clamps its argument to 50 (2^min(n, 50)) and Factorial
//     to 20 ((min(n, 20))!) so that evaluation over wide ranges cannot
//     overflow. The clamp changes the function: values computed past the
//     cap are systematically wrong, not merely large, so fits and
//     predictions beyond n=50 (or n=20) must not be trusted.
//
// Returns nil for an unknown class.
func (c Class) Ref() func(float64) float64 {
	switch c {
	case Constant:
		return func(float64) float64 { return 1 }
	case Logarithmic:
		return func(n float64) float64 {
			if n <= 0 {
				return 0
			}

			return math.Log(n)
		}
	case Linear:
		return func(n float64) float64 { return n }
	case Linearithmic:
		return func(n float64) float64 {
			if n <= 0 {
				return 0
			}

			return n * math.Log(n)
		}
	case Quadratic:
		return func(n float64) float64 { return n * n }
	case Cubic:
		return func(n float64) float64 { return n * n * n }
	case Exponential:
		return func(n float64) float64 { return math.Pow(2, math.Min(n, 50)) }
	case Factorial:
		return func(n float64) float64 { return factorial(int(math.Min(n, 20))) }
	default:
		return nil
	}
}

// Classes returns all canonical classes in ascending growth order.
func Classes() []Class {
	return []Class{
		Constant,
		Logarithmic,
		Linear,
		Linearithmic,
		Quadratic,
		Cubic,
		Exponential,
		Factorial,
	}
}

// factorial computes n! as a float64. A negative argument has no
// factorial and yields NaN, which Eval maps to the Unbounded sentinel.
func factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}

	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
