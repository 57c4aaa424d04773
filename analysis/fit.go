package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/ordo/growth"
)

// fittedClasses are the classes Fit scores and Predict extrapolates.
// Exponential and factorial are excluded: their reference formulas are
// capped at n=50 and n=20 and stop tracking real growth past the caps,
// so correlating them against raw measurements is meaningless.
var fittedClasses = []growth.Class{
	growth.Constant,
	growth.Logarithmic,
	growth.Linear,
	growth.Linearithmic,
	growth.Quadratic,
	growth.Cubic,
}

// ClassFit scores one complexity class against observed samples.
type ClassFit struct {
	// Class is the scored complexity class.
	Class growth.Class
	// RSquared is the squared Pearson correlation between the class
	// reference curve and the observed times, in [0, 1].
	RSquared float64
}

// String returns a short human-readable form of the fit.
func (f ClassFit) String() string {
	return fmt.Sprintf("%s: R²=%.4f", f.Class.Notation(), f.RSquared)
}

// Fit scores every fitted complexity class against empirical
// (size, time) samples and returns the scores ranked best first.
//
// For each class the reference function is evaluated at every size and
// the squared Pearson correlation against the observed times becomes the
// class's goodness score. A class whose reference values have zero
// variance over the given sizes (the constant class always does) scores
// 0, as does any class whose evaluation produced a non-finite value.
//
// The ranking is stable: classes with equal scores keep their canonical
// growth order, so results are deterministic. Picking a "best" class is
// left to the caller; fits[0] is the natural choice.
//
// Parameters:
//   - sizes: Input sizes, ordered by increasing size
//   - times: Measured durations in seconds, one per size
//
// Returns:
//   - []ClassFit: One score per fitted class, best first; nil when the
//     inputs are mismatched or hold fewer than 2 samples
//
// Example:
//
//	fits := analysis.Fit([]int{10, 20, 40, 80}, []float64{0.01, 0.02, 0.04, 0.08})
//	fmt.Printf("best: %s\n", fits[0]) // best: O(n): R²=1.0000
func Fit(sizes []int, times []float64) []ClassFit {
	if len(sizes) != len(times) || len(sizes) < 2 {
		return nil
	}

	xs := toFloats(sizes)

	fits := make([]ClassFit, 0, len(fittedClasses))
	for _, cls := range fittedClasses {
		fn := growth.NewFunction(cls.Notation(), cls.Ref(), cls.Tag())
		expected := fn.EvalRange(xs)
		fits = append(fits, ClassFit{Class: cls, RSquared: squaredPearson(expected, times)})
	}

	// Sort by R² best first; stable so tied classes keep canonical order.
	slices.SortStableFunc(fits, func(a, b ClassFit) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return fits
}

// squaredPearson computes the squared Pearson correlation coefficient
// between xs and ys.
//
// Returns 0 when either side has zero variance (the correlation is
// undefined) or when the inputs poison the accumulation with non-finite
// values; the caller treats both as "no fit".
func squaredPearson(xs, ys []float64) float64 {
	n := float64(len(xs))

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}

	varX := n*sumX2 - sumX*sumX
	varY := n*sumY2 - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return 0
	}

	r := (n*sumXY - sumX*sumY) / math.Sqrt(varX*varY)
	r2 := r * r

	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return 0
	}
	// Roundoff can push a perfect fit a hair past 1.
	if r2 > 1 {
		return 1
	}

	return r2
}

// toFloats converts an int slice to float64 for evaluation against
// growth functions.
func toFloats(sizes []int) []float64 {
	out := make([]float64, len(sizes))
	for i, s := range sizes {
		out[i] = float64(s)
	}

	return out
}
