package analysis

import (
	"fmt"
	"math"

	"github.com/arloliu/ordo/growth"
)

// Prediction is the extrapolated running time at a target size under the
// assumption of one complexity class.
type Prediction struct {
	// Class is the complexity class the extrapolation assumes.
	Class growth.Class
	// Seconds is the predicted running time at the target size.
	Seconds float64
}

// String returns a short human-readable form of the prediction.
func (p Prediction) String() string {
	return fmt.Sprintf("%s: %.6gs", p.Class.Notation(), p.Seconds)
}

// Predict extrapolates the measured running time to targetSize under
// each fitted complexity class.
//
// Only the LAST sample serves as the reference point (refSize, refTime):
// the prediction for a class is refTime multiplied by the class's growth
// factor ref(target)/ref(refSize). Predict does not rank the classes;
// pair it with Fit and read the prediction of the best-fitting class.
//
// When targetSize equals the reference size every growth factor is 1 and
// every prediction returns refTime exactly.
//
// Parameters:
//   - sizes: Input sizes, ordered by increasing size
//   - times: Measured durations in seconds, one per size
//   - targetSize: The input size to extrapolate to, at least 1
//
// Returns:
//   - []Prediction: One prediction per fitted class in canonical order;
//     nil when the inputs are empty or mismatched or targetSize < 1
func Predict(sizes []int, times []float64, targetSize int) []Prediction {
	if len(sizes) != len(times) || len(sizes) == 0 || targetSize < 1 {
		return nil
	}

	refSize := sizes[len(sizes)-1]
	refTime := times[len(times)-1]

	preds := make([]Prediction, 0, len(fittedClasses))
	for _, cls := range fittedClasses {
		preds = append(preds, Prediction{
			Class:   cls,
			Seconds: refTime * growthFactor(cls, refSize, targetSize),
		})
	}

	return preds
}

// growthFactor computes ref(target)/ref(refSize) from the class formula.
//
// A reference size of 1 or below would put a zero (or undefined)
// logarithm in the denominator for the log-based classes; those fall
// back to factor 1 for logarithmic and factor target for linearithmic,
// keeping predictions finite at degenerate reference points.
func growthFactor(cls growth.Class, refSize, targetSize int) float64 {
	ref := float64(refSize)
	target := float64(targetSize)

	switch cls {
	case growth.Constant:
		return 1
	case growth.Logarithmic:
		if refSize <= 1 {
			return 1
		}

		return math.Log(target) / math.Log(ref)
	case growth.Linear:
		return target / ref
	case growth.Linearithmic:
		if refSize <= 1 {
			return target
		}

		return (target * math.Log(target)) / (ref * math.Log(ref))
	case growth.Quadratic:
		return (target * target) / (ref * ref)
	case growth.Cubic:
		return (target * target * target) / (ref * ref * ref)
	default:
		return 1
	}
}
