// Package analysis classifies empirical (size, time) samples against the
// canonical complexity classes and extrapolates measured performance.
//
// # Overview
//
// The package is the consumer end of the measurement pipeline: the
// timing package produces ordered samples, analysis turns them into a
// verdict. Three independent entry points cover the three questions a
// measurement session asks:
//
//   - EstimateComplexity: "which class does this look like?" A
//     ratio-based heuristic comparing consecutive growth ratios against
//     the bands each class would produce. Fast, coarse, and tolerant of
//     few samples.
//   - Fit: "how well does each class explain the data?" Squared Pearson
//     correlation between every fitted class's reference curve and the
//     observed times, ranked best first.
//   - Predict: "how long will it take at size N?" Extrapolation from the
//     last sample under each class's growth factor.
//
// The three compose but do not call each other; a caller that wants a
// single best prediction runs Fit for the ranking and reads Predict's
// entry for the winning class.
//
// # Samples
//
// All entry points take parallel slices: sizes ordered by increasing
// input size and times holding the measured seconds at each size. The
// heuristics assume the ordering but no function enforces it. Unusable
// input (mismatched lengths, fewer than 2 samples) produces a benign
// zero result, never an error: analysis failures are verdicts, not
// faults.
//
// # Accuracy Notes
//
// EstimateComplexity tests its threshold bands in a fixed priority
// order (constant, linear, quadratic, linearithmic) and stops at the
// first match; the order is part of the contract. Fit and Predict cover
// the six classes from constant through cubic; exponential and
// factorial are excluded because their capped reference formulas (see
// growth.Class.Ref) diverge from real growth past the caps. No
// statistical rigor is attempted anywhere: no confidence intervals, no
// outlier rejection, plain correlation only.
package analysis
