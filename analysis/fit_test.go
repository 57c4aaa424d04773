package analysis

import (
	"math"
	"testing"

	"github.com/arloliu/ordo/growth"
)

// TestFit_PerfectLinear tests that proportional data scores the linear
// class at R² ~ 1.0 and every other class strictly lower.
func TestFit_PerfectLinear(t *testing.T) {
	fits := Fit([]int{10, 20, 40, 80}, []float64{0.01, 0.02, 0.04, 0.08})

	if len(fits) != 6 {
		t.Fatalf("Expected 6 class fits, got %d", len(fits))
	}
	if fits[0].Class != growth.Linear {
		t.Fatalf("Expected linear ranked first, got %v", fits[0].Class)
	}
	if math.Abs(fits[0].RSquared-1.0) > 1e-9 {
		t.Errorf("Expected linear R² ~ 1.0, got %f", fits[0].RSquared)
	}

	for _, f := range fits[1:] {
		if f.RSquared >= fits[0].RSquared {
			t.Errorf("Class %v scored %f, not strictly below linear's %f",
				f.Class, f.RSquared, fits[0].RSquared)
		}
	}
}

// TestFit_PerfectQuadratic tests that times proportional to n² rank the
// quadratic class first with a perfect score.
func TestFit_PerfectQuadratic(t *testing.T) {
	fits := Fit([]int{10, 20, 40}, []float64{0.01, 0.04, 0.16})

	if fits[0].Class != growth.Quadratic {
		t.Fatalf("Expected quadratic ranked first, got %v", fits[0].Class)
	}
	if math.Abs(fits[0].RSquared-1.0) > 1e-9 {
		t.Errorf("Expected quadratic R² ~ 1.0, got %f", fits[0].RSquared)
	}
}

// TestFit_RankedDescending verifies the best-first ordering.
func TestFit_RankedDescending(t *testing.T) {
	fits := Fit([]int{10, 20, 40, 80, 160}, []float64{0.01, 0.025, 0.07, 0.2, 0.6})

	for i := 1; i < len(fits); i++ {
		if fits[i-1].RSquared < fits[i].RSquared {
			t.Errorf("Fits not sorted by R²: position %d has %f, position %d has %f",
				i-1, fits[i-1].RSquared, i, fits[i].RSquared)
		}
	}
}

// TestFit_ConstantClassZeroVariance tests that the constant class always
// scores 0: its reference values never vary, so correlation is undefined.
func TestFit_ConstantClassZeroVariance(t *testing.T) {
	fits := Fit([]int{10, 20, 40}, []float64{0.01, 0.02, 0.04})

	for _, f := range fits {
		if f.Class == growth.Constant && f.RSquared != 0 {
			t.Errorf("Constant class should score 0, got %f", f.RSquared)
		}
	}
}

// TestFit_ZeroVarianceTimes tests observed times with no variance; every
// class must score 0 and the stable sort must keep canonical order.
func TestFit_ZeroVarianceTimes(t *testing.T) {
	fits := Fit([]int{10, 20, 40}, []float64{0.01, 0.01, 0.01})

	expected := []growth.Class{
		growth.Constant,
		growth.Logarithmic,
		growth.Linear,
		growth.Linearithmic,
		growth.Quadratic,
		growth.Cubic,
	}
	for i, f := range fits {
		if f.RSquared != 0 {
			t.Errorf("Class %v should score 0 on flat times, got %f", f.Class, f.RSquared)
		}
		if f.Class != expected[i] {
			t.Errorf("Tie at position %d should keep canonical order: expected %v, got %v",
				i, expected[i], f.Class)
		}
	}
}

// TestFit_NonFiniteTimes tests that poisoned observations produce zero
// scores instead of NaN.
func TestFit_NonFiniteTimes(t *testing.T) {
	fits := Fit([]int{10, 20, 40}, []float64{0.01, math.Inf(1), 0.04})

	for _, f := range fits {
		if f.RSquared != 0 {
			t.Errorf("Class %v should score 0 on non-finite times, got %f", f.Class, f.RSquared)
		}
	}
}

// TestFit_InsufficientData tests the benign empty results.
func TestFit_InsufficientData(t *testing.T) {
	if fits := Fit(nil, nil); fits != nil {
		t.Errorf("Expected nil for empty input, got %v", fits)
	}
	if fits := Fit([]int{10}, []float64{0.01}); fits != nil {
		t.Errorf("Expected nil for a single sample, got %v", fits)
	}
	if fits := Fit([]int{10, 20}, []float64{0.01}); fits != nil {
		t.Errorf("Expected nil for mismatched lengths, got %v", fits)
	}
}

// TestFit_ExcludedClasses verifies exponential and factorial never appear
// in fit results.
func TestFit_ExcludedClasses(t *testing.T) {
	fits := Fit([]int{2, 4, 8, 16}, []float64{0.004, 0.016, 0.256, 65.5})

	for _, f := range fits {
		if f.Class == growth.Exponential || f.Class == growth.Factorial {
			t.Errorf("Class %v must not be fitted", f.Class)
		}
	}
	if len(fits) != 6 {
		t.Errorf("Expected exactly 6 fitted classes, got %d", len(fits))
	}
}

// TestSquaredPearson tests the correlation helper against hand-computed
// values.
func TestSquaredPearson(t *testing.T) {
	// Perfectly correlated.
	if r2 := squaredPearson([]float64{1, 2, 3}, []float64{2, 4, 6}); math.Abs(r2-1.0) > 1e-12 {
		t.Errorf("Expected r²=1 for proportional data, got %f", r2)
	}

	// Perfectly anti-correlated squares to 1 as well.
	if r2 := squaredPearson([]float64{1, 2, 3}, []float64{6, 4, 2}); math.Abs(r2-1.0) > 1e-12 {
		t.Errorf("Expected r²=1 for anti-correlated data, got %f", r2)
	}

	// Zero variance on either side is undefined, reported as 0.
	if r2 := squaredPearson([]float64{5, 5, 5}, []float64{1, 2, 3}); r2 != 0 {
		t.Errorf("Expected r²=0 for flat xs, got %f", r2)
	}
	if r2 := squaredPearson([]float64{1, 2, 3}, []float64{5, 5, 5}); r2 != 0 {
		t.Errorf("Expected r²=0 for flat ys, got %f", r2)
	}

	// Non-finite poison maps to 0.
	if r2 := squaredPearson([]float64{1, 2, math.Inf(1)}, []float64{1, 2, 3}); r2 != 0 {
		t.Errorf("Expected r²=0 for infinite xs, got %f", r2)
	}
}

// TestClassFit_String tests the rendering form.
func TestClassFit_String(t *testing.T) {
	f := ClassFit{Class: growth.Linear, RSquared: 0.987654}
	if f.String() != "O(n): R²=0.9877" {
		t.Errorf("Unexpected rendering: %q", f.String())
	}
}
