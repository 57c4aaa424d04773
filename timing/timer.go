package timing

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/ordo/errs"
	"github.com/arloliu/ordo/internal/options"
)

// Timer measures wall-clock durations of callable invocations and keeps a
// history of every recorded duration.
//
// Timer is for single-owner use: its history is not safe for concurrent
// mutation. Create one timer per measurement sequence.
type Timer struct {
	now     func() time.Time
	history []time.Duration
}

// Option configures a Timer created by NewTimer.
type Option = options.Option[*Timer]

// WithNowFunc substitutes the timer's clock, letting tests drive
// measurements deterministically. The default clock is time.Now, whose
// readings carry the monotonic component so elapsed times are immune to
// wall-clock adjustments. A nil now keeps the default.
func WithNowFunc(now func() time.Time) Option {
	return options.NoError(func(t *Timer) {
		if now != nil {
			t.now = now
		}
	})
}

// NewTimer creates a Timer with an empty history.
//
// Example:
//
//	timer := timing.NewTimer()
//	elapsed := timer.Time(func() { sort.Ints(data) })
//	fmt.Printf("sorted in %v\n", elapsed)
func NewTimer(opts ...Option) *Timer {
	t := &Timer{now: time.Now}
	// All Timer options are infallible.
	_ = options.Apply(t, opts...)

	return t
}

// Time measures exactly one invocation of fn, appends the elapsed
// duration to the timer's history, and returns it.
//
// A panic inside fn propagates uncaught: the caller owns algorithm
// correctness, the timer only measures. The faulting run is not recorded.
func (t *Timer) Time(fn func()) time.Duration {
	start := t.now()
	fn()
	elapsed := t.now().Sub(start)

	t.history = append(t.history, elapsed)

	return elapsed
}

// AverageTime invokes fn runs times and returns the mean duration and the
// sample standard deviation across the runs.
//
// The standard deviation is 0 when runs == 1 (a single observation has no
// spread). A non-positive runs yields zero values; use Measure for the
// error-reporting form.
func (t *Timer) AverageTime(fn func(), runs int) (mean, stddev time.Duration) {
	stats, err := t.Measure(fn, runs)
	if err != nil {
		return 0, 0
	}

	return stats.Mean, stats.StdDev
}

// Stats aggregates repeated measurements of one function.
type Stats struct {
	// Mean is the arithmetic mean duration across runs.
	Mean time.Duration
	// StdDev is the sample standard deviation; 0 for a single run.
	StdDev time.Duration
	// Min and Max bound the observed durations.
	Min time.Duration
	Max time.Duration
	// Runs is the number of measurements aggregated.
	Runs int
}

// String returns a compact single-line rendering of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf("mean=%v stddev=%v min=%v max=%v runs=%d",
		s.Mean, s.StdDev, s.Min, s.Max, s.Runs)
}

// Measure invokes fn runs times with identical treatment and aggregates
// the measurements.
//
// Every run is appended to the timer's history, exactly as if Time had
// been called runs times.
//
// Parameters:
//   - fn: The function to measure
//   - runs: Number of repetitions, must be positive
//
// Returns:
//   - Stats: Mean, sample standard deviation, min, max, and run count
//   - error: errs.ErrInvalidRuns if runs <= 0
func (t *Timer) Measure(fn func(), runs int) (Stats, error) {
	if runs <= 0 {
		return Stats{}, fmt.Errorf("%w: %d", errs.ErrInvalidRuns, runs)
	}

	durations := make([]time.Duration, runs)
	for i := 0; i < runs; i++ {
		durations[i] = t.Time(fn)
	}

	return newStats(durations), nil
}

// History returns a copy of all recorded durations, oldest first.
//
// The copy is independent: neither mutating it nor calling Clear affects
// the other.
func (t *Timer) History() []time.Duration {
	out := make([]time.Duration, len(t.history))
	copy(out, t.history)

	return out
}

// Clear resets the timer's history. Previously returned histories and
// statistics are independent copies and keep their values.
func (t *Timer) Clear() {
	t.history = nil
}

// newStats aggregates a non-empty duration slice.
func newStats(durations []time.Duration) Stats {
	s := Stats{
		Runs: len(durations),
		Min:  durations[0],
		Max:  durations[0],
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}
	s.Mean = sum / time.Duration(len(durations))

	if len(durations) > 1 {
		mean := float64(sum) / float64(len(durations))
		var ss float64
		for _, d := range durations {
			diff := float64(d) - mean
			ss += diff * diff
		}
		s.StdDev = time.Duration(math.Sqrt(ss / float64(len(durations)-1)))
	}

	return s
}
