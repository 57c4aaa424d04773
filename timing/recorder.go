package timing

import (
	"fmt"

	"github.com/arloliu/ordo/errs"
	"github.com/arloliu/ordo/internal/hash"
)

// Recorder collects benchmark results into named series for suite runs.
//
// Series are keyed by the 64-bit xxhash of the algorithm name. The
// recorder keeps the ID→name mapping and rejects a second, different
// name that hashes to an already-used ID with errs.ErrNameCollision;
// recording more results under the SAME name extends its series, which
// is the normal path of a size sweep.
type Recorder struct {
	series map[uint64][]SizeResult // ID → recorded results
	names  map[uint64]string       // ID → name, for collision detection
	order  []string                // series names in first-recorded order
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		series: make(map[uint64][]SizeResult),
		names:  make(map[uint64]string),
	}
}

// Record appends r to the series registered under name.
//
// Parameters:
//   - name: Algorithm name the result belongs to, non-empty
//   - r: The per-size result to append
//
// Returns:
//   - error: errs.ErrInvalidConfig on an empty name,
//     errs.ErrNameCollision if a different name already occupies the
//     name's hashed ID
func (rec *Recorder) Record(name string, r SizeResult) error {
	if name == "" {
		return fmt.Errorf("%w: empty series name", errs.ErrInvalidConfig)
	}

	id := hash.ID(name)
	if existing, exists := rec.names[id]; exists {
		if existing != name {
			return fmt.Errorf("%w: %q and %q share ID %#x", errs.ErrNameCollision, existing, name, id)
		}
	} else {
		rec.names[id] = name
		rec.order = append(rec.order, name)
	}

	rec.series[id] = append(rec.series[id], r)

	return nil
}

// RecordAll appends every result of rs to the series under name, stopping
// at the first error.
func (rec *Recorder) RecordAll(name string, rs SizeResults) error {
	for _, r := range rs {
		if err := rec.Record(name, r); err != nil {
			return err
		}
	}

	return nil
}

// Series returns a copy of the results recorded under name, in recording
// order, or nil if the name was never recorded.
func (rec *Recorder) Series(name string) SizeResults {
	stored, exists := rec.series[hash.ID(name)]
	if !exists {
		return nil
	}

	out := make(SizeResults, len(stored))
	copy(out, stored)

	return out
}

// Names returns the recorded series names in first-recorded order.
func (rec *Recorder) Names() []string {
	out := make([]string, len(rec.order))
	copy(out, rec.order)

	return out
}

// Len returns the number of distinct series.
func (rec *Recorder) Len() int {
	return len(rec.order)
}

// Reset clears all series so the recorder can collect a new suite run.
// Map capacity is preserved to avoid reallocation across runs.
func (rec *Recorder) Reset() {
	for k := range rec.series {
		delete(rec.series, k)
	}
	for k := range rec.names {
		delete(rec.names, k)
	}
	rec.order = rec.order[:0]
}
