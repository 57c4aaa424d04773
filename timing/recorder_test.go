package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ordo/errs"
	"github.com/arloliu/ordo/internal/hash"
)

func TestRecorder_Record(t *testing.T) {
	rec := NewRecorder()

	require.NoError(t, rec.Record("bubble_sort", SizeResult{Size: 100, Mean: time.Millisecond}))
	require.NoError(t, rec.Record("bubble_sort", SizeResult{Size: 200, Mean: 4 * time.Millisecond}))
	require.NoError(t, rec.Record("merge_sort", SizeResult{Size: 100, Mean: 100 * time.Microsecond}))

	require.Equal(t, 2, rec.Len())
	require.Equal(t, []string{"bubble_sort", "merge_sort"}, rec.Names())

	series := rec.Series("bubble_sort")
	require.Len(t, series, 2)
	require.Equal(t, 100, series[0].Size)
	require.Equal(t, 200, series[1].Size)
}

func TestRecorder_Record_EmptyName(t *testing.T) {
	rec := NewRecorder()

	err := rec.Record("", SizeResult{Size: 1})
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestRecorder_Record_Collision(t *testing.T) {
	rec := NewRecorder()

	// A genuine 64-bit xxhash collision cannot be constructed here, so
	// plant a conflicting name on the ID this name will hash to.
	rec.names[hash.ID("quick_sort")] = "someone_else"

	err := rec.Record("quick_sort", SizeResult{Size: 1})
	require.ErrorIs(t, err, errs.ErrNameCollision)
	require.Contains(t, err.Error(), "quick_sort")
	require.Contains(t, err.Error(), "someone_else")
}

func TestRecorder_RecordAll(t *testing.T) {
	rec := NewRecorder()
	rs := SizeResults{
		{Size: 10, Mean: time.Millisecond},
		{Size: 20, Mean: 2 * time.Millisecond},
		{Size: 40, Mean: 4 * time.Millisecond},
	}

	require.NoError(t, rec.RecordAll("linear_search", rs))
	require.Equal(t, rs, rec.Series("linear_search"))
}

func TestRecorder_Series_Copy(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, rec.Record("fib", SizeResult{Size: 10, Mean: time.Millisecond}))

	series := rec.Series("fib")
	series[0].Size = 999

	require.Equal(t, 10, rec.Series("fib")[0].Size,
		"mutating a returned series must not affect the recorder")
}

func TestRecorder_Series_Unknown(t *testing.T) {
	rec := NewRecorder()

	require.Nil(t, rec.Series("never_recorded"))
}

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, rec.Record("a", SizeResult{Size: 1}))
	require.NoError(t, rec.Record("b", SizeResult{Size: 2}))

	rec.Reset()

	require.Equal(t, 0, rec.Len())
	require.Empty(t, rec.Names())
	require.Nil(t, rec.Series("a"))

	// The recorder is reusable after a reset.
	require.NoError(t, rec.Record("a", SizeResult{Size: 3}))
	require.Equal(t, []string{"a"}, rec.Names())
}
