package recording

import (
	"testing"

	"github.com/cwbudde/algo-hrv/internal/testutil"
)

func TestHistoryBelowCapacity(t *testing.T) {
	h := NewHistory(5)
	h.Push(800, 810)
	h.Push(790)

	if h.Len() != 3 || h.Cap() != 5 || h.Dropped() != 0 {
		t.Fatalf("Len/Cap/Dropped = %d/%d/%d", h.Len(), h.Cap(), h.Dropped())
	}
	testutil.RequireSliceNearlyEqual(t, h.Snapshot(), []float64{800, 810, 790}, 0)
	testutil.RequireSliceNearlyEqual(t, h.Last(2), []float64{810, 790}, 0)
	testutil.RequireSliceNearlyEqual(t, h.Last(0), []float64{800, 810, 790}, 0)
	testutil.RequireSliceNearlyEqual(t, h.Last(10), []float64{800, 810, 790}, 0)
}

func TestHistoryKeepsMostRecent(t *testing.T) {
	const capacity = 4
	h := NewHistory(capacity)

	for i := 1; i <= 23; i++ {
		h.Push(float64(i))

		want := make([]float64, 0, capacity)
		for v := max(1, i-capacity+1); v <= i; v++ {
			want = append(want, float64(v))
		}
		testutil.RequireSliceNearlyEqual(t, h.Snapshot(), want, 0)
	}
	if h.Dropped() != 23-capacity {
		t.Fatalf("Dropped = %d, want %d", h.Dropped(), 23-capacity)
	}
}

func TestHistorySnapshotIsCopy(t *testing.T) {
	h := NewHistory(3)
	h.Push(1, 2, 3)
	s := h.Snapshot()
	s[0] = 99
	if h.Snapshot()[0] != 1 {
		t.Fatal("Snapshot aliases the history")
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(2)
	h.Push(1, 2, 3)
	h.Reset()
	if h.Len() != 0 || h.Dropped() != 0 {
		t.Fatalf("after Reset Len=%d Dropped=%d", h.Len(), h.Dropped())
	}
	h.Push(7)
	testutil.RequireSliceNearlyEqual(t, h.Snapshot(), []float64{7}, 0)
}

func TestHistoryDefaultCapacity(t *testing.T) {
	if NewHistory(0).Cap() != DefaultCapacity {
		t.Fatal("non-positive capacity should select DefaultCapacity")
	}
}
