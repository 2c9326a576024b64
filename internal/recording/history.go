package recording

// DefaultCapacity is the interval history bound of a live session.
const DefaultCapacity = 10000

// History keeps the most recent intervals up to a fixed capacity. Older
// values are discarded once the capacity is reached.
type History struct {
	buf      []float64 // held values are buf[start:]
	start    int
	capacity int
	dropped  int
}

// NewHistory returns an empty History bounded to capacity values.
// A non-positive capacity selects DefaultCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Push appends ibi values, discarding the oldest ones beyond the capacity.
func (h *History) Push(ibi ...float64) {
	for _, v := range ibi {
		if len(h.buf)-h.start == h.capacity {
			h.start++
			h.dropped++
		}
		// Shift the window to the front once the slack is used up.
		if len(h.buf) == 2*h.capacity {
			n := copy(h.buf, h.buf[h.start:])
			h.buf = h.buf[:n]
			h.start = 0
		}
		h.buf = append(h.buf, v)
	}
}

// Len returns the number of held intervals.
func (h *History) Len() int { return len(h.buf) - h.start }

// Cap returns the capacity bound.
func (h *History) Cap() int { return h.capacity }

// Dropped returns how many intervals were discarded so far.
func (h *History) Dropped() int { return h.dropped }

// Snapshot returns a copy of the held intervals, oldest first.
func (h *History) Snapshot() []float64 {
	out := make([]float64, h.Len())
	copy(out, h.buf[h.start:])
	return out
}

// Last returns a copy of the n most recent intervals, or all of them when
// n <= 0 or n exceeds Len.
func (h *History) Last(n int) []float64 {
	if n <= 0 || n >= h.Len() {
		return h.Snapshot()
	}
	out := make([]float64, n)
	copy(out, h.buf[len(h.buf)-n:])
	return out
}

// Reset empties the history, keeping its backing array.
func (h *History) Reset() {
	h.buf = h.buf[:0]
	h.start = 0
	h.dropped = 0
}
