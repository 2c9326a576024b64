package hrv

import (
	"errors"
	"fmt"
)

// ErrMissingDescriptor indicates a requested descriptor without a producer.
var ErrMissingDescriptor = errors.New("hrv: missing descriptor")

// Set is an ordered, immutable mapping from descriptor name to value.
type Set struct {
	names  []Name
	values map[Name]float64
	issues map[Name]error
}

// Aggregate joins values into a Set ordered by order. Every name in order
// must have a value; issues attaches a non-fatal condition to a name, reported
// later by [Set.Check]. Values and issues are copied.
func Aggregate(order []Name, values map[Name]float64, issues map[Name]error) (Set, error) {
	s := Set{
		names:  make([]Name, 0, len(order)),
		values: make(map[Name]float64, len(order)),
	}

	for _, n := range order {
		v, ok := values[n]
		if !ok {
			return Set{}, fmt.Errorf("%w: %s", ErrMissingDescriptor, n)
		}
		if _, dup := s.values[n]; dup {
			continue
		}
		s.names = append(s.names, n)
		s.values[n] = v

		if err := issues[n]; err != nil {
			if s.issues == nil {
				s.issues = make(map[Name]error)
			}
			s.issues[n] = err
		}
	}

	return s, nil
}

// Len returns the number of descriptors.
func (s Set) Len() int { return len(s.names) }

// Names returns the descriptor names in order.
func (s Set) Names() []Name {
	out := make([]Name, len(s.names))
	copy(out, s.names)
	return out
}

// Value returns the value of n and whether the set holds it.
func (s Set) Value(n Name) (float64, bool) {
	v, ok := s.values[n]
	return v, ok
}

// Check returns the condition recorded for n, such as an undefined LF/HF
// ratio, or ErrMissingDescriptor when the set does not hold n.
func (s Set) Check(n Name) error {
	if _, ok := s.values[n]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingDescriptor, n)
	}
	return s.issues[n]
}

// Each calls fn for every descriptor in order.
func (s Set) Each(fn func(Name, float64)) {
	for _, n := range s.names {
		fn(n, s.values[n])
	}
}
