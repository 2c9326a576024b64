package hrv

import (
	"errors"
	"testing"
)

func TestAggregateOrderAndValues(t *testing.T) {
	values := map[Name]float64{HRMean: 75, RMSSD: 14, LF: 3, HF: 2}
	s, err := Aggregate([]Name{LF, HRMean, HF}, values, nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	want := []Name{LF, HRMean, HF}
	for i, n := range s.Names() {
		if n != want[i] {
			t.Fatalf("Names()[%d] = %s, want %s", i, n, want[i])
		}
	}
	if _, ok := s.Value(RMSSD); ok {
		t.Fatal("set holds a descriptor that was not requested")
	}

	var got []Name
	s.Each(func(n Name, v float64) {
		got = append(got, n)
		if v != values[n] {
			t.Fatalf("Each %s = %v, want %v", n, v, values[n])
		}
	})
	if len(got) != 3 || got[0] != LF {
		t.Fatalf("Each visited %v", got)
	}
}

func TestAggregateMissing(t *testing.T) {
	_, err := Aggregate([]Name{HRMean, ApEn}, map[Name]float64{HRMean: 75}, nil)
	if !errors.Is(err, ErrMissingDescriptor) {
		t.Fatalf("err = %v, want ErrMissingDescriptor", err)
	}
}

func TestAggregateCopiesInputs(t *testing.T) {
	values := map[Name]float64{HRMean: 75}
	order := []Name{HRMean}
	s, err := Aggregate(order, values, nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	values[HRMean] = 1
	order[0] = HF
	names := s.Names()
	names[0] = LF

	if v, _ := s.Value(HRMean); v != 75 {
		t.Fatalf("value changed through input map: %v", v)
	}
	if s.Names()[0] != HRMean {
		t.Fatalf("order changed: %v", s.Names())
	}
}

func TestSetCheck(t *testing.T) {
	issue := errors.New("bad ratio")
	s, err := Aggregate([]Name{LF, LFHF}, map[Name]float64{LF: 1, LFHF: 2}, map[Name]error{LFHF: issue, HF: issue})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if err := s.Check(LF); err != nil {
		t.Fatalf("Check(LF) = %v, want nil", err)
	}
	if err := s.Check(LFHF); !errors.Is(err, issue) {
		t.Fatalf("Check(LFHF) = %v, want issue", err)
	}
	if err := s.Check(HF); !errors.Is(err, ErrMissingDescriptor) {
		t.Fatalf("Check(HF) = %v, want ErrMissingDescriptor", err)
	}
}

func TestZeroSet(t *testing.T) {
	var s Set
	if s.Len() != 0 || len(s.Names()) != 0 {
		t.Fatal("zero Set should be empty")
	}
	if _, ok := s.Value(HRMean); ok {
		t.Fatal("zero Set should hold no values")
	}
}

func TestParseName(t *testing.T) {
	for _, n := range append(append([]Name(nil), DefaultOrder...), NonlinearNames...) {
		got, err := ParseName(n.String())
		if err != nil || got != n {
			t.Fatalf("ParseName(%q) = %v, %v", n, got, err)
		}
	}
	if _, err := ParseName("rmssd"); err == nil {
		t.Fatal("ParseName should be case sensitive")
	}
	if !ApEn.Nonlinear() || HF.Nonlinear() {
		t.Fatal("Nonlinear classification wrong")
	}
}
