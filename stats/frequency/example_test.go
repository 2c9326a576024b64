package frequency_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-hrv/dsp/spectrum"
	frequencystats "github.com/cwbudde/algo-hrv/stats/frequency"
)

func ExampleCalculate() {
	ps := spectrum.PowerSpectrum{
		SampleRate: 4,
		Freq:       []float64{0, 0.02, 0.1, 0.2, 0.3},
		Power:      []float64{50, 4, 6, 2, 1},
	}
	s := frequencystats.Calculate(ps, frequencystats.DefaultBands())
	fmt.Printf("VLF=%.1f LF=%.1f HF=%.1f LFHF=%.2f Power=%.1f\n", s.VLF, s.LF, s.HF, s.LFHF, s.Total)

	// Output:
	// VLF=4.0 LF=6.0 HF=3.0 LFHF=2.00 Power=63.0
}

func ExampleStats_Ratio() {
	s := frequencystats.Stats{LF: 2, HF: 0}
	r, err := s.Ratio()
	fmt.Println(r, errors.Is(err, frequencystats.ErrUndefinedRatio))

	// Output:
	// +Inf true
}
