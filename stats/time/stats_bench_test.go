package time

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-hrv/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	sizes := []int{64, 256, 1024, 10000}
	for _, n := range sizes {
		ibi := testutil.JitteredIBI(1, 800, 80, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Calculate(ibi)
			}
		})
	}
}

func BenchmarkRMSSD(b *testing.B) {
	ibi := testutil.JitteredIBI(2, 800, 80, 10000)

	b.ReportAllocs()
	b.SetBytes(int64(len(ibi) * 8))

	for range b.N {
		_ = RMSSD(ibi)
	}
}
