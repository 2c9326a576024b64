package nonlinear

import (
	"strconv"
	"testing"
)

func BenchmarkApproximateEntropy(b *testing.B) {
	for _, n := range []int{250, 500, 1000} {
		x := sineSeries(n, 37.3)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = ApproximateEntropy(x, 2, 1, 0.2)
			}
		})
	}
}

func BenchmarkFractalDimension(b *testing.B) {
	for _, n := range []int{250, 500, 1000} {
		x := sineSeries(n, 37.3)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = FractalDimension(x, 10, 3, 0.005, 0.75)
			}
		})
	}
}
