package quality_test

import (
	"math"
	"testing"

	"github.com/signalscope/signalscope/core"
	"github.com/signalscope/signalscope/quality"
)

// syntheticSeries builds n sine samples over 2 s for benchmarking.
func syntheticSeries(n int, phase float64) []core.Point {
	s := make([]core.Point, n)
	for i := range s {
		t := 2 * float64(i) / float64(n)
		s[i] = core.Point{X: t, Y: math.Sin(2*math.Pi*t + phase)}
	}

	return s
}

func BenchmarkRMSE_400(b *testing.B) {
	ref := syntheticSeries(400, 0)
	cand := syntheticSeries(400, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quality.RMSE(ref, cand); err != nil {
			b.Fatalf("RMSE failed: %v", err)
		}
	}
}

func BenchmarkWarpDistance_200(b *testing.B) {
	ref := syntheticSeries(200, 0)
	cand := syntheticSeries(200, 0.1)
	opts := quality.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quality.WarpDistance(ref, cand, opts); err != nil {
			b.Fatalf("WarpDistance failed: %v", err)
		}
	}
}

func BenchmarkWarpDistance_200_Windowed(b *testing.B) {
	ref := syntheticSeries(200, 0)
	cand := syntheticSeries(200, 0.1)
	opts := quality.Options{Window: 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quality.WarpDistance(ref, cand, opts); err != nil {
			b.Fatalf("WarpDistance failed: %v", err)
		}
	}
}
