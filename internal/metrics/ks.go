package metrics

import (
	"math"
	"sort"
)

// KolmogorovSmirnov returns the two-sample KS statistic: the maximum absolute
// difference between the empirical CDFs of xs and ys over the combined
// sample. The second return value is false when either sample is empty.
func KolmogorovSmirnov(xs, ys []float64) (float64, bool) {
	if len(xs) == 0 || len(ys) == 0 {
		return 0, false
	}

	sx := append([]float64(nil), xs...)
	sy := append([]float64(nil), ys...)
	sort.Float64s(sx)
	sort.Float64s(sy)

	var statistic float64
	i, j := 0, 0
	nx, ny := float64(len(sx)), float64(len(sy))
	for i < len(sx) && j < len(sy) {
		v := math.Min(sx[i], sy[j])
		for i < len(sx) && sx[i] <= v {
			i++
		}
		for j < len(sy) && sy[j] <= v {
			j++
		}
		diff := math.Abs(float64(i)/nx - float64(j)/ny)
		if diff > statistic {
			statistic = diff
		}
	}
	return statistic, true
}
