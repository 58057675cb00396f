package metrics

import "math"

// varianceFloor guards against series that are constant up to rounding noise.
const varianceFloor = 1e-12

// Pearson returns the product-moment correlation between xs and ys. The
// second return value is false when the correlation is undefined: fewer than
// two points or zero variance in either series.
func Pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return 0, false
	}
	var mx, my float64
	for i := 0; i < n; i++ {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var vx, vy, cov float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		vx += dx * dx
		vy += dy * dy
		cov += dx * dy
	}
	if vx <= varianceFloor || vy <= varianceFloor {
		return 0, false
	}
	return cov / math.Sqrt(vx*vy), true
}
