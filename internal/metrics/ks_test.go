package metrics_test

import (
	"math"
	"testing"

	"goldengate/internal/metrics"
)

func TestKSIdenticalSamples(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	d, ok := metrics.KolmogorovSmirnov(xs, xs)
	if !ok {
		t.Fatal("expected computable statistic")
	}
	if d != 0 {
		t.Fatalf("expected D=0 for identical samples, got %v", d)
	}
}

func TestKSDisjointSamples(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 11, 12}
	d, ok := metrics.KolmogorovSmirnov(xs, ys)
	if !ok {
		t.Fatal("expected computable statistic")
	}
	if math.Abs(d-1.0) > 1e-12 {
		t.Fatalf("expected D=1 for disjoint samples, got %v", d)
	}
}

func TestKSKnownValue(t *testing.T) {
	// ECDFs diverge most after 2: A has seen 2/3, B has seen 0/3.
	xs := []float64{1, 2, 4}
	ys := []float64{3, 4, 5}
	d, ok := metrics.KolmogorovSmirnov(xs, ys)
	if !ok {
		t.Fatal("expected computable statistic")
	}
	if math.Abs(d-2.0/3.0) > 1e-12 {
		t.Fatalf("expected D=2/3, got %v", d)
	}
}

func TestKSSymmetry(t *testing.T) {
	xs := []float64{1, 3, 3, 7, 9}
	ys := []float64{2, 3, 8, 8}
	dxy, _ := metrics.KolmogorovSmirnov(xs, ys)
	dyx, _ := metrics.KolmogorovSmirnov(ys, xs)
	if math.Abs(dxy-dyx) > 1e-12 {
		t.Fatalf("KS not symmetric: %v vs %v", dxy, dyx)
	}
}

func TestKSBounds(t *testing.T) {
	xs := []float64{1, 4, 4, 6}
	ys := []float64{2, 4, 5, 8}
	d, ok := metrics.KolmogorovSmirnov(xs, ys)
	if !ok {
		t.Fatal("expected computable statistic")
	}
	if d < 0 || d > 1 {
		t.Fatalf("statistic out of bounds: %v", d)
	}
}

func TestKSEmptySample(t *testing.T) {
	if _, ok := metrics.KolmogorovSmirnov(nil, []float64{1}); ok {
		t.Fatal("empty sample must be undefined")
	}
}
