package acceptance_test

import (
	"strings"
	"testing"

	"goldengate/internal/acceptance"
	"goldengate/internal/config"
	"goldengate/internal/metrics"
)

func defaultTable(t *testing.T) *acceptance.Table {
	t.Helper()
	cfg := config.Default()
	table, err := acceptance.Compile(cfg.Thresholds)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return table
}

func TestCompileRejectsMissingPrimary(t *testing.T) {
	cfg := config.Default()
	delete(cfg.Thresholds, metrics.NameCorrelation)
	_, err := acceptance.Compile(cfg.Thresholds)
	if err == nil {
		t.Fatal("expected error for missing primary rule")
	}
	if !strings.Contains(err.Error(), metrics.NameCorrelation) {
		t.Fatalf("expected metric name in error, got %v", err)
	}
}

func TestCompileRejectsBadRule(t *testing.T) {
	cfg := config.Default()
	cfg.Thresholds["correlation"] = config.ThresholdRule{Op: "approx", Bound: 1}
	if _, err := acceptance.Compile(cfg.Thresholds); err == nil {
		t.Fatal("expected error for unknown op")
	}
}

func TestEvaluateAppliesRules(t *testing.T) {
	table := defaultTable(t)
	values := []metrics.Value{
		{Name: metrics.NameCorrelation, Value: 0.995, Computable: true, SampleSize: 100},
		{Name: metrics.NameMeanDrift, Value: 0.3, Computable: true, SampleSize: 100},
		{Name: metrics.NameDecisionAgreement, Value: 0.97, Computable: true, SampleSize: 100},
		{Name: metrics.NameKSDrift, Value: 0.05, Computable: true, SampleSize: 100},
		{Name: metrics.NameFailureRateDelta, Value: 0.001, Computable: true, SampleSize: 100},
		{Name: metrics.NameMaxAbsDelta, Value: 2.0, Computable: true, SampleSize: 100},
		{Name: metrics.NameLatencyDelta, Value: 0.25, Computable: true, SampleSize: 100},
	}
	results := table.Evaluate(values)
	if len(results) != len(values) {
		t.Fatalf("expected %d results, got %d", len(values), len(results))
	}

	check := func(name string, wantPassed, wantPrimary bool) {
		t.Helper()
		for _, r := range results {
			if r.Name != name {
				continue
			}
			if r.Passed != wantPassed {
				t.Fatalf("%s: passed=%v want %v", name, r.Passed, wantPassed)
			}
			if r.Primary != wantPrimary {
				t.Fatalf("%s: primary=%v want %v", name, r.Primary, wantPrimary)
			}
			return
		}
		t.Fatalf("metric %s missing", name)
	}
	check(metrics.NameCorrelation, true, true)
	check(metrics.NameMeanDrift, true, true)
	check(metrics.NameDecisionAgreement, false, true)
	check(metrics.NameKSDrift, true, true)
	check(metrics.NameFailureRateDelta, true, true)
	check(metrics.NameMaxAbsDelta, true, true)
	check(metrics.NameLatencyDelta, false, false)
}

func TestEvaluateWithinBand(t *testing.T) {
	table := defaultTable(t)
	for _, tc := range []struct {
		value float64
		want  bool
	}{
		{-0.5, true},
		{0.5, true},
		{0, true},
		{0.51, false},
		{-0.6, false},
	} {
		results := table.Evaluate([]metrics.Value{
			{Name: metrics.NameMeanDrift, Value: tc.value, Computable: true, SampleSize: 10},
		})
		if results[0].Passed != tc.want {
			t.Fatalf("mean drift %v: passed=%v want %v", tc.value, results[0].Passed, tc.want)
		}
	}
}

func TestEvaluateNotComputableFails(t *testing.T) {
	table := defaultTable(t)
	results := table.Evaluate([]metrics.Value{
		{Name: metrics.NameCorrelation, Computable: false, SampleSize: 1},
	})
	if results[0].Passed {
		t.Fatal("not-computable metric must never pass")
	}
}

func TestEvaluateUnboundedSecondaryIsInformative(t *testing.T) {
	cfg := config.Default()
	delete(cfg.Thresholds, metrics.NameJitter)
	table, err := acceptance.Compile(cfg.Thresholds)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	results := table.Evaluate([]metrics.Value{
		{Name: metrics.NameJitter, Value: 100, Computable: true, SampleSize: 5},
	})
	if !results[0].Passed {
		t.Fatal("unbounded advisory metric must not fail")
	}
	if results[0].Threshold != "" {
		t.Fatalf("expected empty threshold expression, got %q", results[0].Threshold)
	}
	if results[0].Primary {
		t.Fatal("jitter must be secondary")
	}
}

func TestIsPrimary(t *testing.T) {
	if acceptance.IsPrimary(metrics.NameLatencyDelta) || acceptance.IsPrimary(metrics.NameJitter) {
		t.Fatal("latency and jitter must be secondary")
	}
	if !acceptance.IsPrimary(metrics.NameCorrelation) {
		t.Fatal("correlation must be primary")
	}
	if !acceptance.IsPrimary("brand_new_metric") {
		t.Fatal("unknown metrics must default to primary")
	}
}
