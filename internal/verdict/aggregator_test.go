package verdict_test

import (
	"strings"
	"testing"

	"goldengate/internal/acceptance"
	"goldengate/internal/verdict"
)

func passing(name string) acceptance.Result {
	return acceptance.Result{Name: name, Computable: true, Passed: true, Primary: acceptance.IsPrimary(name), SampleSize: 100}
}

func failing(name string, value float64) acceptance.Result {
	return acceptance.Result{Name: name, Value: value, Computable: true, Passed: false, Primary: acceptance.IsPrimary(name), Threshold: ">= 0.98", SampleSize: 100}
}

func allPassing() []acceptance.Result {
	return []acceptance.Result{
		passing("correlation"),
		passing("mean_drift"),
		passing("decision_agreement"),
		passing("ks_drift"),
		passing("failure_rate_delta"),
		passing("max_abs_delta"),
		passing("latency_delta"),
	}
}

func TestDecideAcceptsWhenAllPrimariesPass(t *testing.T) {
	v := verdict.Decide(allPassing(), verdict.ImpactNeutral, verdict.SecondaryAdvisory)
	if v.Status != verdict.StatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", v.Status)
	}
	if v.Action != verdict.ActionPromote {
		t.Fatalf("expected promote, got %s", v.Action)
	}
	if len(v.Reasons) != 0 {
		t.Fatalf("unexpected reasons: %v", v.Reasons)
	}
}

func TestDecideNeutralFailureRollsBack(t *testing.T) {
	results := allPassing()
	results[0] = failing("correlation", 0.70)
	v := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryAdvisory)
	if v.Status != verdict.StatusRejected {
		t.Fatalf("expected REJECTED, got %s", v.Status)
	}
	if v.Action != verdict.ActionRollback {
		t.Fatalf("expected rollback, got %s", v.Action)
	}
	if len(v.Reasons) != 1 || !strings.Contains(v.Reasons[0], "correlation") {
		t.Fatalf("unexpected reasons: %v", v.Reasons)
	}
}

func TestDecideExpectedImpactFailureEscalates(t *testing.T) {
	results := allPassing()
	results[3] = failing("ks_drift", 0.09)
	v := verdict.Decide(results, verdict.ImpactExpected, verdict.SecondaryAdvisory)
	if v.Status != verdict.StatusRejected {
		t.Fatalf("expected REJECTED, got %s", v.Status)
	}
	if v.Action != verdict.ActionEscalate {
		t.Fatalf("expected escalate, got %s", v.Action)
	}
}

func TestDecideNotComputablePrimaryRejects(t *testing.T) {
	results := allPassing()
	results[0] = acceptance.Result{Name: "correlation", Computable: false, Primary: true, SampleSize: 1}
	v := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryAdvisory)
	if v.Status != verdict.StatusRejected {
		t.Fatalf("expected REJECTED for not-computable primary, got %s", v.Status)
	}
	if !strings.Contains(v.Reasons[0], "not computable") {
		t.Fatalf("unexpected reason: %v", v.Reasons)
	}
}

func TestDecideAdvisorySecondaryNeverBlocks(t *testing.T) {
	results := allPassing()
	results[6] = failing("latency_delta", 0.25)
	v := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryAdvisory)
	if v.Status != verdict.StatusAccepted {
		t.Fatalf("expected ACCEPTED in advisory mode, got %s", v.Status)
	}
	if len(v.Reasons) != 1 || !strings.Contains(v.Reasons[0], "advisory") {
		t.Fatalf("expected advisory reason, got %v", v.Reasons)
	}
}

func TestDecideStrictSecondaryEscalates(t *testing.T) {
	results := allPassing()
	results[6] = failing("latency_delta", 0.25)
	v := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryStrict)
	if v.Status != verdict.StatusRejected {
		t.Fatalf("expected REJECTED in strict mode, got %s", v.Status)
	}
	if v.Action != verdict.ActionEscalate {
		t.Fatalf("strict secondary failure must escalate, not roll back, got %s", v.Action)
	}
}

func TestDecideNotApplicableSecondaryIsNotFailure(t *testing.T) {
	results := allPassing()
	results = append(results, acceptance.Result{Name: "jitter", Computable: false, Primary: false})
	v := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryStrict)
	if v.Status != verdict.StatusAccepted {
		t.Fatalf("not-applicable jitter must not block, got %s", v.Status)
	}
}

func TestDecideDeterministic(t *testing.T) {
	results := allPassing()
	results[1] = failing("mean_drift", 0.9)
	first := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryAdvisory)
	for i := 0; i < 5; i++ {
		again := verdict.Decide(results, verdict.ImpactNeutral, verdict.SecondaryAdvisory)
		if again.Status != first.Status || again.Action != first.Action || len(again.Reasons) != len(first.Reasons) {
			t.Fatalf("verdict not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestParseImpactClass(t *testing.T) {
	if c, err := verdict.ParseImpactClass(" Neutral "); err != nil || c != verdict.ImpactNeutral {
		t.Fatalf("ParseImpactClass neutral: %v %v", c, err)
	}
	if c, err := verdict.ParseImpactClass("expected-impact"); err != nil || c != verdict.ImpactExpected {
		t.Fatalf("ParseImpactClass expected: %v %v", c, err)
	}
	if _, err := verdict.ParseImpactClass("unknown"); err == nil {
		t.Fatal("expected error for unknown class")
	}
}

func TestParseSecondaryMode(t *testing.T) {
	if m, err := verdict.ParseSecondaryMode("STRICT"); err != nil || m != verdict.SecondaryStrict {
		t.Fatalf("ParseSecondaryMode strict: %v %v", m, err)
	}
	if _, err := verdict.ParseSecondaryMode("relaxed"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
