package metrics

import (
	"math"
	"sort"

	"goldengate/internal/outcome"
	"goldengate/internal/pairing"
)

// Metric names, shared with the acceptance threshold table.
const (
	NameCorrelation       = "correlation"
	NameMeanDrift         = "mean_drift"
	NameDecisionAgreement = "decision_agreement"
	NameKSDrift           = "ks_drift"
	NameFailureRateDelta  = "failure_rate_delta"
	NameMaxAbsDelta       = "max_abs_delta"
	NameLatencyDelta      = "latency_delta"
	NameJitter            = "jitter"
)

// Value is one computed statistic before any threshold is applied.
type Value struct {
	Name       string
	Value      float64
	Computable bool
	SampleSize int
}

// CaseDrift is one per-case absolute score delta, for the top-drift report.
type CaseDrift struct {
	CaseID   string
	ScoreA   float64
	ScoreB   float64
	AbsDelta float64
}

// Compute produces every campaign statistic in a fixed order: correlation,
// mean drift, decision agreement, KS drift, failure-rate delta, max absolute
// delta, latency delta, jitter.
func Compute(res *pairing.Result, a, b *outcome.Collection) []Value {
	scoresA := make([]float64, len(res.Pairs))
	scoresB := make([]float64, len(res.Pairs))
	for i, p := range res.Pairs {
		scoresA[i] = p.ScoreA
		scoresB[i] = p.ScoreB
	}

	return []Value{
		correlation(scoresA, scoresB),
		meanDrift(scoresA, scoresB),
		decisionAgreement(res.Pairs),
		ksDrift(scoresA, scoresB),
		failureRateDelta(res),
		maxAbsDelta(res.Pairs),
		latencyDelta(res.Pairs),
		jitter(a, b),
	}
}

// TopDrift returns the n worst per-case absolute score deltas, largest first.
// Ties keep catalog order so the output is deterministic.
func TopDrift(pairs []pairing.Pair, n int) []CaseDrift {
	drifts := make([]CaseDrift, len(pairs))
	for i, p := range pairs {
		drifts[i] = CaseDrift{
			CaseID:   p.CaseID,
			ScoreA:   p.ScoreA,
			ScoreB:   p.ScoreB,
			AbsDelta: math.Abs(p.ScoreB - p.ScoreA),
		}
	}
	sort.SliceStable(drifts, func(i, j int) bool {
		return drifts[i].AbsDelta > drifts[j].AbsDelta
	})
	if n > 0 && len(drifts) > n {
		drifts = drifts[:n]
	}
	return drifts
}

func correlation(scoresA, scoresB []float64) Value {
	r, ok := Pearson(scoresA, scoresB)
	return Value{Name: NameCorrelation, Value: r, Computable: ok, SampleSize: len(scoresA)}
}

func meanDrift(scoresA, scoresB []float64) Value {
	if len(scoresA) == 0 {
		return Value{Name: NameMeanDrift}
	}
	return Value{
		Name:       NameMeanDrift,
		Value:      mean(scoresB) - mean(scoresA),
		Computable: true,
		SampleSize: len(scoresA),
	}
}

func decisionAgreement(pairs []pairing.Pair) Value {
	if len(pairs) == 0 {
		return Value{Name: NameDecisionAgreement}
	}
	agree := 0
	for _, p := range pairs {
		if p.DecisionA == p.DecisionB {
			agree++
		}
	}
	return Value{
		Name:       NameDecisionAgreement,
		Value:      float64(agree) / float64(len(pairs)),
		Computable: true,
		SampleSize: len(pairs),
	}
}

func ksDrift(scoresA, scoresB []float64) Value {
	if len(scoresA) < 2 {
		return Value{Name: NameKSDrift, SampleSize: len(scoresA)}
	}
	statistic, ok := KolmogorovSmirnov(scoresA, scoresB)
	return Value{Name: NameKSDrift, Value: statistic, Computable: ok, SampleSize: len(scoresA)}
}

func failureRateDelta(res *pairing.Result) Value {
	return Value{
		Name:       NameFailureRateDelta,
		Value:      res.FailureRate(outcome.VersionB) - res.FailureRate(outcome.VersionA),
		Computable: res.Total() > 0,
		SampleSize: res.Total(),
	}
}

func maxAbsDelta(pairs []pairing.Pair) Value {
	if len(pairs) == 0 {
		return Value{Name: NameMaxAbsDelta}
	}
	var worst float64
	for _, p := range pairs {
		if d := math.Abs(p.ScoreB - p.ScoreA); d > worst {
			worst = d
		}
	}
	return Value{Name: NameMaxAbsDelta, Value: worst, Computable: true, SampleSize: len(pairs)}
}

func latencyDelta(pairs []pairing.Pair) Value {
	if len(pairs) == 0 {
		return Value{Name: NameLatencyDelta}
	}
	latA := make([]float64, len(pairs))
	latB := make([]float64, len(pairs))
	for i, p := range pairs {
		latA[i] = p.LatencyA
		latB[i] = p.LatencyB
	}
	meanA := mean(latA)
	if meanA <= 0 {
		return Value{Name: NameLatencyDelta, SampleSize: len(pairs)}
	}
	return Value{
		Name:       NameLatencyDelta,
		Value:      (mean(latB) - meanA) / meanA,
		Computable: true,
		SampleSize: len(pairs),
	}
}

// jitter averages the per-case score variance across repeated runs. Reported
// as not computable when no repetition data exists; absence of jitter runs is
// a campaign design choice, not a failure.
func jitter(a, b *outcome.Collection) Value {
	var variances []float64
	for _, c := range []*outcome.Collection{a, b} {
		for _, id := range c.IDs() {
			reps := c.RepetitionScores(id)
			if len(reps) == 0 {
				continue
			}
			series := reps
			if primary, ok := c.Get(id); ok && !primary.ASRFailed {
				series = append([]float64{primary.Score}, reps...)
			}
			if len(series) < 2 {
				continue
			}
			variances = append(variances, variance(series))
		}
	}
	if len(variances) == 0 {
		return Value{Name: NameJitter}
	}
	return Value{
		Name:       NameJitter,
		Value:      mean(variances),
		Computable: true,
		SampleSize: len(variances),
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}
