package acceptance

import (
	"goldengate/internal/metrics"
)

// Result is one metric checked against its threshold.
type Result struct {
	Name       string
	Value      float64
	Computable bool
	SampleSize int
	// Threshold is the human-readable rule expression, empty for unbounded
	// advisory metrics.
	Threshold string
	Passed    bool
	Primary   bool
}

// Evaluate checks every computed value against the table, preserving the
// engine's metric order. Not-computable metrics fail their check; whether
// that blocks the verdict is the aggregator's call.
func (t *Table) Evaluate(values []metrics.Value) []Result {
	results := make([]Result, 0, len(values))
	for _, v := range values {
		res := Result{
			Name:       v.Name,
			Value:      v.Value,
			Computable: v.Computable,
			SampleSize: v.SampleSize,
			Primary:    IsPrimary(v.Name),
		}
		r, bound := t.rules[v.Name]
		if bound {
			res.Threshold = r.expr
		}
		switch {
		case !v.Computable:
			res.Passed = false
		case !bound:
			// Advisory metric with no configured bound: informative only.
			res.Passed = true
		default:
			res.Passed = r.check(v.Value)
		}
		results = append(results, res)
	}
	return results
}
