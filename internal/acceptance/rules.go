package acceptance

import (
	"fmt"

	"goldengate/internal/config"
	"goldengate/internal/metrics"
)

// secondaryMetrics are advisory statistics that never block acceptance on
// their own. Every other metric is primary.
var secondaryMetrics = map[string]bool{
	metrics.NameLatencyDelta: true,
	metrics.NameJitter:       true,
}

// requiredPrimaries must all carry a rule in any usable threshold table.
var requiredPrimaries = []string{
	metrics.NameCorrelation,
	metrics.NameMeanDrift,
	metrics.NameDecisionAgreement,
	metrics.NameKSDrift,
	metrics.NameFailureRateDelta,
	metrics.NameMaxAbsDelta,
}

// IsPrimary reports whether the named metric blocks acceptance on failure.
// Unknown metric names are treated as primary so a misconfigured table can
// never weaken the gate.
func IsPrimary(name string) bool {
	return !secondaryMetrics[name]
}

// rule is one compiled comparison predicate.
type rule struct {
	expr  string
	check func(float64) bool
}

// Table holds the compiled acceptance rules keyed by metric name.
type Table struct {
	rules map[string]rule
}

// Compile builds a Table from configuration. Every primary metric must have a
// rule; secondary metrics may be left unbounded.
func Compile(cfg map[string]config.ThresholdRule) (*Table, error) {
	compiled := make(map[string]rule, len(cfg))
	for name, tr := range cfg {
		r, err := compileRule(tr)
		if err != nil {
			return nil, fmt.Errorf("threshold %s: %w", name, err)
		}
		compiled[name] = r
	}
	for _, name := range requiredPrimaries {
		if _, ok := compiled[name]; !ok {
			return nil, fmt.Errorf("threshold table missing primary metric %s", name)
		}
	}
	return &Table{rules: compiled}, nil
}

func compileRule(tr config.ThresholdRule) (rule, error) {
	switch tr.Op {
	case "gte":
		bound := tr.Bound
		return rule{
			expr:  fmt.Sprintf(">= %v", bound),
			check: func(v float64) bool { return v >= bound },
		}, nil
	case "lte":
		bound := tr.Bound
		return rule{
			expr:  fmt.Sprintf("<= %v", bound),
			check: func(v float64) bool { return v <= bound },
		}, nil
	case "within":
		lower, upper := tr.Lower, tr.Upper
		if upper <= lower {
			return rule{}, fmt.Errorf("within band is empty: [%v, %v]", lower, upper)
		}
		return rule{
			expr:  fmt.Sprintf("within [%v, %v]", lower, upper),
			check: func(v float64) bool { return v >= lower && v <= upper },
		}, nil
	default:
		return rule{}, fmt.Errorf("unknown op %q", tr.Op)
	}
}
