package verdict

import (
	"fmt"
	"strings"

	"goldengate/internal/acceptance"
)

// Status is the overall campaign outcome.
type Status string

const (
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Action is the recommended follow-up for the campaign outcome.
type Action string

const (
	ActionPromote  Action = "promote"
	ActionRollback Action = "rollback_scoring"
	ActionEscalate Action = "escalate_major_version"
)

// ImpactClass is the operator-declared clinical impact of the change under
// evaluation. The aggregator never infers it.
type ImpactClass string

const (
	ImpactNeutral  ImpactClass = "neutral"
	ImpactExpected ImpactClass = "expected-impact"
)

// ParseImpactClass normalizes an impact class label.
func ParseImpactClass(value string) (ImpactClass, error) {
	switch ImpactClass(strings.ToLower(strings.TrimSpace(value))) {
	case ImpactNeutral:
		return ImpactNeutral, nil
	case ImpactExpected:
		return ImpactExpected, nil
	default:
		return "", fmt.Errorf("unknown impact class %q", value)
	}
}

// SecondaryMode controls whether advisory metrics can force rejection.
type SecondaryMode string

const (
	SecondaryAdvisory SecondaryMode = "advisory"
	SecondaryStrict   SecondaryMode = "strict"
)

// ParseSecondaryMode normalizes a secondary-metric mode label.
func ParseSecondaryMode(value string) (SecondaryMode, error) {
	switch SecondaryMode(strings.ToLower(strings.TrimSpace(value))) {
	case SecondaryAdvisory:
		return SecondaryAdvisory, nil
	case SecondaryStrict:
		return SecondaryStrict, nil
	default:
		return "", fmt.Errorf("unknown secondary mode %q", value)
	}
}

// Verdict is the final campaign decision. Produced exactly once per campaign
// and immutable once emitted.
type Verdict struct {
	Status  Status
	Action  Action
	Results []acceptance.Result
	// Reasons name the metrics behind a rejection, or advisory findings
	// worth a reviewer's attention on acceptance.
	Reasons []string
}
