package outcome

import (
	"fmt"
	"strings"
)

// Version identifies which side of the comparison a record belongs to.
type Version string

const (
	VersionA Version = "A"
	VersionB Version = "B"
)

// ParseVersion normalizes a version label.
func ParseVersion(value string) (Version, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "A":
		return VersionA, nil
	case "B":
		return VersionB, nil
	default:
		return "", fmt.Errorf("unknown version %q", value)
	}
}

// DecisionLabel is the externally derived pass/review outcome for a case.
type DecisionLabel string

const (
	DecisionPass   DecisionLabel = "pass"
	DecisionReview DecisionLabel = "review"
)

// DeriveDecision applies the external score cutoff that defines the label.
func DeriveDecision(score, threshold float64) DecisionLabel {
	if score >= threshold {
		return DecisionPass
	}
	return DecisionReview
}

// Record is one recorded outcome for a case under one version. Never mutated
// after ingestion.
type Record struct {
	CaseID    string
	Version   Version
	Score     float64
	Decision  DecisionLabel
	LatencyMS float64
	ASRFailed bool
	// Repetition is 0 for the primary record; values >= 1 identify extra
	// jitter-measurement runs of the same case.
	Repetition int
}

// Scale is the declared valid range for recorded global scores.
type Scale struct {
	Min float64
	Max float64
}

// Contains reports whether score lies on the declared scale.
func (s Scale) Contains(score float64) bool {
	return score >= s.Min && score <= s.Max
}
