package harness

import (
	"time"

	"goldengate/internal/goldenset"
	"goldengate/internal/metrics"
	"goldengate/internal/outcome"
	"goldengate/internal/verdict"
)

// Counts tallies the classification buckets. The three buckets always sum to
// the catalog size.
type Counts struct {
	Paired    int
	Failed    int
	Unmatched int
}

// Report is the immutable result of one campaign run, consumed by the
// external report generator or rollback trigger.
type Report struct {
	CampaignID  string
	GeneratedAt time.Time

	CatalogSize            int
	DifficultyDistribution map[goldenset.Difficulty]int
	Languages              []string

	Counts       Counts
	FailureRateA float64
	FailureRateB float64

	// ConsistencyFindings list decision labels that contradicted their
	// scores; the records were kept with the score authoritative.
	ConsistencyFindings []outcome.ConsistencyFinding
	// IngestionRejections describe records discarded on validation; the
	// affected cases degraded to unmatched.
	IngestionRejections []string
	// ExtraneousA and ExtraneousB list record ids outside the catalog.
	ExtraneousA []string
	ExtraneousB []string

	TopDrift []metrics.CaseDrift

	Verdict verdict.Verdict
}
