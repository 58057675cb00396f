package outcome

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord marks records rejected on ingestion (out-of-scale score,
// negative latency, duplicate case). The record is discarded; the case then
// resolves as unmatched for its version.
var ErrInvalidRecord = errors.New("invalid outcome record")

// ConsistencyFinding reports a decision label that contradicts its score under
// the external threshold. Recorded, never fatal: the score is authoritative.
type ConsistencyFinding struct {
	CaseID   string
	Version  Version
	Score    float64
	Recorded DecisionLabel
	Derived  DecisionLabel
}

func (f ConsistencyFinding) String() string {
	return fmt.Sprintf("case %s version %s: label %q contradicts score %.2f (derived %q)",
		f.CaseID, f.Version, f.Recorded, f.Score, f.Derived)
}

// Collection holds the validated outcome records for one version, indexed by
// case id. Build it with NewCollection and Add; read-only afterwards.
type Collection struct {
	version           Version
	scale             Scale
	decisionThreshold float64

	records     map[string]Record
	order       []string
	repetitions map[string][]float64
	findings    []ConsistencyFinding
}

// NewCollection creates an empty collection for one version.
func NewCollection(version Version, scale Scale, decisionThreshold float64) *Collection {
	return &Collection{
		version:           version,
		scale:             scale,
		decisionThreshold: decisionThreshold,
		records:           make(map[string]Record),
		repetitions:       make(map[string][]float64),
	}
}

// Version returns the version this collection was built for.
func (c *Collection) Version() Version {
	return c.version
}

// Add validates and ingests one record. Records for the wrong version,
// duplicate primaries, out-of-scale scores, and negative latencies are
// rejected with ErrInvalidRecord. Repetition records only contribute scores
// for jitter measurement.
func (c *Collection) Add(rec Record) error {
	if rec.CaseID == "" {
		return fmt.Errorf("%w: empty case id", ErrInvalidRecord)
	}
	if rec.Version != c.version {
		return fmt.Errorf("%w: case %s: version %q does not match collection %q",
			ErrInvalidRecord, rec.CaseID, rec.Version, c.version)
	}
	if !rec.ASRFailed {
		if !c.scale.Contains(rec.Score) {
			return fmt.Errorf("%w: case %s: score %.3f outside scale [%v, %v]",
				ErrInvalidRecord, rec.CaseID, rec.Score, c.scale.Min, c.scale.Max)
		}
		if rec.LatencyMS < 0 {
			return fmt.Errorf("%w: case %s: negative latency %.1fms", ErrInvalidRecord, rec.CaseID, rec.LatencyMS)
		}
	}

	if rec.Repetition > 0 {
		if !rec.ASRFailed {
			c.repetitions[rec.CaseID] = append(c.repetitions[rec.CaseID], rec.Score)
		}
		return nil
	}

	if _, dup := c.records[rec.CaseID]; dup {
		return fmt.Errorf("%w: case %s: second primary record for version %s", ErrInvalidRecord, rec.CaseID, c.version)
	}

	if !rec.ASRFailed {
		derived := DeriveDecision(rec.Score, c.decisionThreshold)
		if rec.Decision == "" {
			rec.Decision = derived
		} else if rec.Decision != derived {
			c.findings = append(c.findings, ConsistencyFinding{
				CaseID:   rec.CaseID,
				Version:  c.version,
				Score:    rec.Score,
				Recorded: rec.Decision,
				Derived:  derived,
			})
			// The recorded score is authoritative.
			rec.Decision = derived
		}
	}

	c.records[rec.CaseID] = rec
	c.order = append(c.order, rec.CaseID)
	return nil
}

// Get returns the primary record for a case, if present.
func (c *Collection) Get(caseID string) (Record, bool) {
	rec, ok := c.records[caseID]
	return rec, ok
}

// Len returns the number of primary records collected.
func (c *Collection) Len() int {
	return len(c.records)
}

// IDs returns collected case ids in ingestion order.
func (c *Collection) IDs() []string {
	return c.order
}

// Findings returns the consistency findings accumulated during ingestion.
func (c *Collection) Findings() []ConsistencyFinding {
	return c.findings
}

// RepetitionScores returns the jitter-run scores recorded for a case beyond
// its primary record.
func (c *Collection) RepetitionScores(caseID string) []float64 {
	return c.repetitions[caseID]
}

// HasRepetitions reports whether any jitter-run data was collected.
func (c *Collection) HasRepetitions() bool {
	return len(c.repetitions) > 0
}
