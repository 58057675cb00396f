package pairing

import (
	"fmt"

	"goldengate/internal/goldenset"
	"goldengate/internal/outcome"
)

// Pair is one case with valid, non-failed outcomes on both versions.
type Pair struct {
	CaseID    string
	ScoreA    float64
	ScoreB    float64
	DecisionA outcome.DecisionLabel
	DecisionB outcome.DecisionLabel
	LatencyA  float64
	LatencyB  float64
}

// FailedCase is a case where at least one version recorded an ASR failure.
type FailedCase struct {
	CaseID  string
	FailedA bool
	FailedB bool
}

// UnmatchedCase is a catalog case missing from at least one collection.
// Treated as an implicit ASR failure for the missing version.
type UnmatchedCase struct {
	CaseID   string
	MissingA bool
	MissingB bool
}

// Result is the complete classification of one campaign's catalog.
type Result struct {
	Pairs     []Pair
	Failed    []FailedCase
	Unmatched []UnmatchedCase

	// Extraneous lists record ids present in a collection but absent from
	// the catalog. They never contribute to any metric.
	ExtraneousA []string
	ExtraneousB []string

	total     int
	failuresA int
	failuresB int
}

// Classify walks the catalog in order and assigns every case to exactly one
// bucket. Both collections must belong to opposite versions of the same
// campaign.
func Classify(catalog *goldenset.Catalog, a, b *outcome.Collection) (*Result, error) {
	if a.Version() != outcome.VersionA || b.Version() != outcome.VersionB {
		return nil, fmt.Errorf("classify: collections must be versions A and B, got %q and %q", a.Version(), b.Version())
	}

	res := &Result{total: catalog.Len()}
	for _, id := range catalog.IDs() {
		recA, okA := a.Get(id)
		recB, okB := b.Get(id)

		// Failure accounting is per version and independent of the bucket:
		// a missing record is an implicit failure, and a recorded failure on
		// one side still counts even when the other side is unmatched.
		if !okA || recA.ASRFailed {
			res.failuresA++
		}
		if !okB || recB.ASRFailed {
			res.failuresB++
		}

		switch {
		case !okA || !okB:
			res.Unmatched = append(res.Unmatched, UnmatchedCase{
				CaseID:   id,
				MissingA: !okA,
				MissingB: !okB,
			})
		case recA.ASRFailed || recB.ASRFailed:
			res.Failed = append(res.Failed, FailedCase{
				CaseID:  id,
				FailedA: recA.ASRFailed,
				FailedB: recB.ASRFailed,
			})
		default:
			res.Pairs = append(res.Pairs, Pair{
				CaseID:    id,
				ScoreA:    recA.Score,
				ScoreB:    recB.Score,
				DecisionA: recA.Decision,
				DecisionB: recB.Decision,
				LatencyA:  recA.LatencyMS,
				LatencyB:  recB.LatencyMS,
			})
		}
	}

	for _, id := range a.IDs() {
		if !catalog.Contains(id) {
			res.ExtraneousA = append(res.ExtraneousA, id)
		}
	}
	for _, id := range b.IDs() {
		if !catalog.Contains(id) {
			res.ExtraneousB = append(res.ExtraneousB, id)
		}
	}

	if err := res.VerifyComplete(); err != nil {
		return nil, err
	}
	return res, nil
}

// VerifyComplete asserts the three buckets partition the catalog.
func (r *Result) VerifyComplete() error {
	classified := len(r.Pairs) + len(r.Failed) + len(r.Unmatched)
	if classified != r.total {
		return fmt.Errorf("classification incomplete: %d cases classified, catalog has %d", classified, r.total)
	}
	return nil
}

// Total returns the catalog size the classification ran over.
func (r *Result) Total() int {
	return r.total
}

// FailureCount returns how many catalog cases count as failures for the
// version: recorded ASR failures plus implicit failures from missing records.
func (r *Result) FailureCount(version outcome.Version) int {
	if version == outcome.VersionA {
		return r.failuresA
	}
	return r.failuresB
}

// FailureRate returns the per-version failure rate over the whole catalog.
func (r *Result) FailureRate(version outcome.Version) float64 {
	if r.total == 0 {
		return 0
	}
	return float64(r.FailureCount(version)) / float64(r.total)
}
