// Package outcome collects the per-case results recorded for one pipeline
// version.
//
// The harness never executes the scoring pipeline itself: records arrive from
// the external run system, one per case per version, and are validated on
// ingestion. A decision label that contradicts its recorded score is kept (the
// score wins) but surfaced as a consistency finding for manual review.
// Repetition records feed jitter measurement and are held apart from the
// primary per-case record.
package outcome
