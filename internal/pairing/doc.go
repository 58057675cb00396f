// Package pairing joins the two outcome collections by case id and classifies
// every golden-set case into exactly one of three buckets: paired-usable,
// ASR-failed, or unmatched.
//
// The classification is total: no case is silently dropped, and a
// completeness check verifies the three buckets partition the catalog before
// any metric is computed. A case missing from a collection entirely is an
// implicit ASR failure for that version.
package pairing
