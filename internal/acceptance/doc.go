// Package acceptance applies the configured threshold table to computed
// metrics.
//
// Thresholds are configuration, not code: the table maps metric names to
// comparison rules so bounds can be revised without rebuilding the evaluator.
// A primary metric that cannot be computed counts as failing; the harness
// must never be silently optimistic about missing data.
package acceptance
