// Package verdict turns per-metric acceptance results into the single,
// immutable campaign decision.
//
// The aggregator is a pure function of (metric results, impact class,
// secondary-metric mode): no retries, no randomness, identical inputs always
// produce the identical Verdict. The mapping is an explicit three-outcome
// state machine rather than nested conditionals so it stays total and
// auditable.
package verdict
