// Package goldenset loads and validates the immutable test-case catalog a
// campaign runs against.
//
// A catalog is fixed for the lifetime of a campaign: the loader rejects empty
// sets, duplicate ids, and sets below the configured minimum size, since a
// verdict over too few cases is not statistically meaningful. The catalog
// exposes its size and difficulty distribution for cross-checking against
// collected outcomes.
package goldenset
