// Package harness runs one evaluation campaign end to end: load the golden
// catalog, ingest both outcome collections, classify every case, compute the
// metrics, apply the acceptance table, and aggregate the verdict.
//
// A campaign is a single-pass batch computation over a closed input set and
// produces exactly one Report. Only a catalog error aborts a run; every other
// condition degrades into a fully reported verdict with explicit caveats,
// because a non-inferiority decision must never be silently optimistic about
// missing data.
package harness
