// Package archive persists emitted campaign verdicts for audit history.
//
// The store is append-only from the harness's point of view: a verdict is
// written exactly once, after it is finalized, and never updated. A file lock
// guards the database so concurrent harness invocations cannot race on the
// same archive.
package archive
