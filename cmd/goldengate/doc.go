// Command goldengate evaluates a candidate scoring pipeline release against
// the frozen baseline over the golden set and emits a promote, rollback, or
// escalate verdict.
package main
