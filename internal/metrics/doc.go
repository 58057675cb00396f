// Package metrics computes the paired-sample statistics a campaign verdict is
// based on.
//
// Every computation is a pure function over the immutable classification
// result: no I/O, no side effects, deterministic for identical inputs. A
// metric that cannot be computed (too few pairs, zero variance, no repetition
// data) is reported as not computable rather than as a silent zero; the
// acceptance layer decides what that means for the verdict.
package metrics
