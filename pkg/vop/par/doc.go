// Package par combines independently computed outcomes, accumulating every
// failure instead of stopping at the first. Each input is always evaluated:
// a field's validity does not depend on the others, so all errors can be
// reported at once. Failures concatenate in the left-to-right order the
// combinator receives its arguments, and that order is part of the contract.
//
// Highlights:
// - Lift: wrap a single-error outcome into the accumulating list form
// - Combine2..Combine6: apply a constructor to N outcomes, merging failures
// - All: combine homogeneous outcomes into an outcome of a slice
// - Eval: run validator thunks on separate goroutines, preserving order
//
// For stop-at-first-error pipelines, see package seq.
package par
