// Package vop contains the Outcome[T, E] container and the primitives every
// other package builds on. An Outcome is either a validated value or a
// validation error; errors are ordinary data, never panics or control flow.
//
// Highlights:
// - Success/Failure: construct Outcome[T, E]
// - Map/MapError/Match: transform or reduce outcomes without branching
// - Tagged/Tags: validation errors labelled with a caller-chosen field name
// - Validatable/ValidatorFunc: the capability a self-validating type supplies
// - TryCreate: run a type's own validation and tag its failure with a label
// - Option/Traverse: validate optional values, treating absence as valid
//
// Composition strategies live in the subpackages: seq stops at the first
// failure, par runs every validation and accumulates all failures in order.
package vop
