// Package seq composes outcomes sequentially, stopping at the first failure.
// A failed step's error is forwarded untouched and no later step runs, so
// only the first invalid field of a pipeline is ever reported. Use package
// par instead when every field's errors should be collected.
//
// Highlights:
// - Bind: chain a step producing a new Outcome, short-circuiting on failure
// - And: run several checks over one value, keeping the first failure
// - Tee: run side effects on success without changing the outcome
// - Chain: fluent wrapper (Start/FromValue, Then, Map, Ensure, Finally)
package seq
