package seq

import (
	"github.com/ib-77/vop/pkg/vop"
)

// Chain wraps a vop.Outcome to enable fluent short-circuit chaining
type Chain[T, E any] struct {
	res vop.Outcome[T, E]
}

// Start creates a new chain from a vop.Outcome
func Start[T, E any](in vop.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{res: in}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(vop.Success[T, E](v))
}

// Result returns the underlying vop.Outcome
func (c Chain[T, E]) Result() vop.Outcome[T, E] {
	return c.res
}

// Then composes a function that already returns vop.Outcome[T, E]
func (c Chain[T, E]) Then(onSuccess func(T) vop.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{res: Bind(c.res, onSuccess)}
}

// Then composes a type-changing step (T -> Outcome[U, E])
func Then[T, U, E any](c Chain[T, E], onSuccess func(T) vop.Outcome[U, E]) Chain[U, E] {
	return Chain[U, E]{res: Bind(c.res, onSuccess)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	return Chain[T, E]{res: vop.Map(c.res, onSuccess)}
}

// Map transforms the successful value to a new type
func Map[T, U, E any](c Chain[T, E], onSuccess func(T) U) Chain[U, E] {
	return Chain[U, E]{res: vop.Map(c.res, onSuccess)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T)) Chain[T, E] {
	return Chain[T, E]{res: Tee(c.res, onSuccess)}
}

// Finally collapses the chain into a final value via the two handlers
func Finally[T, E, R any](c Chain[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	return vop.Match(c.res, onSuccess, onFailure)
}
