package seq

import (
	"github.com/ib-77/vop/pkg/vop"
)

// Bind chains a validation step, stopping at the first failure: onSuccess is
// never invoked when in is already failed, and the failure is forwarded
// untouched.
func Bind[T, U, E any](in vop.Outcome[T, E], onSuccess func(T) vop.Outcome[U, E]) vop.Outcome[U, E] {
	if in.IsSuccess() {
		return onSuccess(in.Result())
	}
	return vop.Failure[U](in.Err())
}

// And runs steps over the successful value left to right, returning the first
// failure; remaining steps are never invoked after one fails.
func And[T, E any](in vop.Outcome[T, E], steps ...func(T) vop.Outcome[T, E]) vop.Outcome[T, E] {
	out := in
	for _, step := range steps {
		if out.IsFailure() {
			return out
		}
		out = step(out.Result())
	}
	return out
}

// Tee runs a side effect on the successful value without changing the outcome.
func Tee[T, E any](in vop.Outcome[T, E], onSuccess func(T)) vop.Outcome[T, E] {
	if in.IsSuccess() {
		onSuccess(in.Result())
	}
	return in
}
