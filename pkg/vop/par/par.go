package par

import (
	"github.com/ib-77/vop/pkg/vop"
)

// Lift turns a single-error outcome into an accumulating one by wrapping the
// failure in a one-element list. It is the bridge from vop.TryCreate into the
// Combine functions.
func Lift[T, F any](in vop.Outcome[T, F]) vop.Outcome[T, []F] {
	if in.IsSuccess() {
		return vop.Success[T, []F](in.Result())
	}
	return vop.Failure[T]([]F{in.Err()})
}

// appendFailure concatenates a failing input's error list onto errs. List
// concatenation flattens exactly one level: an F that is itself a list is
// carried opaque, never re-nested and never flattened further.
func appendFailure[T, F any](errs []F, in vop.Outcome[T, []F]) []F {
	if in.IsFailure() {
		return append(errs, in.Err()...)
	}
	return errs
}

// Combine2 applies ctor to two independently computed outcomes. Both inputs
// are always evaluated; if either failed, the result is the concatenation of
// every failing input's errors in argument order.
func Combine2[A, B, R, F any](ctor func(A, B) R,
	a vop.Outcome[A, []F], b vop.Outcome[B, []F]) vop.Outcome[R, []F] {

	var errs []F
	errs = appendFailure(errs, a)
	errs = appendFailure(errs, b)

	if len(errs) > 0 {
		return vop.Failure[R](errs)
	}
	return vop.Success[R, []F](ctor(a.Result(), b.Result()))
}

// Combine3 is Combine2 for three outcomes.
func Combine3[A, B, C, R, F any](ctor func(A, B, C) R,
	a vop.Outcome[A, []F], b vop.Outcome[B, []F], c vop.Outcome[C, []F]) vop.Outcome[R, []F] {

	var errs []F
	errs = appendFailure(errs, a)
	errs = appendFailure(errs, b)
	errs = appendFailure(errs, c)

	if len(errs) > 0 {
		return vop.Failure[R](errs)
	}
	return vop.Success[R, []F](ctor(a.Result(), b.Result(), c.Result()))
}

// Combine4 is Combine2 for four outcomes.
func Combine4[A, B, C, D, R, F any](ctor func(A, B, C, D) R,
	a vop.Outcome[A, []F], b vop.Outcome[B, []F], c vop.Outcome[C, []F],
	d vop.Outcome[D, []F]) vop.Outcome[R, []F] {

	var errs []F
	errs = appendFailure(errs, a)
	errs = appendFailure(errs, b)
	errs = appendFailure(errs, c)
	errs = appendFailure(errs, d)

	if len(errs) > 0 {
		return vop.Failure[R](errs)
	}
	return vop.Success[R, []F](ctor(a.Result(), b.Result(), c.Result(), d.Result()))
}

// Combine5 is Combine2 for five outcomes.
func Combine5[A, B, C, D, E, R, F any](ctor func(A, B, C, D, E) R,
	a vop.Outcome[A, []F], b vop.Outcome[B, []F], c vop.Outcome[C, []F],
	d vop.Outcome[D, []F], e vop.Outcome[E, []F]) vop.Outcome[R, []F] {

	var errs []F
	errs = appendFailure(errs, a)
	errs = appendFailure(errs, b)
	errs = appendFailure(errs, c)
	errs = appendFailure(errs, d)
	errs = appendFailure(errs, e)

	if len(errs) > 0 {
		return vop.Failure[R](errs)
	}
	return vop.Success[R, []F](ctor(a.Result(), b.Result(), c.Result(), d.Result(), e.Result()))
}

// Combine6 is Combine2 for six outcomes. Wider records compose nested
// Combine calls or use All.
func Combine6[A, B, C, D, E, G, R, F any](ctor func(A, B, C, D, E, G) R,
	a vop.Outcome[A, []F], b vop.Outcome[B, []F], c vop.Outcome[C, []F],
	d vop.Outcome[D, []F], e vop.Outcome[E, []F], g vop.Outcome[G, []F]) vop.Outcome[R, []F] {

	var errs []F
	errs = appendFailure(errs, a)
	errs = appendFailure(errs, b)
	errs = appendFailure(errs, c)
	errs = appendFailure(errs, d)
	errs = appendFailure(errs, e)
	errs = appendFailure(errs, g)

	if len(errs) > 0 {
		return vop.Failure[R](errs)
	}
	return vop.Success[R, []F](ctor(a.Result(), b.Result(), c.Result(), d.Result(), e.Result(), g.Result()))
}

// All combines homogeneous outcomes into an outcome of a slice, accumulating
// every failure in argument order.
func All[T, F any](ins ...vop.Outcome[T, []F]) vop.Outcome[[]T, []F] {
	var errs []F
	for _, in := range ins {
		errs = appendFailure(errs, in)
	}

	if len(errs) > 0 {
		return vop.Failure[[]T](errs)
	}

	vals := make([]T, 0, len(ins))
	for _, in := range ins {
		vals = append(vals, in.Result())
	}
	return vop.Success[[]T, []F](vals)
}
