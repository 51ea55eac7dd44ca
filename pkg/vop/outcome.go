package vop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrPreconditionViolated is returned by the checked accessors when the
// queried variant is not the one the outcome holds.
var ErrPreconditionViolated = errors.New("outcome: queried variant is not populated")

// Outcome holds either a validated value of type T or a validation error of
// type E, never both. Outcomes are immutable values; combinators produce new
// outcomes rather than modifying their inputs.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess
}

// Result returns the successful value, or the zero value of T on failure.
// Use Value or Match when the variant is not already known.
func (o Outcome[T, E]) Result() T {
	return o.value
}

// Err returns the validation error, or the zero value of E on success.
func (o Outcome[T, E]) Err() E {
	return o.err
}

// Value is the checked form of Result.
func (o Outcome[T, E]) Value() (T, error) {
	if !o.isSuccess {
		var zero T
		return zero, ErrPreconditionViolated
	}
	return o.value, nil
}

// FailureValue is the checked form of Err.
func (o Outcome[T, E]) FailureValue() (E, error) {
	if o.isSuccess {
		var zero E
		return zero, ErrPreconditionViolated
	}
	return o.err, nil
}

// CreatedAt time creation (UTC)
func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

// Map applies onSuccess to the successful value; a failure passes through
// unchanged.
func Map[T, U, E any](in Outcome[T, E], onSuccess func(T) U) Outcome[U, E] {
	if in.IsSuccess() {
		return Success[U, E](onSuccess(in.value))
	}
	return Failure[U](in.err)
}

// MapError applies onFailure to the validation error; a success passes
// through unchanged.
func MapError[T, E, F any](in Outcome[T, E], onFailure func(E) F) Outcome[T, F] {
	if in.IsSuccess() {
		return Success[T, F](in.value)
	}
	return Failure[T](onFailure(in.err))
}

// Match reduces the outcome to a single value via the handler for the
// populated variant. It is the pattern-matching form of extraction: exactly
// one handler runs.
func Match[T, E, R any](in Outcome[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if in.IsSuccess() {
		return onSuccess(in.value)
	}
	return onFailure(in.err)
}
