package vop

// Option holds a value that may be absent. Absence is a valid state, not an
// error: Traverse maps None straight to a successful outcome.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr bridges the common pointer-as-optional representation.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Traverse lifts an optional raw value through validate. None yields
// Success(None) and validate is never invoked; Some(raw) yields validate(raw)
// with its success re-wrapped in Some.
func Traverse[Raw, T, E any](validate func(Raw) Outcome[T, E], in Option[Raw]) Outcome[Option[T], E] {
	if in.IsNone() {
		return Success[Option[T], E](None[T]())
	}
	return Map(validate(in.value), Some[T])
}
