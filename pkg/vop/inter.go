package vop

// Validatable is the capability a type implements to participate in
// TryCreate: building a validated T from its raw, unvalidated representation.
// The receiver carries no state; domain types typically implement it on the
// zero value.
type Validatable[Raw, T, E any] interface {
	// TryValidate builds a validated T from raw input or reports why it cannot
	TryValidate(raw Raw) Outcome[T, E]
}

// ValidatorFunc adapts a plain validation function to Validatable.
type ValidatorFunc[Raw, T, E any] func(raw Raw) Outcome[T, E]

func (f ValidatorFunc[Raw, T, E]) TryValidate(raw Raw) Outcome[T, E] {
	return f(raw)
}
