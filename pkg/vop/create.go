package vop

// TryCreate runs the type's own validation and tags any failure with the
// caller-supplied field label. A success passes through untouched, so the
// validated value is exactly what tryValidate alone would have produced.
// tryValidate is usually a method value of a Validatable type, e.g.
// Latitude(0).TryValidate.
func TryCreate[Raw, T, E any](label string, tryValidate func(Raw) Outcome[T, E], raw Raw) Outcome[T, Tagged[E]] {
	return MapError(tryValidate(raw), func(e E) Tagged[E] {
		return Tagged[E]{Label: label, Err: e}
	})
}

// TryCreateFrom is TryCreate for callers already holding a Validatable value.
func TryCreateFrom[Raw, T, E any](label string, v Validatable[Raw, T, E], raw Raw) Outcome[T, Tagged[E]] {
	return TryCreate(label, v.TryValidate, raw)
}

// TryCreateOptional validates an optional raw field: absence is always valid
// and the validator never runs on it; a present value goes through TryCreate
// with the same label.
func TryCreateOptional[Raw, T, E any](label string, tryValidate func(Raw) Outcome[T, E], in Option[Raw]) Outcome[Option[T], Tagged[E]] {
	return Traverse(func(raw Raw) Outcome[T, Tagged[E]] {
		return TryCreate(label, tryValidate, raw)
	}, in)
}
