package vop

import (
	"fmt"
	"strings"
)

// Tagged pairs a domain validation error with the field label chosen by the
// caller of TryCreate. The label is opaque to the library: no uniqueness or
// format checks are applied.
type Tagged[E any] struct {
	Label string
	Err   E
}

func (t Tagged[E]) String() string {
	return fmt.Sprintf("%s: %v", t.Label, t.Err)
}

// Error makes a Tagged usable where a plain error is expected.
func (t Tagged[E]) Error() string {
	return t.String()
}

// Tags is an ordered list of Tagged errors. Order is the left-to-right order
// in which the failing outcomes were combined and is part of the contract.
// It is an alias so that values flow into the par combinators, which accept
// any []F error list.
type Tags[E any] = []Tagged[E]

// HasLabel reports whether any error in the list carries the label.
func HasLabel[E any](tags Tags[E], label string) bool {
	for _, t := range tags {
		if t.Label == label {
			return true
		}
	}
	return false
}

// MessagesFor returns every error recorded under the label, in list order.
func MessagesFor[E any](tags Tags[E], label string) []E {
	var msgs []E
	for _, t := range tags {
		if t.Label == label {
			msgs = append(msgs, t.Err)
		}
	}
	return msgs
}

// Labels returns the distinct labels in first-appearance order.
func Labels[E any](tags Tags[E]) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, t := range tags {
		if !seen[t.Label] {
			labels = append(labels, t.Label)
			seen[t.Label] = true
		}
	}
	return labels
}

// Summarize renders the list as a single human-readable line.
func Summarize[E any](tags Tags[E]) string {
	if len(tags) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, t.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
