package model

import (
	"fmt"
	"iter"
)

// SortView is an immutable, ordered snapshot of collection identifiers
// produced by Collection.Sort. Views are detached: mutating the source
// collection after the sort does not change an existing view.
type SortView[ID comparable] struct {
	ids []ID
}

// Len reports the number of identifiers in the view.
func (v *SortView[ID]) Len() int {
	return len(v.ids)
}

// At returns the identifier at position i, or an error wrapping
// ErrNotFound when i is out of range.
func (v *SortView[ID]) At(i int) (ID, error) {
	if i < 0 || i >= len(v.ids) {
		var zero ID
		return zero, fmt.Errorf("model: index %d out of range with length %d: %w", i, len(v.ids), ErrNotFound)
	}
	return v.ids[i], nil
}

// All iterates the identifiers in view order.
func (v *SortView[ID]) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, id := range v.ids {
			if !yield(id) {
				return
			}
		}
	}
}
