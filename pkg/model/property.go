package model

import (
	"cmp"

	"github.com/go-drift/pulse/pkg/event"
)

// ValueChanged is the payload fired on Property.Changed after a Set. The
// property already holds Value when subscribers run.
type ValueChanged[T any] struct {
	Property *Property[T]
	Value    T
}

// ValueCleared is the payload fired on Property.Cleared after a Clear. The
// property is already empty when subscribers run.
type ValueCleared[T any] struct {
	Property *Property[T]
}

// Property is an observable container that is either empty or holds one
// value of type T. Mutations notify unconditionally: Set fires Changed
// even when the new value equals the held one, and Clear fires Cleared
// even when the property is already empty.
//
// A Property must not be copied after first use, and follows the
// single-goroutine contract of package event.
type Property[T any] struct {
	value   T
	present bool
	changed event.Channel[ValueChanged[T]]
	cleared event.Channel[ValueCleared[T]]
}

// NewProperty returns an empty property.
func NewProperty[T any]() *Property[T] {
	return &Property[T]{}
}

// NewPropertyWithValue returns a property holding v. No event fires for
// the initial value.
func NewPropertyWithValue[T any](v T) *Property[T] {
	return &Property[T]{value: v, present: true}
}

// IsEmpty reports whether the property holds no value.
func (p *Property[T]) IsEmpty() bool {
	return !p.present
}

// HasValue reports whether the property holds a value.
func (p *Property[T]) HasValue() bool {
	return p.present
}

// Set stores v, then fires Changed.
func (p *Property[T]) Set(v T) {
	p.value = v
	p.present = true
	p.changed.Fire(ValueChanged[T]{Property: p, Value: v})
}

// Clear empties the property, then fires Cleared.
func (p *Property[T]) Clear() {
	var zero T
	p.value = zero
	p.present = false
	p.cleared.Fire(ValueCleared[T]{Property: p})
}

// Value returns the held value, or ErrEmptyValue when the property is
// empty.
func (p *Property[T]) Value() (T, error) {
	if !p.present {
		var zero T
		return zero, ErrEmptyValue
	}
	return p.value, nil
}

// MustValue returns the held value and panics when the property is empty.
// For call sites that have just checked HasValue.
func (p *Property[T]) MustValue() T {
	if !p.present {
		panic("model: MustValue on an empty property")
	}
	return p.value
}

// Changed returns the channel fired after every Set.
func (p *Property[T]) Changed() *event.Channel[ValueChanged[T]] {
	return &p.changed
}

// Cleared returns the channel fired after every Clear.
func (p *Property[T]) Cleared() *event.Channel[ValueCleared[T]] {
	return &p.cleared
}

// Equal reports whether two properties hold equal values. Two empty
// properties are equal; an empty property never equals one holding a
// value.
func Equal[T comparable](a, b *Property[T]) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.value == b.value
}

// Less orders properties with empty before any held value. Two empty
// properties are not ordered; otherwise values order with <.
func Less[T cmp.Ordered](a, b *Property[T]) bool {
	if a.IsEmpty() {
		return b.HasValue()
	}
	return b.HasValue() && a.value < b.value
}
