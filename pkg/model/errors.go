package model

import "errors"

// Sentinel errors for model lookups.
var (
	// ErrEmptyValue is returned when reading a Property that holds no value.
	ErrEmptyValue = errors.New("model: property has no value")

	// ErrNotFound is returned when a lookup does not match any item.
	ErrNotFound = errors.New("model: not found")
)
