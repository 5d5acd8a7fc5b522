package domain

import "fmt"

// ListOption is an option paired with its logical index in the filtered list
type ListOption[T any] struct {
	Index int // logical index, not the position inside a fetched window
	Value T
}

// NewListOption creates a new list option
func NewListOption[T any](index int, value T) ListOption[T] {
	return ListOption[T]{Index: index, Value: value}
}

// String returns the display form of the wrapped value
func (o ListOption[T]) String() string {
	return fmt.Sprint(o.Value)
}
