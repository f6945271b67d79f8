// Package customerrors defines the errors shared by the heap, the sorter and
// the services built on top of them.
package customerrors

import (
	"errors"
)

var (
	// ErrInvalidInput is returned by sort operations when the input sequence
	// is absent or empty. No heap is created in that case.
	ErrInvalidInput = errors.New("invalid input: empty or absent record sequence")

	// ErrInvalidCriterion is returned when a sort criterion is not one of the
	// supported keys.
	ErrInvalidCriterion = errors.New("invalid sort criterion")

	// ErrEmptyQueue should be returned when extraction is attempted on an
	// empty or absent heap.
	ErrEmptyQueue = errors.New("empty queue")

	// ErrCapacityExhausted is returned by insert when the heap is full and
	// cannot grow past its configured maximum capacity.
	ErrCapacityExhausted = errors.New("heap capacity exhausted")

	// ErrAllocation is returned when backing storage could not be obtained.
	ErrAllocation = errors.New("allocation failure")

	// ErrHeapDestroyed is returned by any operation on a destroyed heap.
	ErrHeapDestroyed = errors.New("heap is destroyed")
)
