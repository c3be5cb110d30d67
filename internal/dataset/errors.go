package dataset

import "errors"

// Data model errors.
var (
	// ErrEmptySequence indicates a request for a sequence with no elements.
	ErrEmptySequence = errors.New("dataset: sequence must have at least one element")

	// ErrValueRange indicates an inverted value range (min > max).
	ErrValueRange = errors.New("dataset: invalid value range")

	// ErrUnknownPattern indicates a generator pattern name that is not registered.
	ErrUnknownPattern = errors.New("dataset: unknown data pattern")

	// ErrInvalidTree indicates a malformed tree definition.
	ErrInvalidTree = errors.New("dataset: invalid tree")
)
