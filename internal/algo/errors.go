package algo

import "errors"

var (
	// ErrUnknownAlgorithm indicates a name missing from the registry.
	ErrUnknownAlgorithm = errors.New("algo: unknown algorithm")

	// ErrUnknownVariant indicates an unrecognised traversal order.
	ErrUnknownVariant = errors.New("algo: unknown traversal variant")

	// ErrMissingSubject indicates an engine requested without the data it walks.
	ErrMissingSubject = errors.New("algo: missing data subject")
)
