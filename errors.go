package boxtree

import "errors"

var (
	// ErrInvalidConfig signals fan-out bounds outside the legal range at
	// construction time.
	ErrInvalidConfig = errors.New("boxtree: invalid configuration")

	// ErrNilItem signals a nil object passed to a public mutation.
	ErrNilItem = errors.New("boxtree: nil item")

	// ErrEmptyEnvelope signals an object whose envelope bounds nothing. Such
	// an object cannot be located by containment descent and is rejected.
	ErrEmptyEnvelope = errors.New("boxtree: empty envelope")
)
