package geo

import "errors"

var (
	// ErrInvertedBounds signals an envelope where a minimum exceeds the
	// corresponding maximum coordinate.
	ErrInvertedBounds = errors.New("geo: inverted bounds")
)
