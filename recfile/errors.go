package recfile

import "errors"

var (
	// ErrFormat signals a malformed record line.
	ErrFormat = errors.New("recfile: malformed record")
	// ErrNotARecord signals an attempt to persist an index holding objects
	// other than *Record.
	ErrNotARecord = errors.New("recfile: indexed object is not a record")
)
