package catalog

import "errors"

var (
	// ErrUnknownFunction indicates a name with no registered entry.
	ErrUnknownFunction = errors.New("catalog: unknown function")

	// ErrInvalidConfig indicates a Config field outside its valid range.
	ErrInvalidConfig = errors.New("catalog: invalid config")
)
