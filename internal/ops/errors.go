package ops

import "fmt"

// ValidationError indicates an identifier from a caller was rejected.
type ValidationError struct {
	Field string // the field that failed validation
	Value any    // the rejected input
	Err   error  // the parse failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
