package domain

import "fmt"

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// InvalidArgumentError is returned when a caller supplied value is outside
// of the accepted range. These are never retried.
type InvalidArgumentError struct {
	// Name identifies the rejected argument.
	Name string
	// Value is the rejected value.
	Value interface{}
	// Reason describes the constraint that was violated.
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Name, e.Value, e.Reason)
}
