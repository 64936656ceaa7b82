package types

import "fmt"

// EnumerationError is returned when the organizations of an enterprise cannot be listed.
// It aborts the run.
type EnumerationError struct {
	Enterprise string
	Err        error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to enumerate organizations for enterprise '%s': %v", e.Enterprise, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// ListingError is returned when the outside collaborators of an organization cannot be listed
type ListingError struct {
	Organization string
	Err          error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("failed to list outside collaborators for organization '%s': %v", e.Organization, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}
