package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotApproved is returned when a send is attempted on an unapproved draft.
	ErrNotApproved = errors.New("draft not approved")

	// ErrStoreUnavailable is returned when no database connection is configured.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// TemplateError reports a placeholder outside the recognized vocabulary.
type TemplateError struct {
	Placeholder string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("unknown template placeholder {%s}", e.Placeholder)
}

// PersistenceError wraps a failed store operation with the collection it hit.
type PersistenceError struct {
	Collection string
	Op         string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
