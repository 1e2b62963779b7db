package parsererror

import "fmt"

// ParseError represents a failure to parse one field of an import row.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CommitError represents a failure during a batch commit, tagged with the
// phase that failed so callers can tell a fatal payer-creation failure from
// a row-local persistence failure.
type CommitError struct {
	Phase string
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed during %s: %v", e.Phase, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a store lookup for a specific entity id found nothing.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}
