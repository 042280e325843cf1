package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProjectNotFound indicates the requested project was not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrDuplicateProjectID indicates a project with the same ID already exists.
	ErrDuplicateProjectID = errors.New("project id already exists")
)

// ValidationError carries the per-row messages produced by
// ValidateProjects when a table is rejected.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("project validation failed: %s", strings.Join(e.Messages, " / "))
}
