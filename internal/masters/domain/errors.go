package domain

import "errors"

var (
	// ErrEmptyEntryName indicates a reference entry was added without a name.
	ErrEmptyEntryName = errors.New("entry name cannot be empty")

	// ErrDuplicateEntryName indicates the name is already registered.
	ErrDuplicateEntryName = errors.New("entry name already exists")

	// ErrEntryNotFound indicates no entry carries the requested name.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrUnknownEntryKind indicates the reference list name is not one of
	// clients, categories or managers.
	ErrUnknownEntryKind = errors.New("unknown entry kind")
)
