// Package commands contains the write-side application handlers of the
// masters context.
package commands

import (
	"context"
	"time"

	"github.com/genbaworks/genba/internal/masters/domain"
)

// AddEntryCommand registers a new name on one of the reference lists.
type AddEntryCommand struct {
	Kind   domain.EntryKind
	Name   string
	Active bool
}

// AddEntryHandler handles the AddEntryCommand.
type AddEntryHandler struct {
	repo domain.Repository
	now  func() time.Time
}

// NewAddEntryHandler creates a new AddEntryHandler.
func NewAddEntryHandler(repo domain.Repository, now func() time.Time) *AddEntryHandler {
	if now == nil {
		now = time.Now
	}
	return &AddEntryHandler{repo: repo, now: now}
}

// Handle appends the entry, records the update in the history and saves.
func (h *AddEntryHandler) Handle(ctx context.Context, cmd AddEntryCommand) error {
	masters, err := h.repo.Load(ctx)
	if err != nil {
		return err
	}

	entries, err := masters.Entries(cmd.Kind)
	if err != nil {
		return err
	}
	entries, err = domain.AddEntry(entries, cmd.Name, cmd.Active)
	if err != nil {
		return err
	}
	if err := masters.SetEntries(cmd.Kind, entries); err != nil {
		return err
	}

	masters.Normalize()
	masters.RecordUpdate(h.now())
	return h.repo.Save(ctx, masters)
}

// SetEntryActiveCommand enables or disables a named entry without
// removing it, so stored projects keep resolving the name.
type SetEntryActiveCommand struct {
	Kind   domain.EntryKind
	Name   string
	Active bool
}

// SetEntryActiveHandler handles the SetEntryActiveCommand.
type SetEntryActiveHandler struct {
	repo domain.Repository
	now  func() time.Time
}

// NewSetEntryActiveHandler creates a new SetEntryActiveHandler.
func NewSetEntryActiveHandler(repo domain.Repository, now func() time.Time) *SetEntryActiveHandler {
	if now == nil {
		now = time.Now
	}
	return &SetEntryActiveHandler{repo: repo, now: now}
}

// Handle flips the flag, records the update and saves.
func (h *SetEntryActiveHandler) Handle(ctx context.Context, cmd SetEntryActiveCommand) error {
	masters, err := h.repo.Load(ctx)
	if err != nil {
		return err
	}

	entries, err := masters.Entries(cmd.Kind)
	if err != nil {
		return err
	}
	entries, err = domain.SetEntryActive(entries, cmd.Name, cmd.Active)
	if err != nil {
		return err
	}
	if err := masters.SetEntries(cmd.Kind, entries); err != nil {
		return err
	}

	masters.RecordUpdate(h.now())
	return h.repo.Save(ctx, masters)
}
