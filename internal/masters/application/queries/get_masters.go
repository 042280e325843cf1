// Package queries contains the read-side application handlers of the
// masters context.
package queries

import (
	"context"

	"github.com/genbaworks/genba/internal/masters/domain"
)

// GetMastersHandler returns the normalized reference data set.
type GetMastersHandler struct {
	repo domain.Repository
}

// NewGetMastersHandler creates a new GetMastersHandler.
func NewGetMastersHandler(repo domain.Repository) *GetMastersHandler {
	return &GetMastersHandler{repo: repo}
}

// Handle loads and normalizes the stored data set.
func (h *GetMastersHandler) Handle(ctx context.Context) (domain.Masters, error) {
	masters, err := h.repo.Load(ctx)
	if err != nil {
		return domain.Masters{}, err
	}
	masters.Normalize()
	return masters, nil
}

// ActiveChoices are the selectable names offered by the project editor.
type ActiveChoices struct {
	Clients    []string
	Categories []string
	Managers   []string
}

// GetActiveChoicesHandler lists the active names of every reference
// list.
type GetActiveChoicesHandler struct {
	repo domain.Repository
}

// NewGetActiveChoicesHandler creates a new GetActiveChoicesHandler.
func NewGetActiveChoicesHandler(repo domain.Repository) *GetActiveChoicesHandler {
	return &GetActiveChoicesHandler{repo: repo}
}

// Handle returns the active names in stored order.
func (h *GetActiveChoicesHandler) Handle(ctx context.Context) (ActiveChoices, error) {
	masters, err := h.repo.Load(ctx)
	if err != nil {
		return ActiveChoices{}, err
	}
	return ActiveChoices{
		Clients:    domain.ActiveNames(masters.Clients),
		Categories: domain.ActiveNames(masters.Categories),
		Managers:   domain.ActiveNames(masters.Managers),
	}, nil
}
