// Package domain contains the domain model for the masters bounded
// context: the reference lists (clients, work categories, managers),
// the holiday calendar and display settings.
package domain

import (
	"context"
	"strings"
	"time"
)

// DefaultCurrencyFormat is the thousands-separated yen format.
const DefaultCurrencyFormat = "#,###"

// historyLimit caps the retained update history.
const historyLimit = 50

// Entry is one reference list item. Inactive entries stay stored but are
// excluded from selection lists.
type Entry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// HistoryEntry records one settings save with the list sizes at the time.
type HistoryEntry struct {
	Timestamp  string `json:"timestamp"`
	Clients    int    `json:"clients"`
	Categories int    `json:"categories"`
	Managers   int    `json:"managers"`
}

// Masters is the full reference data set.
type Masters struct {
	Clients    []Entry `json:"clients"`
	Categories []Entry `json:"categories"`
	Managers   []Entry `json:"managers"`

	Holidays       []string `json:"holidays"`
	CurrencyFormat string   `json:"currency_format"`
	DecimalPlaces  int      `json:"decimal_places"`

	History []HistoryEntry `json:"history"`
}

// Repository is the storage port for the masters data set.
type Repository interface {
	Load(ctx context.Context) (Masters, error)
	Save(ctx context.Context, masters Masters) error
}

// NormalizeEntries trims names, drops blanks and removes duplicates
// while preserving first-seen order.
func NormalizeEntries(entries []Entry) []Entry {
	normalized := make([]Entry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, Entry{Name: name, Active: entry.Active})
	}
	return normalized
}

// ActiveNames returns the names of the active entries in order.
func ActiveNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Active {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Normalize repairs the structure after a load or before a save: the
// reference lists are deduplicated and the display settings fall back to
// their defaults.
func (m *Masters) Normalize() {
	m.Clients = NormalizeEntries(m.Clients)
	m.Categories = NormalizeEntries(m.Categories)
	m.Managers = NormalizeEntries(m.Managers)
	if m.Holidays == nil {
		m.Holidays = []string{}
	}
	if m.CurrencyFormat == "" {
		m.CurrencyFormat = DefaultCurrencyFormat
	}
	if m.DecimalPlaces < 0 || m.DecimalPlaces > 4 {
		m.DecimalPlaces = 0
	}
	if m.History == nil {
		m.History = []HistoryEntry{}
	}
}

// EntryKind names one of the three reference lists.
type EntryKind string

const (
	// KindClients 得意先 — client companies.
	KindClients EntryKind = "clients"
	// KindCategories 工種 — construction categories.
	KindCategories EntryKind = "categories"
	// KindManagers 担当者 — site managers.
	KindManagers EntryKind = "managers"
)

// Entries returns the reference list of the given kind.
func (m *Masters) Entries(kind EntryKind) ([]Entry, error) {
	switch kind {
	case KindClients:
		return m.Clients, nil
	case KindCategories:
		return m.Categories, nil
	case KindManagers:
		return m.Managers, nil
	default:
		return nil, ErrUnknownEntryKind
	}
}

// SetEntries replaces the reference list of the given kind.
func (m *Masters) SetEntries(kind EntryKind, entries []Entry) error {
	switch kind {
	case KindClients:
		m.Clients = entries
	case KindCategories:
		m.Categories = entries
	case KindManagers:
		m.Managers = entries
	default:
		return ErrUnknownEntryKind
	}
	return nil
}

// SetEntryActive flips the active flag of a named entry.
func SetEntryActive(entries []Entry, name string, active bool) ([]Entry, error) {
	for i := range entries {
		if entries[i].Name == name {
			entries[i].Active = active
			return entries, nil
		}
	}
	return entries, ErrEntryNotFound
}

// AddEntry appends a named entry to the given list.
func AddEntry(entries []Entry, name string, active bool) ([]Entry, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return entries, ErrEmptyEntryName
	}
	for _, entry := range entries {
		if entry.Name == cleaned {
			return entries, ErrDuplicateEntryName
		}
	}
	return append(entries, Entry{Name: cleaned, Active: active}), nil
}

// RecordUpdate appends a history entry for a settings save, keeping only
// the most recent entries.
func (m *Masters) RecordUpdate(now time.Time) {
	m.History = append(m.History, HistoryEntry{
		Timestamp:  now.Format("2006-01-02T15:04:05"),
		Clients:    len(m.Clients),
		Categories: len(m.Categories),
		Managers:   len(m.Managers),
	})
	if len(m.History) > historyLimit {
		m.History = m.History[len(m.History)-historyLimit:]
	}
}

// DefaultMasters seeds the reference data for a fresh data directory.
func DefaultMasters() Masters {
	actives := func(names ...string) []Entry {
		entries := make([]Entry, 0, len(names))
		for _, name := range names {
			entries = append(entries, Entry{Name: name, Active: true})
		}
		return entries
	}
	return Masters{
		Clients:        actives("金子技建", "佐藤組", "新宮開発", "高野組"),
		Categories:     actives("建築", "土木", "型枠", "その他"),
		Managers:       actives("山中", "近藤", "田中"),
		Holidays:       []string{},
		CurrencyFormat: DefaultCurrencyFormat,
		DecimalPlaces:  0,
		History:        []HistoryEntry{},
	}
}
