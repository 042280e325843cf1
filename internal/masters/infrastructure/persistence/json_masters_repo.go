// Package persistence provides the file-backed storage for the masters
// bounded context.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/genbaworks/genba/internal/masters/domain"
)

// JSONMastersRepository stores the reference data set as a single JSON
// document.
type JSONMastersRepository struct {
	path string
}

// NewJSONMastersRepository creates a repository backed by the given file.
func NewJSONMastersRepository(path string) *JSONMastersRepository {
	return &JSONMastersRepository{path: path}
}

// Ensure seeds the file with the default reference data when it does not
// exist yet.
func (r *JSONMastersRepository) Ensure(ctx context.Context) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat masters file: %w", err)
	}
	return r.Save(ctx, domain.DefaultMasters())
}

// Load reads the data set, repairing missing structure. A missing file
// yields an empty normalized set.
func (r *JSONMastersRepository) Load(ctx context.Context) (domain.Masters, error) {
	var masters domain.Masters
	if err := ctx.Err(); err != nil {
		return masters, err
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		masters.Normalize()
		return masters, nil
	}
	if err != nil {
		return masters, fmt.Errorf("read masters file: %w", err)
	}
	if err := json.Unmarshal(data, &masters); err != nil {
		return masters, fmt.Errorf("parse masters file: %w", err)
	}

	masters.Normalize()
	return masters, nil
}

// Save normalizes and rewrites the data set.
func (r *JSONMastersRepository) Save(ctx context.Context, masters domain.Masters) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	masters.Normalize()
	data, err := json.MarshalIndent(masters, "", "  ")
	if err != nil {
		return fmt.Errorf("encode masters: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write masters file: %w", err)
	}
	return nil
}
