// Package persistence provides the file-backed storage for the scenario
// bounded context.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/genbaworks/genba/internal/scenario/domain"
)

const dateLayout = "2006-01-02"

// JSONScenarioRepository stores scenarios as a JSON object keyed by
// scenario name. Key order in the file is the scenario order.
type JSONScenarioRepository struct {
	path string
}

// NewJSONScenarioRepository creates a repository backed by the given file.
func NewJSONScenarioRepository(path string) *JSONScenarioRepository {
	return &JSONScenarioRepository{path: path}
}

// taskRecord is the stored task shape.
type taskRecord struct {
	Task       string  `json:"Task"`
	Start      string  `json:"Start"`
	Finish     string  `json:"Finish"`
	Resource   string  `json:"Resource"`
	Department string  `json:"Department"`
	ValueChain string  `json:"ValueChain"`
	Progress   float64 `json:"Progress"`
	CostBudget float64 `json:"CostBudget"`
	CostActual float64 `json:"CostActual"`
	RiskLevel  string  `json:"RiskLevel"`
}

// Ensure seeds the file with the default scenarios when it does not
// exist yet.
func (r *JSONScenarioRepository) Ensure(ctx context.Context) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat scenarios file: %w", err)
	}
	return r.SaveAll(ctx, domain.DefaultScenarios())
}

// LoadAll reads every scenario in stored order. A missing file yields an
// empty list.
func (r *JSONScenarioRepository) LoadAll(ctx context.Context) ([]domain.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}

	return decodeScenarios(data)
}

// SaveAll rewrites the file with the given scenarios, preserving order.
func (r *JSONScenarioRepository) SaveAll(ctx context.Context, scenarios []domain.Scenario) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeScenarios(scenarios)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write scenarios file: %w", err)
	}
	return nil
}

// decodeScenarios parses the top-level object with a token walk so the
// stored key order survives.
func decodeScenarios(data []byte) ([]domain.Scenario, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse scenarios file: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse scenarios file: expected object, got %v", tok)
	}

	var scenarios []domain.Scenario
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse scenarios file: %w", err)
		}
		name := keyTok.(string)

		var records []taskRecord
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse scenario %q: %w", name, err)
		}

		scenario := domain.Scenario{Name: name}
		for _, rec := range records {
			scenario.Tasks = append(scenario.Tasks, rec.toTask())
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

func encodeScenarios(scenarios []domain.Scenario) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range scenarios {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, fmt.Errorf("encode scenario name: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		records := make([]taskRecord, 0, len(s.Tasks))
		for _, task := range s.Tasks {
			records = append(records, toRecord(task))
		}
		value, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encode scenario %q: %w", s.Name, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent scenarios: %w", err)
	}
	indented.WriteByte('\n')
	return indented.Bytes(), nil
}

func (rec taskRecord) toTask() domain.Task {
	task := domain.Task{
		Name:        rec.Task,
		Start:       parseDate(rec.Start),
		Finish:      parseDate(rec.Finish),
		Resource:    rec.Resource,
		Department:  rec.Department,
		ValueChain:  rec.ValueChain,
		ProgressPct: rec.Progress,
		CostBudget:  rec.CostBudget,
		CostActual:  rec.CostActual,
		RiskLevel:   rec.RiskLevel,
	}
	if task.RiskLevel == "" {
		task.RiskLevel = domain.DefaultRiskLevel
	}
	return task
}

func toRecord(task domain.Task) taskRecord {
	return taskRecord{
		Task:       task.Name,
		Start:      formatDate(task.Start),
		Finish:     formatDate(task.Finish),
		Resource:   task.Resource,
		Department: task.Department,
		ValueChain: task.ValueChain,
		Progress:   task.ProgressPct,
		CostBudget: task.CostBudget,
		CostActual: task.CostActual,
		RiskLevel:  task.RiskLevel,
	}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(dateLayout)
}
