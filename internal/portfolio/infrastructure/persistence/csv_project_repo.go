// Package persistence provides the file-backed storage and the export
// codecs for the portfolio bounded context.
package persistence

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

const dateLayout = "2006-01-02"

// projectColumns is the on-disk column order of the project table.
var projectColumns = []string{
	"id",
	"案件名",
	"得意先",
	"元請区分",
	"工種",
	"ステータス",
	"着工日",
	"竣工日",
	"実際着工日",
	"実際竣工日",
	"回収開始日",
	"回収終了日",
	"支払開始日",
	"支払終了日",
	"受注予定額",
	"受注金額",
	"予算原価",
	"予定原価",
	"実績原価",
	"粗利率",
	"進捗率",
	"月平均必要人数",
	"担当部署",
	"バリューチェーン工程",
	"現場所在地",
	"担当者",
	"協力会社",
	"リスク度合い",
	"依存タスク",
	"備考",
	"リスクメモ",
}

// CSVProjectRepository stores the project table as a CSV file with
// Japanese column headers. Rows are kept sorted by planned start date.
type CSVProjectRepository struct {
	path string
}

// NewCSVProjectRepository creates a repository backed by the given file.
func NewCSVProjectRepository(path string) *CSVProjectRepository {
	return &CSVProjectRepository{path: path}
}

// Ensure seeds the file with the sample portfolio when it does not exist
// yet.
func (r *CSVProjectRepository) Ensure(ctx context.Context) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat projects file: %w", err)
	}
	return r.SaveAll(ctx, SampleProjects())
}

// LoadAll reads every project in stored order. Unknown columns are
// ignored and missing ones default to empty or zero, so files written by
// older layouts still load.
func (r *CSVProjectRepository) LoadAll(ctx context.Context) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open projects file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read projects file: %w", err)
	}
	return decodeProjects(records), nil
}

// decodeProjects turns header-plus-rows records into projects. Columns
// are matched by header name so reordered or partial files still load.
func decodeProjects(records [][]string) []domain.Project {
	if len(records) == 0 {
		return nil
	}

	index := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		index[strings.TrimPrefix(strings.TrimSpace(header), "\uFEFF")] = i
	}

	field := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	projects := make([]domain.Project, 0, len(records)-1)
	for _, row := range records[1:] {
		projects = append(projects, domain.Project{
			ID:                  field(row, "id"),
			Name:                field(row, "案件名"),
			Client:              field(row, "得意先"),
			ContractorLevel:     field(row, "元請区分"),
			Category:            field(row, "工種"),
			Status:              domain.Status(field(row, "ステータス")),
			PlannedStart:        parseDate(field(row, "着工日")),
			PlannedEnd:          parseDate(field(row, "竣工日")),
			ActualStart:         parseDate(field(row, "実際着工日")),
			ActualEnd:           parseDate(field(row, "実際竣工日")),
			CollectionStart:     parseDate(field(row, "回収開始日")),
			CollectionEnd:       parseDate(field(row, "回収終了日")),
			PaymentStart:        parseDate(field(row, "支払開始日")),
			PaymentEnd:          parseDate(field(row, "支払終了日")),
			OrderPlannedAmount:  parseNumber(field(row, "受注予定額")),
			OrderAmount:         parseNumber(field(row, "受注金額")),
			BudgetCost:          parseNumber(field(row, "予算原価")),
			PlannedCost:         parseNumber(field(row, "予定原価")),
			ActualCost:          parseNumber(field(row, "実績原価")),
			GrossMarginPct:      parseNumber(field(row, "粗利率")),
			ProgressPct:         parseNumber(field(row, "進捗率")),
			AvgMonthlyHeadcount: parseNumber(field(row, "月平均必要人数")),
			Department:          field(row, "担当部署"),
			ValueChainStage:     domain.ValueChainStage(field(row, "バリューチェーン工程")),
			Location:            field(row, "現場所在地"),
			Manager:             field(row, "担当者"),
			Partner:             field(row, "協力会社"),
			RiskLevel:           domain.RiskLevel(field(row, "リスク度合い")),
			DependencyNote:      field(row, "依存タスク"),
			Notes:               field(row, "備考"),
			RiskNote:            field(row, "リスクメモ"),
		})
	}
	return projects
}

// SaveAll replaces the table, sorted by planned start date with undated
// rows last.
func (r *CSVProjectRepository) SaveAll(ctx context.Context, projects []domain.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].PlannedStart, sorted[j].PlannedStart
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create projects file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(projectColumns); err != nil {
		return fmt.Errorf("write projects header: %w", err)
	}
	for i := range sorted {
		if err := writer.Write(projectRow(&sorted[i])); err != nil {
			return fmt.Errorf("write project row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush projects file: %w", err)
	}
	return nil
}

func projectRow(p *domain.Project) []string {
	return []string{
		p.ID,
		p.Name,
		p.Client,
		p.ContractorLevel,
		p.Category,
		p.Status.String(),
		formatDate(p.PlannedStart),
		formatDate(p.PlannedEnd),
		formatDate(p.ActualStart),
		formatDate(p.ActualEnd),
		formatDate(p.CollectionStart),
		formatDate(p.CollectionEnd),
		formatDate(p.PaymentStart),
		formatDate(p.PaymentEnd),
		formatNumber(p.OrderPlannedAmount),
		formatNumber(p.OrderAmount),
		formatNumber(p.BudgetCost),
		formatNumber(p.PlannedCost),
		formatNumber(p.ActualCost),
		formatNumber(p.GrossMarginPct),
		formatNumber(p.ProgressPct),
		formatNumber(p.AvgMonthlyHeadcount),
		p.Department,
		p.ValueChainStage.String(),
		p.Location,
		p.Manager,
		p.Partner,
		p.RiskLevel.String(),
		p.DependencyNote,
		p.Notes,
		p.RiskNote,
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

func parseNumber(value string) float64 {
	if value == "" {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0
	}
	return n
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
