package persistence

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// derivedColumns extend the stored columns on enriched exports.
var derivedColumns = []string{
	"粗利額",
	"原価率",
	"受注差異",
	"予算乖離額",
	"予算超過",
	"完成工事高",
	"実行粗利",
	"想定進捗率",
	"進捗差異",
	"遅延日数",
	"リスクレベル",
	"リスクコメント",
}

// monthlyColumns is the column order of the monthly summary export.
var monthlyColumns = []string{
	"年月",
	"受注金額",
	"予定原価",
	"粗利",
	"粗利率",
	"延べ人数",
	"キャッシュイン",
	"キャッシュアウト",
	"キャッシュフロー",
	"累計キャッシュフロー",
}

func enrichedRow(e *domain.EnrichedProject) []string {
	row := projectRow(&e.Project)
	return append(row,
		formatNumber(e.GrossProfit),
		formatNumber(e.CostRatioPct),
		formatNumber(e.OrderVariance),
		formatNumber(e.BudgetVariance),
		strconv.FormatBool(e.IsOverBudget),
		formatNumber(e.CompletedValue),
		formatNumber(e.RealizedGrossProfit),
		formatNumber(e.ExpectedProgressPct),
		formatNumber(e.ProgressVariancePct),
		strconv.Itoa(e.DelayDays),
		e.ComputedRiskLevel.String(),
		e.RiskComment,
	)
}

func monthlyRow(b *domain.MonthlyBucket) []string {
	return []string{
		b.MonthStart.Format(dateLayout),
		formatNumber(b.Revenue),
		formatNumber(b.PlannedCost),
		formatNumber(b.GrossProfit),
		formatNumber(b.GrossMarginPct),
		formatNumber(b.ManpowerDays),
		formatNumber(b.CashIn),
		formatNumber(b.CashOut),
		formatNumber(b.CashFlow),
		formatNumber(b.CumulativeCashFlow),
	}
}

// exportCSV renders a download-ready CSV: UTF-8 BOM for Excel
// compatibility and CRLF line endings.
func exportCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}
	return buf.Bytes(), nil
}

func exportExcel(sheetName string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, value := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("convert coordinates: %w", err)
			}
			cellValue := any(value)
			if n, err := strconv.ParseFloat(value, 64); err == nil && value != "" {
				cellValue = n
			}
			if err := f.SetCellValue(sheetName, cell, cellValue); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportProjectsCSV renders the enriched project table as CSV.
func ExportProjectsCSV(projects []domain.EnrichedProject) ([]byte, error) {
	return exportCSV(enrichedHeader(), enrichedRows(projects))
}

// ExportProjectsExcel renders the enriched project table as a workbook.
func ExportProjectsExcel(projects []domain.EnrichedProject) ([]byte, error) {
	return exportExcel("案件一覧", enrichedHeader(), enrichedRows(projects))
}

// ExportMonthlyCSV renders the monthly summary as CSV.
func ExportMonthlyCSV(buckets []domain.MonthlyBucket) ([]byte, error) {
	return exportCSV(monthlyColumns, monthlyRows(buckets))
}

// ExportMonthlyExcel renders the monthly summary as a workbook.
func ExportMonthlyExcel(buckets []domain.MonthlyBucket) ([]byte, error) {
	return exportExcel("月次集計", monthlyColumns, monthlyRows(buckets))
}

func enrichedHeader() []string {
	header := make([]string, 0, len(projectColumns)+len(derivedColumns))
	header = append(header, projectColumns...)
	return append(header, derivedColumns...)
}

func enrichedRows(projects []domain.EnrichedProject) [][]string {
	rows := make([][]string, 0, len(projects))
	for i := range projects {
		rows = append(rows, enrichedRow(&projects[i]))
	}
	return rows
}

func monthlyRows(buckets []domain.MonthlyBucket) [][]string {
	rows := make([][]string, 0, len(buckets))
	for i := range buckets {
		rows = append(rows, monthlyRow(&buckets[i]))
	}
	return rows
}
