package persistence

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// ReadProjectsCSV decodes an uploaded CSV file. A leading UTF-8 BOM is
// tolerated and columns are matched by header name.
func ReadProjectsCSV(data []byte) ([]domain.Project, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read projects csv: %w", err)
	}
	return decodeProjects(records), nil
}

// ReadProjectsExcel decodes the first sheet of an uploaded workbook.
func ReadProjectsExcel(data []byte) ([]domain.Project, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return decodeProjects(rows), nil
}

// ReadProjects picks the decoder from the file name extension: .xlsx is
// treated as a workbook, anything else as CSV.
func ReadProjects(filename string, data []byte) ([]domain.Project, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return ReadProjectsExcel(data)
	}
	return ReadProjectsCSV(data)
}
