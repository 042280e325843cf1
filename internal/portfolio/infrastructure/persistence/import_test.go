package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProjectsCSV(t *testing.T) {
	content := "\ufeffid,案件名,着工日,竣工日,受注金額,リスク度合い\r\n" +
		"P001,取り込みテスト,2025-07-01,2025-10-31,\"8,500,000\",高\r\n" +
		"P002,二件目,,,\"1,000,000\",\r\n"

	loaded, err := ReadProjectsCSV([]byte(content))
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "P001", loaded[0].ID)
	assert.Equal(t, "取り込みテスト", loaded[0].Name)
	assert.Equal(t, *day(2025, time.July, 1), *loaded[0].PlannedStart)
	assert.Equal(t, 8_500_000.0, loaded[0].OrderAmount)
	assert.Equal(t, "高", loaded[0].RiskLevel.String())

	assert.Nil(t, loaded[1].PlannedStart)
	assert.Empty(t, loaded[1].RiskLevel.String())
}

func TestReadProjectsEmptyInput(t *testing.T) {
	loaded, err := ReadProjectsCSV(nil)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestReadProjectsPicksDecoderByExtension(t *testing.T) {
	csvData := []byte("id,案件名\nP001,拡張子テスト\n")

	loaded, err := ReadProjects("upload.CSV", csvData)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "拡張子テスト", loaded[0].Name)

	_, err = ReadProjects("upload.xlsx", csvData)
	assert.Error(t, err, "CSV bytes are not a valid workbook")
}
