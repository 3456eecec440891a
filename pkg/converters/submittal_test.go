package converters

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/specwise/spec-analyzer/internal/models"
)

func sampleEntries() []models.SubmittalEntry {
	return []models.SubmittalEntry{
		{
			Section:   "01 33 00",
			Item:      "Submittal Register",
			Type:      "Administrative",
			DueBy:     "15 days after NTP",
			Notes:     "Update monthly",
			SourceRef: "1.3.B",
		},
		{
			Section: "03 30 00",
			Item:    "Concrete Mix Design",
			Type:    "Product Data",
		},
	}
}

func TestSubmittalCSV(t *testing.T) {
	out, err := SubmittalCSV(sampleEntries())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Section", "Item", "Type", "Due By", "Notes", "Source Ref"}, records[0])
	assert.Equal(t, "01 33 00", records[1][0])
	assert.Equal(t, "15 days after NTP", records[1][3])
	// Sparse rows keep the schema with empty cells.
	assert.Equal(t, []string{"03 30 00", "Concrete Mix Design", "Product Data", "", "", ""}, records[2])
}

func TestSubmittalCSVEmptyLog(t *testing.T) {
	out, err := SubmittalCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestSubmittalXLSX(t *testing.T) {
	out, err := SubmittalXLSX(sampleEntries())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submittal Log")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Section", rows[0][0])
	assert.Equal(t, "Submittal Register", rows[1][1])
	assert.Equal(t, "03 30 00", rows[2][0])
}
