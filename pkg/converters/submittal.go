// Package converters renders the draft submittal log into the download
// formats offered by the API.
package converters

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/specwise/spec-analyzer/internal/models"
)

// submittalColumns is the fixed export schema, in column order.
var submittalColumns = []string{"Section", "Item", "Type", "Due By", "Notes", "Source Ref"}

func submittalRow(e models.SubmittalEntry) []string {
	return []string{e.Section, e.Item, e.Type, e.DueBy, e.Notes, e.SourceRef}
}

// SubmittalCSV renders the log as UTF-8 CSV with a header row.
func SubmittalCSV(entries []models.SubmittalEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(submittalColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if err := w.Write(submittalRow(e)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// SubmittalXLSX renders the log as a single-sheet XLSX workbook.
func SubmittalXLSX(entries []models.SubmittalEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Submittal Log"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, name := range submittalColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, e := range entries {
		for col, val := range submittalRow(e) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
