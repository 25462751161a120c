package render

import (
	"fmt"

	"scout-server/internal/printing/domain"

	"github.com/xuri/excelize/v2"
)

const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Spreadsheet writes the sheet as an xlsx workbook with a header row of
// column names followed by one row per entry.
func Spreadsheet(sheet domain.Sheet) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	name := sheet.Name
	if name == "" {
		name = "Data"
	}
	if err := file.SetSheetName(file.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(sheet.Columns))
	for i, column := range sheet.Columns {
		header[i] = column
	}
	if err := file.SetSheetRow(name, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("locating row %d: %w", i, err)
		}
		values := row
		if err := file.SetSheetRow(name, cell, &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
