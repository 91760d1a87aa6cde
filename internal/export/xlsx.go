// Package export writes the normalized shop records to a spreadsheet.
package export

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"zabka-atlas/internal/shops"

	"github.com/xuri/excelize/v2"
)

// ErrNoRecords is returned when there is nothing to export. No file is
// written in that case.
var ErrNoRecords = errors.New("no records to export")

const sheetName = "Sklepy"

// header matches the column order of the spreadsheet consumers.
var header = []string{"geographical_longitude", "geographical_latitude", "address", "name"}

// WriteXLSX writes the records to an Excel file at path, sorted ascending by
// longitude for deterministic output. The input slice is left untouched.
func WriteXLSX(records []shops.Record, path string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	sorted := slices.Clone(records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lon < sorted[j].Lon })

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, rec := range sorted {
		row := i + 2
		values := []any{rec.Lon, rec.Lat, rec.Address, rec.Name}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("record cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write record %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}

	return nil
}
