package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hailam/bytesize/internal/ports"
)

const sheetName = "Sizes"

type XLSXWriter struct{}

func NewXLSX() ports.ReportWriter {
	return &XLSXWriter{}
}

// Write stores one row per literal on a "Sizes" sheet. Byte counts are
// written as numbers so spreadsheets can sum them.
func (w *XLSXWriter) Write(outPath string, rows []ports.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return err
		}
	}
	for i, r := range rows {
		values := []interface{}{r.Literal, r.Unit, r.Magnitude, r.Bytes, r.Human}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to set %s: %w", cell, err)
			}
		}
	}
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save xlsx file %s: %w", outPath, err)
	}
	return nil
}
