package report

import (
	"fmt"
	"io"

	"finai/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Transactions"

// WriteXLSX writes txs as a single-sheet workbook. Amounts are numeric cells.
func WriteXLSX(w io.Writer, txs []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range transactionHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	for idx, t := range txs {
		row := idx + 2
		amount, _ := t.Amount.Float64()
		values := []any{t.Date.Format("2006-01-02"), t.Type, t.Category, amount, t.Description}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 10)
	_ = f.SetColWidth(sheetName, "C", "C", 16)
	_ = f.SetColWidth(sheetName, "D", "D", 12)
	_ = f.SetColWidth(sheetName, "E", "E", 40)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
