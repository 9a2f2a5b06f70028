package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"finai/internal/models"
)

// WriteCSV writes txs as CSV with a UTF-8 BOM so spreadsheet apps detect the encoding.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range txs {
		if err := cw.Write(transactionRow(t)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
