package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"finai/internal/finance"
	"finai/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Type: models.TypeExpense, Category: "Food", Amount: decimal.RequireFromString("12.5"), Date: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), Description: "Lunch, with team"},
		{Type: models.TypeIncome, Category: "Salary", Amount: decimal.NewFromInt(2000), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTransactions()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	want := []string{"2024-06-20", "expense", "Food", "12.50", "Lunch, with team"}
	for i, v := range want {
		if records[1][i] != v {
			t.Errorf("records[1][%d] = %q, want %q", i, records[1][i], v)
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleTransactions()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0][0] != "Date" || rows[2][2] != "Salary" || rows[2][3] != "2000" {
		t.Errorf("rows = %v", rows)
	}
}

func TestWritePDF(t *testing.T) {
	txs := sampleTransactions()
	var buf bytes.Buffer
	err := WritePDF(&buf, Statement{
		Email:        "alice@example.com",
		Dashboard:    finance.BuildDashboard(txs, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Transactions: txs,
	})
	if err != nil {
		t.Fatalf("WritePDF() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("output does not look like a PDF: %q", buf.String()[:10])
	}
}

func TestTrimTo(t *testing.T) {
	if got := trimTo("short", 10); got != "short" {
		t.Errorf("trimTo = %q", got)
	}
	if got := trimTo("a very long description", 8); got != "a very ..." {
		t.Errorf("trimTo = %q", got)
	}
}
