package report

import (
	"fmt"
	"io"

	"finai/internal/finance"
	"finai/internal/models"

	"github.com/phpdave11/gofpdf"
)

const maxStatementRows = 200

// Statement is the content of a monthly PDF statement.
type Statement struct {
	Email        string
	Dashboard    finance.DashboardResult
	Transactions []models.Transaction // the month's transactions, newest first
}

var txColumns = []float64{26, 22, 34, 30, 70}

func statementTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(txColumns[0], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(txColumns[1], 8, "TYPE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(txColumns[2], 8, "CATEGORY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(txColumns[3], 8, "AMOUNT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(txColumns[4], 8, "DESCRIPTION", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
}

// WritePDF renders s as an A4 statement.
func WritePDF(w io.Writer, s Statement) error {
	d := s.Dashboard

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FinAI Monthly Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Month: "+d.Month)
	pdf.Ln(5)
	pdf.Cell(0, 6, "Account: "+s.Email)
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{60, 60, 62}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, d.TotalIncome.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, d.TotalExpense.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, d.TotalIncome.Sub(d.TotalExpense).StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	if len(d.CategoryBreakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Spending by category")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, c := range d.CategoryBreakdown {
			pdf.CellFormat(60, 7, c.Category, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, c.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, c.Percentage.StringFixed(1)+"%", "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Transactions")
	pdf.Ln(9)
	statementTableHeader(pdf)

	for i, t := range s.Transactions {
		if i >= maxStatementRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, fmt.Sprintf("... %d more not shown", len(s.Transactions)-maxStatementRows), "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			statementTableHeader(pdf)
		}

		amount := t.Amount.StringFixed(2)
		if t.IsExpense() {
			amount = "-" + amount
		}
		pdf.CellFormat(txColumns[0], 8, t.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(txColumns[1], 8, t.Type, "1", 0, "C", false, 0, "")
		pdf.CellFormat(txColumns[2], 8, t.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(txColumns[3], 8, amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(txColumns[4], 8, trimTo(t.Description, 40), "1", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
