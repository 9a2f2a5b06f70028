package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"finai/internal/finance"
	"finai/internal/models"
	"finai/internal/report"
	"finai/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams the caller's transactions as CSV, XLSX or a PDF statement.
type ExportHandler struct {
	txs       *service.TransactionService
	dashboard *service.DashboardService
}

func NewExportHandler(txs *service.TransactionService, dashboard *service.DashboardService) *ExportHandler {
	return &ExportHandler{txs: txs, dashboard: dashboard}
}

func queryFrom(c *gin.Context) service.TransactionQuery {
	return service.TransactionQuery{
		Month:    c.Query("month"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}
}

func (h *ExportHandler) load(c *gin.Context, q service.TransactionQuery) (*models.User, []models.Transaction, bool) {
	user, ok := currentUser(c)
	if !ok {
		return nil, nil, false
	}
	txs, err := h.txs.List(c.Request.Context(), user.ID, q)
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return user, txs, true
}

func attach(c *gin.Context, contentType, ext string, body []byte) {
	name := fmt.Sprintf("finai_%s.%s", time.Now().Format("20060102_150405"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, body)
}

func (h *ExportHandler) CSV(c *gin.Context) {
	_, txs, ok := h.load(c, queryFrom(c))
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, txs); err != nil {
		respondError(c, err)
		return
	}
	attach(c, "text/csv; charset=utf-8", "csv", buf.Bytes())
}

func (h *ExportHandler) XLSX(c *gin.Context) {
	_, txs, ok := h.load(c, queryFrom(c))
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, txs); err != nil {
		respondError(c, err)
		return
	}
	attach(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", buf.Bytes())
}

// PDF renders a monthly statement; ?month= defaults to the current month.
func (h *ExportHandler) PDF(c *gin.Context) {
	q := queryFrom(c)
	if q.Month == "" {
		q.Month = finance.MonthKey(time.Now().UTC())
	}

	user, txs, ok := h.load(c, q)
	if !ok {
		return
	}
	dash, err := h.dashboard.GetDashboard(c.Request.Context(), user.ID, q.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	err = report.WritePDF(&buf, report.Statement{
		Email:        user.Email,
		Dashboard:    dash,
		Transactions: txs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	attach(c, "application/pdf", "pdf", buf.Bytes())
}
