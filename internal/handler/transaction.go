package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	txs *service.TransactionService
}

func NewTransactionHandler(txs *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

type transactionReq struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required,max=32"`
	Type        string          `json:"type" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

func (r transactionReq) input() (service.TransactionInput, error) {
	date, err := util.ParseDate(r.Date)
	if err != nil {
		return service.TransactionInput{}, err
	}
	return service.TransactionInput{
		Amount:      r.Amount,
		Category:    r.Category,
		Type:        r.Type,
		Date:        date,
		Description: r.Description,
	}, nil
}

func bindTransaction(c *gin.Context) (service.TransactionInput, bool) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "amount, category, type and date are required")
		return service.TransactionInput{}, false
	}
	in, err := req.input()
	if err != nil {
		badRequest(c, err.Error())
		return service.TransactionInput{}, false
	}
	return in, true
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := bindTransaction(c)
	if !ok {
		return
	}

	t, err := h.txs.Create(c.Request.Context(), user.ID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": t})
}

// List supports ?month=YYYY-MM&type=&category= filters.
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.txs.List(c.Request.Context(), user.ID, queryFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindTransaction(c)
	if !ok {
		return
	}

	t, err := h.txs.Update(c.Request.Context(), user.ID, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": t})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.txs.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
