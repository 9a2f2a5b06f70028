package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetHandler struct {
	budgets *service.BudgetService
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

type budgetReq struct {
	Category string          `json:"category" binding:"required,max=32"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month" binding:"required"`
}

func (r budgetReq) input() service.BudgetInput {
	return service.BudgetInput{Category: r.Category, Amount: r.Amount, Month: r.Month}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "category, amount and month are required")
		return
	}

	b, err := h.budgets.Create(c.Request.Context(), user.ID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"budget": b})
}

// ListForMonth returns the month's budgets with spent, percentage and tier.
func (h *BudgetHandler) ListForMonth(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.budgets.ListForMonth(c.Request.Context(), user.ID, c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"items": items})
}

func (h *BudgetHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "category, amount and month are required")
		return
	}

	b, err := h.budgets.Update(c.Request.Context(), user.ID, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"budget": b})
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.budgets.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
