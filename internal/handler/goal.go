package handler

import (
	"encoding/json"

	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalHandler struct {
	goals *service.GoalService
}

func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type goalReq struct {
	Title        string          `json:"title" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     string          `json:"deadline"`
}

func bindGoal(c *gin.Context) (service.GoalInput, bool) {
	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title and target_amount are required")
		return service.GoalInput{}, false
	}
	in := service.GoalInput{Title: req.Title, TargetAmount: req.TargetAmount}
	if req.Deadline != "" {
		d, err := util.ParseDate(req.Deadline)
		if err != nil {
			badRequest(c, err.Error())
			return service.GoalInput{}, false
		}
		in.Deadline = &d
	}
	return in, true
}

func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := bindGoal(c)
	if !ok {
		return
	}

	g, err := h.goals.Create(c.Request.Context(), user.ID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"goal": g})
}

// List also emits milestone notifications for goals at 75% and 100%.
func (h *GoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.goals.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"items": items})
}

func (h *GoalHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindGoal(c)
	if !ok {
		return
	}

	g, err := h.goals.Update(c.Request.Context(), user.ID, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"goal": g})
}

// Contribute accepts {"amount": 25} or a bare JSON number.
func (h *GoalHandler) Contribute(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "amount is required")
		return
	}
	amount, ok := parseContribution(body)
	if !ok {
		badRequest(c, "amount is required")
		return
	}

	g, err := h.goals.Contribute(c.Request.Context(), user.ID, id, amount)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"goal": g})
}

func parseContribution(body []byte) (decimal.Decimal, bool) {
	var bare decimal.Decimal
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, true
	}
	var req struct {
		Amount *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Amount == nil {
		return decimal.Decimal{}, false
	}
	return *req.Amount, true
}

func (h *GoalHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.goals.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

