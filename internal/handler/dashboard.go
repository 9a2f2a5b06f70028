package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res, err := h.dashboard.GetDashboard(c.Request.Context(), user.ID, c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"dashboard": res})
}
