package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.notifications.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}
	util.Success(c, util.Response{
		"items":  items,
		"unread": unread,
	})
}

type createNotificationReq struct {
	Message string `json:"message" binding:"required"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req createNotificationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "message is required")
		return
	}

	n, err := h.notifications.Create(c.Request.Context(), user.ID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"notification": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "marked as read"})
}
