package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Ask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "message is required")
		return
	}

	reply, err := h.chat.Ask(c.Request.Context(), user.ID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"reply": reply})
}
