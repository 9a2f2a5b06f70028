package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receipts *service.ReceiptService
}

func NewReceiptHandler(receipts *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

type receiptReq struct {
	OCRText string `json:"ocr_text" binding:"required"`
}

// Parse turns OCR text into candidate transactions. Nothing is persisted.
func (h *ReceiptHandler) Parse(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	var req receiptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "ocr_text is required")
		return
	}

	items, err := h.receipts.Parse(c.Request.Context(), req.OCRText)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{"items": items})
}
