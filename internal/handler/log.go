package handler

import (
	"strconv"
	"time"

	"finai/internal/store"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

// LogHandler serves the caller's audit trail.
type LogHandler struct {
	logs       store.AuditLogStore
	encryptKey string
	pageSize   int
}

func NewLogHandler(logs store.AuditLogStore, encryptKey string, pageSize int) *LogHandler {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return &LogHandler{logs: logs, encryptKey: encryptKey, pageSize: pageSize}
}

type logResp struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	Path      string    `json:"path"`
	Method    string    `json:"method"`
	Status    int       `json:"status"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ListLogs returns one page (?page=&page_size=) of the user's audit log, decrypted.
func (h *LogHandler) ListLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.Query("page_size"))
	if size <= 0 || size > 100 {
		size = h.pageSize
	}

	logs, total, err := h.logs.List(c.Request.Context(), user.ID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]logResp, 0, len(logs))
	for _, l := range logs {
		items = append(items, logResp{
			ID:        l.ID,
			Action:    util.DecryptField(h.encryptKey, l.ActionEnc),
			Path:      util.DecryptField(h.encryptKey, l.PathEnc),
			Method:    l.Method,
			Status:    l.Status,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items":     items,
		"page":      page,
		"page_size": size,
		"total":     total,
	})
}
