package middleware

import (
	"bytes"
	"context"
	"io"
	"time"

	"finai/internal/models"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxAuditBody = 2000

// AuditWriter persists audit log rows.
type AuditWriter interface {
	Create(ctx context.Context, l *models.AuditLog) error
}

// AuditMiddleware records every authenticated call. Path and action (method, path
// and a short request body) are encrypted when encryptKey is set.
func AuditMiddleware(logs AuditWriter, encryptKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID string
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		c.Next()

		if userID == "" {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(body) > 0 && len(body) < maxAuditBody && !bytes.Contains(body, []byte("password")) {
			action += " " + string(body)
		}

		encPath, err := util.EncryptField(encryptKey, path)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("encrypt audit path")
			return
		}
		encAction, err := util.EncryptField(encryptKey, action)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("encrypt audit action")
			return
		}

		entry := models.AuditLog{
			UserID:    userID,
			PathEnc:   encPath,
			Method:    c.Request.Method,
			ActionEnc: encAction,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			CreatedAt: time.Now(),
		}
		// the request context may already be cancelled by now
		if err := logs.Create(context.WithoutCancel(c.Request.Context()), &entry); err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("write audit log")
		}
	}
}
