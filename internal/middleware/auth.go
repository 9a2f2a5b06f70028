package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"finai/internal/models"
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

func bearerToken(c *gin.Context) string {
	// Authorization: Bearer xxx
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	// ?token=xxx for downloads opened directly in a browser
	return c.Query("token")
}

// AuthMiddleware validates the JWT and stores the user under "currentUser".
// Requests without a valid token are rejected before any data is read.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please log in again")
			} else {
				zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("load current user")
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load user")
			}
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}
