package handler

import (
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword updates the current user's password.
func ChangePassword(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "old_password and new_password are required")
			return
		}

		if err := auth.ChangePassword(c.Request.Context(), user, req.OldPassword, req.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		util.Success(c, util.Response{"message": "password changed"})
	}
}
