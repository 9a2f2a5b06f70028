package handler

import (
	"finai/internal/finance"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the logged-in user.
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	util.Success(c, util.Response{"user": user})
}

// ListCategories returns the allowed categories per transaction type.
func ListCategories(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	util.Success(c, util.Response{"categories": finance.Categories()})
}
