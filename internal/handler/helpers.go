package handler

import (
	"errors"
	"net/http"
	"strconv"

	"finai/internal/models"
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// currentUser returns the user set by the auth middleware, writing a 401 when absent.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the response envelope. Unclassified errors
// are logged and reported without detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, err.Error())
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrUpstream):
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("upstream failure")
		util.Error(c, http.StatusBadGateway, util.CodeUpstream, err.Error())
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}

func badRequest(c *gin.Context, msg string) {
	util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
}
