package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_api/internal/service"
	"storefront_api/pkg/logger"
)

// respondErr maps service sentinels onto HTTP statuses. Unrecognized
// errors are internal faults and get logged here, once, at the boundary.
func respondErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"code": 409, "message": err.Error()})
	default:
		logger.Op("http").Errorw("request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"err", err,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "internal error"})
	}
}
