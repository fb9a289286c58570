package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// respondError writes err as an APIError. Domain errors keep their status,
// anything else is logged and hidden behind a 500.
func respondError(ctx *gin.Context, err error) {
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		status := domainErr.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, domainErr.APIError())
		return
	}

	_ = ctx.Error(err)
	log.WithError(err).WithField("path", ctx.FullPath()).Error("Unhandled error")
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
}

// badRequest reports a body or query that could not be decoded
func badRequest(ctx *gin.Context, message string, err error) {
	var details map[string]interface{}
	if err != nil {
		details = map[string]interface{}{"reason": err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message, details))
}

// callerID fetches the authenticated user or answers 401
func callerID(ctx *gin.Context) (uint, bool) {
	userID, ok := middleware.CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
		return 0, false
	}
	return userID, true
}

// pathID parses the :id path parameter or answers 404
func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found"))
		return 0, false
	}
	return uint(id), true
}

// SetLogLevel adjusts the package logger, normally from config.LogLevel
func SetLogLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
}
