// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

// currentUserID pulls the authenticated user out of the gin context. A
// missing or malformed identity writes the 401 itself.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// serviceErrorResponse maps the services error taxonomy onto HTTP statuses.
// Unexpected errors are logged and surfaced as a generic 500 so storage
// internals never leak to the caller.
func serviceErrorResponse(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		utils.InternalErrorResponse(c, "")
	}
}
