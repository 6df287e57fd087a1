package handler

import (
	"errors"
	"io"

	"stickynotes/dto"
	"stickynotes/middleware"
	"stickynotes/usecase"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// bindJSON decodes and validates the body into obj, answering 400 itself when
// that fails.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		utils.TrackError("validation", "request_body")
		utils.ValidationFailed(c, dto.FieldErrors(err))
	case errors.Is(err, io.EOF):
		utils.BadRequest(c, "JSON parse error - request body is empty")
	default:
		utils.TrackError("validation", "malformed_json")
		utils.BadRequest(c, "JSON parse error - "+err.Error())
	}
	return false
}

// writeError maps usecase errors onto status codes. Unknown errors are logged
// and reported as 500 without detail.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.TrackError("validation", verr.Field)
		utils.ValidationFailed(c, map[string][]string{verr.Field: {verr.Message}})
	case errors.Is(err, usecase.ErrNoteNotFound):
		utils.NotFound(c, "Not found.")
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, "You do not have permission to perform this action.")
	case errors.Is(err, usecase.ErrUsernameTaken):
		utils.ValidationFailed(c, map[string][]string{"username": {"A user with that username already exists."}})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.Unauthorized(c, "No active account found with the given credentials")
	default:
		logger.Error("request failed",
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		)
		utils.TrackError("internal", "unhandled")
		utils.InternalError(c, "A server error occurred.")
	}
}
