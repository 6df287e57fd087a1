package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses

func abortWithDetail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: message})
}

// ValidationFailed answers 400 with a field -> messages body.
func ValidationFailed(c *gin.Context, fields map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, fields)
}

func BadRequest(c *gin.Context, message string) {
	abortWithDetail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	abortWithDetail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	abortWithDetail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	abortWithDetail(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	abortWithDetail(c, http.StatusInternalServerError, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	abortWithDetail(c, http.StatusServiceUnavailable, message)
}
