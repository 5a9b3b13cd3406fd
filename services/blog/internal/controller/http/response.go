package http

import (
	"errors"
	"net/http"

	"blogify/pkg/validation"
	"blogify/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope every successful endpoint returns.
type SuccessResponse struct {
	Status  bool   `json:"status" example:"true"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse carries field messages for 422 and an empty list otherwise.
type ErrorResponse struct {
	Status  bool   `json:"status" example:"false"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

func success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, SuccessResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func fail(c *gin.Context, code int, message string, errs any) {
	if errs == nil {
		errs = []any{}
	}
	c.JSON(code, ErrorResponse{
		Status:  false,
		Message: message,
		Errors:  errs,
	})
}

// writeKnownError renders the envelope for use case errors with a fixed
// status. It returns false for anything unexpected.
func writeKnownError(c *gin.Context, err error) bool {
	var fieldErrs validation.Errors

	switch {
	case errors.As(err, &fieldErrs):
		fail(c, http.StatusUnprocessableEntity, "Validation failed", fieldErrs)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, usecase.ErrUnauthenticated):
		fail(c, http.StatusUnauthorized, "Unauthenticated.", nil)
	case errors.Is(err, usecase.ErrBlogNotFound):
		fail(c, http.StatusNotFound, "Blog not found.", nil)
	case errors.Is(err, usecase.ErrForbidden):
		fail(c, http.StatusForbidden, "You do not own this blog.", nil)
	default:
		return false
	}
	return true
}

func serverError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Server Error", nil)
}
