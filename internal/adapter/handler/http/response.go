package http

import (
	"errors"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every endpoint answers with the same envelope so the storefront can
// branch on success alone.
type successResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorResponse{
		Success: false,
		Message: message,
	})
}

func newSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func newListResponse(c *gin.Context, count int, data interface{}) {
	c.JSON(200, successResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// rejectionReason extracts the client-facing message from a validation
// failure; storage errors fall through and stay generic.
func rejectionReason(err error) (string, bool) {
	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return domainErr.Reason, true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return "Invalid request data", true
	}

	return "", false
}
