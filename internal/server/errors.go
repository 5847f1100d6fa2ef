package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	receiptdomain "github.com/rasidhq/rasid/internal/receipt/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func newValidationError(field, code, message string) (int, errorPayload) {
	return http.StatusBadRequest, errorPayload{
		Type:    "validation_error",
		Message: "validation error",
		Errors: []ValidationError{
			{Field: field, Code: code, Message: message},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, receiptdomain.ErrCompanyNameMissing):
		return newValidationError("companyName", "invalid_company_name",
			"Company names are required for both seller and buyer.")
	case errors.Is(err, receiptdomain.ErrGSTINMissing):
		return newValidationError("gstin", "missing_gstin",
			"GSTIN is required for both seller and buyer.")
	case errors.Is(err, receiptdomain.ErrGSTINInvalid):
		return newValidationError("gstin", "invalid_gstin",
			"Invalid GSTIN format.")
	case errors.Is(err, receiptdomain.ErrLineItemInvalid):
		return newValidationError("items", "invalid_line_item",
			"All items need a description and a rate greater than zero.")
	case errors.Is(err, receiptdomain.ErrInvalidUpdate),
		errors.Is(err, ErrInvalidRequest):
		return newValidationError("request", "invalid_request", "invalid request")
	case errors.Is(err, ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, receiptdomain.ErrExportFailed):
		return http.StatusInternalServerError, errorPayload{
			Type:    "export_failed",
			Message: "Failed to generate PDF.",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}
