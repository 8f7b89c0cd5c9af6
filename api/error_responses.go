package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/campusconnect/discovery-engine/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeEmptyQuery       ErrorCode = "EMPTY_QUERY"
	ErrorCodeUnknownCategory  ErrorCode = "UNKNOWN_CATEGORY"
	ErrorCodeEventNotFound    ErrorCode = "EVENT_NOT_FOUND"
	ErrorCodeOrgNotFound      ErrorCode = "ORGANIZATION_NOT_FOUND"
	ErrorCodeJobNotFound      ErrorCode = "JOB_NOT_FOUND"
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrorCodeRebuildFailed ErrorCode = "REBUILD_FAILED"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// SendServiceError translates a typed service error into the matching
// HTTP response. Unrecognized errors become 500s.
func SendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, internalErrors.ErrEmptyQuery):
		SendError(c, http.StatusBadRequest, ErrorCodeEmptyQuery, err.Error())
	case errors.Is(err, internalErrors.ErrUnknownCategory):
		SendError(c, http.StatusNotFound, ErrorCodeUnknownCategory, err.Error())
	case errors.Is(err, internalErrors.ErrEventNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeEventNotFound, err.Error())
	case errors.Is(err, internalErrors.ErrOrganizationNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeOrgNotFound, err.Error())
	case errors.Is(err, internalErrors.ErrJobNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeJobNotFound, err.Error())
	case errors.Is(err, internalErrors.ErrInvalidInput):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, internalErrors.ErrRebuildFailed):
		SendError(c, http.StatusInternalServerError, ErrorCodeRebuildFailed, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
	}
}
