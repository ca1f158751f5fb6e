package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is an error with the HTTP status it maps to. Message is sent to
// the client as {"error": Message}.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrPatternNotFound is returned when no pattern has the requested ID.
var ErrPatternNotFound = &APIError{Status: http.StatusNotFound, Message: "Pattern not found"}

// ErrNoFile is returned when an upload request carries no image.
var ErrNoFile = &APIError{Status: http.StatusBadRequest, Message: "No file uploaded"}

// ErrValidation wraps a request decoding or validation failure.
func ErrValidation(err error) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Invalid request: " + err.Error(), Err: err}
}

// ErrUpload reports a rejected upload.
func ErrUpload(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// HTTPStatus returns the status code for err; unknown errors are 500.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": ...} with the mapped status. Server errors
// are logged; client errors are not.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
