package response

import (
	"encoding/xml"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/apperror"
)

type Response struct {
	XMLName   xml.Name  `json:"-" xml:"response" yaml:"-"`
	Success   bool      `json:"success" xml:"success" yaml:"success"`
	Error     *Error    `json:"error,omitempty" xml:"error,omitempty" yaml:"error,omitempty"`
	Timestamp time.Time `json:"timestamp" xml:"timestamp" yaml:"timestamp"`
}

type Error struct {
	Code    string       `json:"code" xml:"code" yaml:"code"`
	Message string       `json:"message" xml:"message" yaml:"message"`
	Details []FieldError `json:"details,omitempty" xml:"details>field,omitempty" yaml:"details,omitempty"`
}

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field" xml:"name" yaml:"field"`
	Message string `json:"message" xml:"message" yaml:"message"`
}

// ErrorResponse writes the error envelope in the negotiated format and aborts the chain.
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details []FieldError) {
	Render(c, statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().UTC(),
	})
	c.Abort()
}

// FromError maps a service error onto status, code and message.
// Unclassified errors are logged and reported as 500 without leaking internals.
func FromError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	ErrorWithDetails(c, status, apperror.Code(err), apperror.PublicMessage(err), fieldErrors(err))
}

func fieldErrors(err error) []FieldError {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		details = append(details, FieldError{Field: field, Message: verrs[field].Error()})
	}
	return details
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
