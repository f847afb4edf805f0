package frisbii

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType mirrors the error.type field of webhook error responses.
type ErrorType string

const (
	InvalidRequest  ErrorType = "invalid_request"  // Missing or malformed field.
	ProcessingError ErrorType = "processing_error" // Consumer or downstream failure.
)

// ErrorCode is a machine-readable identifier for the specific failure.
type ErrorCode string

const (
	InvalidSignature  ErrorCode = "invalid_signature"  // Signature does not match the event.
	SignatureRequired ErrorCode = "signature_required" // Signed events are required but the signature was missing.
	StaleTimestamp    ErrorCode = "stale_timestamp"    // Timestamp skew exceeded the allowed window.
)

// Error is the JSON error payload returned by [WebhookHandler].
type Error struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Param   *string   `json:"param,omitempty"`

	status int
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// StatusCode reports the HTTP status the error is written with.
func (e *Error) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.status
}

type errorOption func(*Error)

// WithOffendingParam sets the JSON path for the field that triggered the error.
func WithOffendingParam(jsonPath string) errorOption {
	return func(er *Error) {
		er.Param = &jsonPath
	}
}

// WithStatusCode overrides the HTTP status code returned to the caller.
func WithStatusCode(status int) errorOption {
	return func(er *Error) {
		er.status = status
	}
}

// NewInvalidRequestError builds a Bad Request error payload.
func NewInvalidRequestError(message string, opts ...errorOption) *Error {
	return newError(InvalidRequest, ErrorCode(InvalidRequest), message, append([]errorOption{WithStatusCode(http.StatusBadRequest)}, opts...)...)
}

// NewProcessingError builds an Internal Server Error payload. Frisbii
// redelivers webhooks that are not acknowledged with a 2xx status.
func NewProcessingError(message string, opts ...errorOption) *Error {
	return newError(ProcessingError, ErrorCode(ProcessingError), message, append([]errorOption{WithStatusCode(http.StatusInternalServerError)}, opts...)...)
}

// NewHTTPError allows callers to control the status code explicitly.
func NewHTTPError(status int, typ ErrorType, code ErrorCode, message string, opts ...errorOption) *Error {
	return newError(typ, code, message, append(opts, WithStatusCode(status))...)
}

func newError(typ ErrorType, code ErrorCode, message string, opts ...errorOption) *Error {
	errPayload := &Error{
		Type:    typ,
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(errPayload)
	}
	return errPayload
}

// APIError is returned by [Client] when the checkout API answers with a
// non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	// Body is the raw response text, trimmed and capped at 4 KiB.
	Body string

	// Fields below are filled when the body is a Frisbii error document.
	Code      int
	Reason    string
	Message   string
	RequestID string
}

// Error reports the numeric status and the response body text.
func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Body)
}

type apiErrorDocument struct {
	Code      int    `json:"code"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
	var doc apiErrorDocument
	if err := json.Unmarshal(body, &doc); err == nil {
		apiErr.Code = doc.Code
		apiErr.Reason = doc.Error
		apiErr.Message = doc.Message
		apiErr.RequestID = doc.RequestID
	}
	return apiErr
}
