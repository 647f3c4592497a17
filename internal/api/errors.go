package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies a failure for branching and logging. It never alters the
// code/message the backend sent.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not-found"
	KindConflict        Kind = "conflict"
	KindValidation      Kind = "validation"
	KindServerError     Kind = "server-error"
	KindTransportError  Kind = "transport-error"
	KindUnknown         Kind = "unknown"
)

// APIError is the one error shape callers see. Constructed once per failed
// call and never mutated.
type APIError struct {
	Kind    Kind           `json:"-"`
	Status  int            `json:"-"` // 0 when the request never reached the server
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Well-known error codes synthesized client-side.
const (
	CodeUnknownError   = "UNKNOWN_ERROR"
	CodeNetworkError   = "NETWORK_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
)

// classifyStatus maps an HTTP status to the error taxonomy.
func classifyStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthenticated
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServerError
	default:
		return KindUnknown
	}
}

// errorBody matches both wrapped error shapes the backend uses:
// {success:false, error:{...}} and a bare {error:{...}}.
type errorBody struct {
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// normalizeError builds an APIError from a non-2xx response. Extraction is
// attempted against the known error envelopes; anything else synthesizes an
// UNKNOWN_ERROR carrying the status text.
func normalizeError(status int, statusText string, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != nil {
		return &APIError{
			Kind:    classifyStatus(status),
			Status:  status,
			Code:    eb.Error.Code,
			Message: eb.Error.Message,
			Details: eb.Error.Details,
		}
	}
	msg := statusText
	if msg == "" {
		msg = "request failed"
	}
	return &APIError{
		Kind:    classifyStatus(status),
		Status:  status,
		Code:    CodeUnknownError,
		Message: msg,
	}
}

// successFalseError detects a success-wrapped error delivered on a 2xx
// status. The backend does this for some validation rejections.
func successFalseError(body []byte) *APIError {
	var probe struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.Success == nil || *probe.Success {
		return nil
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != nil {
		return &APIError{
			Kind:    KindUnknown,
			Code:    eb.Error.Code,
			Message: eb.Error.Message,
			Details: eb.Error.Details,
		}
	}
	return &APIError{Kind: KindUnknown, Code: CodeUnknownError, Message: "request failed"}
}

// transportError wraps a network-level failure (connect, DNS, timeout).
func transportError(err error) *APIError {
	return &APIError{
		Kind:    KindTransportError,
		Code:    CodeNetworkError,
		Message: err.Error(),
	}
}

func notFoundError(message string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: message,
	}
}

func validationError(message string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Code:    CodeInvalidRequest,
		Message: message,
	}
}

// ErrorKind reports the taxonomy kind of err, or KindUnknown for errors that
// did not come out of this package.
func ErrorKind(err error) Kind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool  { return ErrorKind(err) == KindNotFound }
func IsConflict(err error) bool  { return ErrorKind(err) == KindConflict }
func IsTransport(err error) bool { return ErrorKind(err) == KindTransportError }
