package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrRequestFailed matches every RequestFailedError through errors.Is.
var ErrRequestFailed = stderrors.New("request failed")

// RequestFailedError is the single error kind returned by the API clients.
// StatusCode is zero when the request never got a response.
type RequestFailedError struct {
	Operation  string
	StatusCode int
	API        *APIError
	Err        error
}

func (e *RequestFailedError) Error() string {
	msg := "failed to " + e.Operation
	switch {
	case e.StatusCode != 0 && e.API != nil && e.API.Message != "":
		msg += fmt.Sprintf(": %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.API.Message)
	case e.StatusCode != 0:
		msg += fmt.Sprintf(": %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NewRequestFailed builds a RequestFailedError for a non-success response.
func NewRequestFailed(operation string, statusCode int, api *APIError) *RequestFailedError {
	return &RequestFailedError{Operation: operation, StatusCode: statusCode, API: api}
}

// WrapRequestFailed builds a RequestFailedError around a transport or decode
// failure.
func WrapRequestFailed(operation string, statusCode int, err error) *RequestFailedError {
	return &RequestFailedError{Operation: operation, StatusCode: statusCode, Err: err}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var rf *RequestFailedError
	if stderrors.As(err, &rf) {
		return rf.StatusCode
	}
	return 0
}

// IsNotFound reports whether the server answered 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsClientError reports whether the server answered with a 4xx status.
func IsClientError(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}

// IsServerError reports whether the server answered with a 5xx status.
func IsServerError(err error) bool {
	return StatusCode(err) >= 500
}
