package errors

import (
	"fmt"
	"strings"
)

// maxBodyLen caps how much of a response body is kept on an API error.
const maxBodyLen = 512

// Error is a classified failure. Every error surfaced by the client and the
// usecases carries one in its chain.
type Error struct {
	// Code (required) is the ErrorCode of the failure.
	Code ErrorCode

	// Category is derived from Code when left empty.
	Category Category

	// Message (required) is a human readable description.
	Message string

	// StatusCode (optional) is the HTTP status for API errors.
	StatusCode int

	// Body (optional) is the truncated response body for API errors.
	Body string

	// Err (optional) is the underlying cause.
	Err error
}

// New creates an Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Category: CategoryOf(code),
		Message:  message,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an Error with the given code around cause.
func Wrap(cause error, code ErrorCode, message string) *Error {
	e := New(code, message)
	e.Err = cause
	return e
}

// NewAPIError classifies a non-success HTTP status.
func NewAPIError(statusCode int, body []byte) *Error {
	code := APIError
	switch statusCode {
	case 401, 403:
		code = UnauthorizedError
	case 429:
		code = RateLimitedError
	}

	e := Newf(code, "statistics api returned HTTP %d", statusCode)
	e.StatusCode = statusCode
	e.Body = truncate(strings.TrimSpace(string(body)), maxBodyLen)
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Body != "" {
		b.WriteString(": ")
		b.WriteString(e.Body)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
