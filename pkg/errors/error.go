package errors

import (
	stderrors "errors"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents invalid input supplied by the caller.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// ConfigError represents a missing or invalid configuration value, e.g. no API token.
	ConfigError ErrorCode = "wb_config_error"
	// UnauthorizedError represents a token rejected by the API (HTTP 401 or 403).
	UnauthorizedError ErrorCode = "wb_unauthorized_error"

	// NetworkError represents a transport failure before a response was received.
	NetworkError ErrorCode = "wb_network_error"
	// TimeoutError represents a request that exceeded its deadline.
	TimeoutError ErrorCode = "wb_timeout_error"

	// APIError represents a non-success HTTP status returned by the API.
	APIError ErrorCode = "wb_api_error"
	// RateLimitedError represents HTTP 429 returned by the API.
	RateLimitedError ErrorCode = "wb_rate_limited_error"

	// ParseError represents a response body that is not valid JSON or has an unexpected shape.
	ParseError ErrorCode = "wb_parse_error"

	// FileWriteError represents a local file that cannot be created or written.
	FileWriteError ErrorCode = "wb_file_write_error"
	// FileReadError represents a local file that cannot be opened or read.
	FileReadError ErrorCode = "wb_file_read_error"
)

// Category represents the category of an error.
type Category string

const (
	// CategoryConfig indicates an error detected before any network call, or an auth rejection.
	CategoryConfig Category = "config"
	// CategoryNetwork indicates an error related to network operations.
	CategoryNetwork Category = "network"
	// CategoryExternal indicates an error returned by the remote API.
	CategoryExternal Category = "external"
	// CategoryParsing indicates an error decoding a response.
	CategoryParsing Category = "parsing"
	// CategoryIO indicates an error related to local files.
	CategoryIO Category = "io"
	// CategoryValidation indicates an error related to validation of input data.
	CategoryValidation Category = "validation"
	// CategoryUnknown indicates an unknown error category.
	CategoryUnknown Category = "unknown"
)

var categories = map[ErrorCode]Category{
	GeneralBadRequestError: CategoryValidation,
	ConfigError:            CategoryConfig,
	UnauthorizedError:      CategoryConfig,
	NetworkError:           CategoryNetwork,
	TimeoutError:           CategoryNetwork,
	APIError:               CategoryExternal,
	RateLimitedError:       CategoryExternal,
	ParseError:             CategoryParsing,
	FileWriteError:         CategoryIO,
	FileReadError:          CategoryIO,
}

// CategoryOf returns the category a code belongs to.
func CategoryOf(code ErrorCode) Category {
	if c, ok := categories[code]; ok {
		return c
	}
	return CategoryUnknown
}

// CodeOf returns the code of the first *Error found in err's chain.
// It returns GeneralInternalServerError for errors outside the taxonomy.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return GeneralInternalServerError
}

// IsCode reports whether err's chain holds an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// IsAuth reports whether err is a configuration or authentication failure.
func IsAuth(err error) bool {
	return IsCode(err, ConfigError) || IsCode(err, UnauthorizedError)
}

// As is stderrors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is stderrors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
