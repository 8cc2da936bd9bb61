package models

import "errors"

var (
	// ErrValidation is returned when the caller supplied a malformed flight
	// number, address or modifier.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a provider has no flight or no arrival data.
	ErrNotFound = errors.New("resource not found")

	// ErrServiceUnavailable covers provider timeouts, transport failures and
	// errors reported by the provider itself. The caller may retry later.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrConfiguration is returned when no usable flight-data credential is configured.
	ErrConfiguration = errors.New("configuration error")

	// ErrMalformedResponse is returned when a provider payload cannot be decoded
	// or lacks the fields we need.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// ServiceError pairs an error kind with the short message shown to the caller.
// The underlying cause is kept for logs only.
type ServiceError struct {
	Kind    error
	Message string
	Err     error
}

// NewServiceError builds a ServiceError of the given kind.
func NewServiceError(kind error, message string, cause error) *ServiceError {
	return &ServiceError{Kind: kind, Message: message, Err: cause}
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap lets errors.Is match both the kind and the cause.
func (e *ServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
