package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors usable with errors.Is against an *OperationError.
var (
	// ErrUnreachable indicates that no HTTP response was received
	ErrUnreachable = errors.New("server api unreachable")

	// ErrNotFound indicates that the backend answered 404
	ErrNotFound = errors.New("server not found")

	// ErrConflict indicates that the backend answered 409
	ErrConflict = errors.New("server conflict")

	// ErrEmptyIPAddress is returned by Ping before any request is made
	ErrEmptyIPAddress = errors.New("ip address cannot be empty")
)

// ErrorKind classifies an OperationError without changing its single type.
type ErrorKind int

const (
	KindUnreachable ErrorKind = iota
	KindNotFound
	KindConflict
	KindClient
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// OperationError is the only error kind returned by the gateway.
// StatusCode is 0 when the request never produced an HTTP response.
type OperationError struct {
	Err        error
	Message    string
	StatusCode int
}

// Error keeps the user-facing wording shown by the dashboard.
func (e *OperationError) Error() string {
	return fmt.Sprintf("An error occurred - Error code %d", e.StatusCode)
}

// Unwrap exposes the underlying transport or decode error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Kind classifies the failure by status code.
func (e *OperationError) Kind() ErrorKind {
	switch {
	case e.StatusCode == 0:
		return KindUnreachable
	case e.StatusCode == http.StatusNotFound:
		return KindNotFound
	case e.StatusCode == http.StatusConflict:
		return KindConflict
	case e.StatusCode >= 500:
		return KindServer
	default:
		return KindClient
	}
}

// Is lets callers match a kind with errors.Is(err, ErrNotFound).
func (e *OperationError) Is(target error) bool {
	switch target {
	case ErrUnreachable:
		return e.Kind() == KindUnreachable
	case ErrNotFound:
		return e.Kind() == KindNotFound
	case ErrConflict:
		return e.Kind() == KindConflict
	default:
		return false
	}
}

// Detail returns the most specific message available for logs and tooltips.
func (e *OperationError) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}
