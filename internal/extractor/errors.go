package extractor

import (
	"errors"
	"fmt"
)

// ErrNoFileSelected is returned before any network traffic when Extract is
// called without a file.
var ErrNoFileSelected = errors.New("no file selected")

// ServerError is a non-2xx response from the extraction service. Message is
// the body's "detail" field when the service provided one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("extraction service status %d: %s", e.Status, e.Message)
}

// NetworkError means no response arrived at all.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("extraction service unreachable: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}
