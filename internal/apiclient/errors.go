package apiclient

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every error returned by the gateway.
var ErrRequestFailed = errors.New("request failed")

const fallbackMessage = "Request failed"

// Error is the single failure kind raised by the gateway. Status is zero when
// no HTTP response was received.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrRequestFailed
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func statusMessage(status int) string {
	return fmt.Sprintf("HTTP %d", status)
}
