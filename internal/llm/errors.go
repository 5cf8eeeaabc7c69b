// ABOUTME: Error taxonomy for the external model service
// ABOUTME: Sentinel errors so callers can branch with errors.Is
package llm

import (
	"context"
	"errors"
	"net"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrServiceUnavailable means the backing model server cannot be reached
	ErrServiceUnavailable = errors.New("model service unavailable")

	// ErrTimeout means the model server did not answer within the deadline
	ErrTimeout = errors.New("model service timeout")

	// ErrInvalidInput means the request was malformed (e.g. empty text)
	ErrInvalidInput = errors.New("invalid input")
)

// classify maps a transport-level failure onto the sentinel taxonomy.
// Unrecognized errors are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrServiceUnavailable) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return wrap(ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return wrap(ErrTimeout, err)
		}
		return wrap(ErrServiceUnavailable, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429:
			return wrap(ErrServiceUnavailable, err)
		case apiErr.HTTPStatusCode == 400 || apiErr.HTTPStatusCode == 422:
			return wrap(ErrInvalidInput, err)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return wrap(ErrServiceUnavailable, err)
	}

	return err
}

func wrap(sentinel, cause error) error {
	return &classifiedError{sentinel: sentinel, cause: cause}
}

type classifiedError struct {
	sentinel error
	cause    error
}

func (e *classifiedError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *classifiedError) Is(target error) bool {
	return errors.Is(e.sentinel, target)
}

func (e *classifiedError) Unwrap() error {
	return e.cause
}
