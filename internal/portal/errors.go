package portal

import (
	"errors"
	"fmt"
)

// errors
var (
	// ErrNotFound is returned when the portal has no record for the given id.
	ErrNotFound = errors.New("record not found")
)

// genericMessage is shown when the server response carries no usable message.
const genericMessage = "Network error. Please try again."

// APIError is a non-2xx response from the portal API. Message is the server's
// own message when one was parseable, else a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal api: %s (status %d)", e.Message, e.StatusCode)
}

// UserMessage returns the text suitable for a user-facing notification.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return genericMessage
}

// IsNotFound reports whether err means the record does not exist server-side.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// UserMessage extracts user-facing text from any error returned by this
// package. Transport failures map to the generic message.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	if IsNotFound(err) {
		return "The requested record no longer exists."
	}
	return genericMessage
}
