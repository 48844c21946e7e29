package engine

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrNotReady is returned by every remote operation until the client has
// been configured with a usable API key.
var ErrNotReady = errors.New("youtube client not configured")

// APIError is a remote search or detail call that failed at the transport
// or API level. Status is the HTTP status code, 0 when the request never
// reached the API.
type APIError struct {
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return "youtube api: " + e.Message
	}
	return fmt.Sprintf("youtube api: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

// WrapAPIError converts a Data API client error into an *APIError,
// extracting the status code from googleapi errors.
func WrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{Status: gerr.Code, Message: gerr.Message, err: err}
	}
	return &APIError{Message: err.Error(), err: err}
}
