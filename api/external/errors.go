/* errors.go
 * Contains the errors returned by the backend client. Transport failures and backend refusals are kept
 * apart so callers can show a generic connectivity message for the first and the server's own message
 * for the second
 * Authors: Zachary Bower
 */

package external

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is wrapped in a TransportError when the backend refuses the bearer token
var ErrUnauthorized = errors.New("backend rejected the session token")

// TransportError means the call did not complete: network unreachable, timeout, unexpected
// HTTP status or a response that could not be decoded
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError means the backend answered but refused the operation (success: false).
// Message is the server's message, passed through unchanged
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}
