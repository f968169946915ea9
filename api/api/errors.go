/* errors.go
 * Contains the errors returned by the API. Validation failures are *logic.ValidationError and backend
 * failures are *external.TransportError or *external.RejectedError, so the front-end can tell them apart
 * Authors: Zachary Bower
 */

package api

import "errors"

var (
	// ErrDeadlineExpired is returned when the round's prediction window has closed. No call is made
	ErrDeadlineExpired = errors.New("the deadline for predictions has passed")

	// ErrMatchClosed is returned when the match has kicked off or is no longer "da_disputare"
	ErrMatchClosed = errors.New("this match no longer accepts predictions")

	// ErrSubmissionInFlight is returned when the same user is already sending a prediction for the same match
	ErrSubmissionInFlight = errors.New("a prediction for this match is already being sent")

	// ErrNotLoggedIn is returned when the Discord user has no stored session
	ErrNotLoggedIn = errors.New("you are not logged in")

	// ErrSessionExpired is returned, together with external.ErrUnauthorized, after the backend refused
	// the stored token. The session has been deleted by then
	ErrSessionExpired = errors.New("your session has expired, please log in again")
)
