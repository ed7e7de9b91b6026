package graph

import (
	"errors"
	"fmt"

	"github.com/justtrackio/graphmail/pkg/exec"
)

const (
	UnknownErrorCode    = "Unknown"
	UnknownErrorMessage = "Unknown error"
)

// TokenError is returned when the identity provider answered the token request
// with an error response.
type TokenError struct {
	Code        string
	Description string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("could not get access token: %s: %s", e.Code, e.Description)
}

func IsTokenError(err error) bool {
	var tokenError *TokenError

	return errors.As(err, &tokenError)
}

// SendError is returned when the mail api answered the send request with an
// error response.
type SendError struct {
	Code    string
	Message string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("could not send mail: %s: %s", e.Code, e.Message)
}

func IsSendError(err error) bool {
	var sendError *SendError

	return errors.As(err, &sendError)
}

type Reason string

const (
	// ReasonNetwork marks connection level failures like dns errors, refused
	// connections and timeouts.
	ReasonNetwork Reason = "network"
	// ReasonUnknown marks any other unexpected failure during the call.
	ReasonUnknown Reason = "unknown"
)

// UnreachableError is returned when we did not get a response from the service
// at all, regardless of which endpoint we were talking to.
type UnreachableError struct {
	Reason Reason
	Err    error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("could not reach service (%s error): %s", e.Reason, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

func IsUnreachableError(err error) bool {
	var unreachableError *UnreachableError

	return errors.As(err, &unreachableError)
}

func newUnreachableError(err error) *UnreachableError {
	reason := ReasonUnknown

	if exec.IsConnectionError(err) || exec.IsTimeoutError(err) {
		reason = ReasonNetwork
	}

	return &UnreachableError{
		Reason: reason,
		Err:    err,
	}
}
