// Fetch errors for collection endpoints.
package types

import (
	"errors"
	"fmt"
)

// Fetch failure categories. All three collapse into the Failed phase; they
// stay distinct so callers and tests can tell them apart.
var (
	ErrTransport   = errors.New("request failed")
	ErrStatus      = errors.New("unexpected http status")
	ErrDecode      = errors.New("invalid json body")
	ErrUnknownView = errors.New("unknown view")
)

// StatusError reports a non-success response from the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Code)
}

// Is lets errors.Is(err, ErrStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}
