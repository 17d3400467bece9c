package gateway

import (
	"fmt"
)

// ErrRemoteUnavailable covers transport failures, timeouts and non-2xx
// replies from the remote function.
type ErrRemoteUnavailable struct {
	Function string
	Status   int
	Err      error
}

func (e *ErrRemoteUnavailable) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote function %s unavailable (status %d): %v", e.Function, e.Status, e.Err)
	}
	return fmt.Sprintf("remote function %s unavailable: %v", e.Function, e.Err)
}

func (e *ErrRemoteUnavailable) Unwrap() error { return e.Err }

// ErrRemoteMalformed means the function answered 2xx without the expected
// fields.
type ErrRemoteMalformed struct {
	Function string
	Err      error
}

func (e *ErrRemoteMalformed) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Function, e.Err)
}

func (e *ErrRemoteMalformed) Unwrap() error { return e.Err }
