package dapr

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrMissingEndpoint     = errors.New("invalid options: endpoint is required")
	ErrMissingMock         = errors.New("invalid options: testing mode requires a mock server")
	ErrStreamUninitialized = errors.New("could not initialize stream with sidecar")
	ErrStreamInactive      = errors.New("operation against a closed or not-yet-active subscription")
	ErrStreamCancelled     = errors.New("stream terminated by a cancellation signal")
	ErrReconnect           = errors.New("failed to reconnect to the sidecar within the timeout")
	ErrCryptoStreamError   = errors.New("crypto stream sequence gap or premature end")
	ErrLockError           = errors.New("unlock failed")
	ErrEmptyResourceID     = errors.New("lock resource id must not be empty")
	ErrEmptyLockOwner      = errors.New("lock owner must not be empty")
	ErrEmptyJobName        = errors.New("job name must not be empty")
	ErrEmptyJobSchedule    = errors.New("job must specify either a schedule or a due time")
	ErrEmptyKey            = errors.New("state key must not be empty")
	ErrUnsupportedParam    = errors.New("unsupported conversation parameter type")
)

// Errorer is implemented by long-running stream wrappers (subscriptions, watchers)
// that surface a latched fatal error once they stop retrying.
type Errorer interface {
	Err() error
}

// ArgumentError reports a local validation failure caught before any RPC is
// attempted, mirroring spec ArgumentInvalid.
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newArgumentError(field, message string) error {
	return &ArgumentError{Field: field, Message: message}
}

// ConnectionError wraps a transport failure: the channel could not be established
// or an established connection was lost.
type ConnectionError struct {
	Endpoint string
	Cause    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to sidecar at %s: %v", e.Endpoint, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// SidecarError surfaces a gRPC status returned by the sidecar uniformly across every
// RPC in this module.
type SidecarError struct {
	Code    codes.Code
	Message string
	Details []interface{}
}

func (e *SidecarError) Error() string {
	return fmt.Sprintf("sidecar error [%s]: %s", e.Code, e.Message)
}

// AsSidecarError converts a gRPC status error into a SidecarError; non-status errors
// (context deadline, connection failures) are returned unmodified.
func AsSidecarError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	if st.Code() == codes.DeadlineExceeded {
		return fmt.Errorf("%w: %s", context.DeadlineExceeded, st.Message())
	}

	details := make([]interface{}, 0, len(st.Details()))
	for _, d := range st.Details() {
		details = append(details, d)
	}

	return &SidecarError{Code: st.Code(), Message: st.Message(), Details: details}
}

// StateError wraps a save/delete/transaction failure against a state store, often
// wrapping a SidecarError.
type StateError struct {
	Op    string
	Store string
	Key   string
	Cause error
}

func (e *StateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("state %s failed for key %q in store %q: %v", e.Op, e.Key, e.Store, e.Cause)
	}
	return fmt.Sprintf("state %s failed in store %q: %v", e.Op, e.Store, e.Cause)
}

func (e *StateError) Unwrap() error { return e.Cause }
