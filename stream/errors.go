package stream

import "errors"

// Errorer is implemented by every long-lived stream wrapper in this package; a
// non-nil Err means the stream has stopped retrying and is no longer usable.
type Errorer interface {
	Err() error
}

var (
	ErrStreamUninitialized = errors.New("could not initialize stream with sidecar")
	ErrStreamInactive       = errors.New("operation against a closed or not-yet-active subscription")
	ErrStreamCancelled      = errors.New("stream terminated by a cancellation signal")
	ErrReconnect            = errors.New("failed to reconnect to the sidecar within the timeout")
	ErrSequenceGap          = errors.New("crypto stream response arrived out of sequence")
	ErrHandshakeTimeout     = errors.New("configuration subscription handshake did not complete in time")
)
