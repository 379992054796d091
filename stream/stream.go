/*
Package stream holds the three long-lived subsystems that own background goroutines
and bounded queues over the shared gRPC channel: the pub/sub Subscriber, the crypto
Encrypt/Decrypt chunked streams, and the configuration watcher. The Subscriber and the
configuration watcher share the reconnect/backoff/down-channel machinery the teacher's
stream/publisher.go and stream/subscriber.go duplicate, with the backoff policy defined
once in this file; the crypto streams do not reconnect.
*/
package stream

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

const (
	// BufferSize is the default capacity of the outbound/inbound queues backing a
	// Subscriber or ConfigWatcher, matching the teacher's stream.BufferSize. Overflow
	// policy is block: callers that need drop-on-full semantics read the message
	// channel with their own select/default.
	BufferSize = 128

	// ReconnectTimeout bounds both the wait for the underlying gRPC connection to
	// recover and the exponential backoff's MaxElapsedTime, matching the teacher's
	// stream.ReconnectTimeout.
	ReconnectTimeout = 5 * time.Minute

	// HandshakeTimeout bounds how long SubscribeConfiguration waits for its first
	// (subscription-id-carrying) message before giving up.
	HandshakeTimeout = 5 * time.Second
)

// ConnectionObserver exposes the shared gRPC channel's connectivity state so a
// Subscriber/ConfigWatcher can detect a transient disconnect and wait for
// recovery before reopening its stream.
type ConnectionObserver interface {
	ConnState() connectivity.State
	WaitForReconnect(ctx context.Context) bool
}

// SubscribeClient is everything the pub/sub Subscriber needs from the shared channel.
type SubscribeClient interface {
	ConnectionObserver
	SubscribeTopicEventsAlpha1(ctx context.Context, opts ...grpc.CallOption) (runtimev1.Dapr_SubscribeTopicEventsAlpha1Client, error)
}

// EncryptClient is everything the Encrypt stream needs from the shared channel.
type EncryptClient interface {
	ConnectionObserver
	EncryptAlpha1(ctx context.Context, opts ...grpc.CallOption) (runtimev1.Dapr_EncryptAlpha1Client, error)
}

// DecryptClient is everything the Decrypt stream needs from the shared channel.
type DecryptClient interface {
	ConnectionObserver
	DecryptAlpha1(ctx context.Context, opts ...grpc.CallOption) (runtimev1.Dapr_DecryptAlpha1Client, error)
}

// ConfigClient is everything the configuration watcher needs from the shared channel.
type ConfigClient interface {
	ConnectionObserver
	SubscribeConfiguration(ctx context.Context, in *runtimev1.SubscribeConfigurationRequest, opts ...grpc.CallOption) (runtimev1.Dapr_SubscribeConfigurationClient, error)
	UnsubscribeConfiguration(ctx context.Context, in *runtimev1.UnsubscribeConfigurationRequest, opts ...grpc.CallOption) (*runtimev1.UnsubscribeConfigurationResponse, error)
}

// Conn adapts a *grpc.ClientConn plus the generated Dapr client into the four
// Client interfaces above, so Subscriber/Encrypt/Decrypt/ConfigWatcher can be built
// directly from the Client's shared channel without it implementing every RPC
// surface itself.
type Conn struct {
	*grpc.ClientConn
	runtimev1.DaprClient
}

// NewConn wraps cc/client for use by this package's stream wrappers.
func NewConn(cc *grpc.ClientConn, client runtimev1.DaprClient) *Conn {
	return &Conn{ClientConn: cc, DaprClient: client}
}

// ConnState reports the shared channel's current connectivity.State.
func (c *Conn) ConnState() connectivity.State {
	return c.ClientConn.GetState()
}

// WaitForReconnect polls the shared channel until it reports Ready or ctx expires.
//
// Experimental: relies on the experimental grpc.ClientConn.Connect API.
func (c *Conn) WaitForReconnect(ctx context.Context) bool {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.ClientConn.Connect()
			if c.ClientConn.GetState() == connectivity.Ready {
				return true
			}
		case <-ctx.Done():
			return false
		}
	}
}

// reconnectBackoff builds the exponential backoff policy shared by every reconnect
// loop in this package (spec.md §9 Open Questions: "make backoff an explicit,
// documented policy").
func reconnectBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = ReconnectTimeout
	return b
}
