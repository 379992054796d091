package mock

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// Listener wraps a bufconn.Listener so the mock Dapr server can be dialed in-process
// without binding a real socket, the same testing pattern the teacher's mock package
// documents but does not vendor a copy of (its bufconn.go was not part of the
// retrieved pack); this file fills that gap using the standard
// google.golang.org/grpc/test/bufconn helper.
type Listener struct {
	sock *bufconn.Listener
}

// NewBufConn creates a new in-memory listener with the default buffer size.
func NewBufConn() *Listener {
	return &Listener{sock: bufconn.Listen(bufSize)}
}

// Sock returns the underlying net.Listener for use with grpc.Server.Serve.
func (l *Listener) Sock() net.Listener {
	return l.sock
}

// Connect dials a grpc.ClientConn through the in-memory listener.
func (l *Listener) Connect(ctx context.Context, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return l.sock.DialContext(ctx)
	})

	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	opts = append(opts, dialer)

	//nolint:staticcheck // bufconn dialing requires the blocking grpc.Dial path
	return grpc.DialContext(ctx, "bufnet", opts...)
}

// Close shuts down the listener, rejecting any further dial attempts.
func (l *Listener) Close() error {
	return l.sock.Close()
}
