/*
Package interceptors assembles the dial-time gRPC interceptor chain shared by every
Client connection: otel trace propagation, and a circuit breaker around unary sidecar
calls and stream creation that opens after repeated failed calls (any returned error,
sidecar status errors included, counts as a failure) so callers fail fast instead of
queuing behind a dead sidecar (complementing the health gate). The chain is built once
in Connect, mirroring the teacher's posture of wiring its authentication interceptors
once at dial time rather than per call.
*/
package interceptors

import (
	"context"

	grpcmiddleware "github.com/grpc-ecosystem/go-grpc-middleware/v2"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// NewBreaker constructs the circuit breaker guarding sidecar calls. It trips open
// once more than five consecutive calls have failed (on the sixth) and probes again
// after the default reset timeout.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
}

func breakerUnary(cb *gobreaker.CircuitBreaker) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		_, err := cb.Execute(func() (interface{}, error) {
			return nil, invoker(ctx, method, req, reply, cc, opts...)
		})
		return err
	}
}

func breakerStream(cb *gobreaker.CircuitBreaker) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		result, err := cb.Execute(func() (interface{}, error) {
			return streamer(ctx, desc, cc, method, opts...)
		})
		if err != nil {
			return nil, err
		}
		return result.(grpc.ClientStream), nil
	}
}

// DialOptions returns the otel stats handler and the chained unary/stream
// interceptors. The go-grpc-middleware chain helpers are used even for a single
// interceptor so additional interceptors (retry, logging) have a slot to join
// without changing Connect's call site.
func DialOptions(cb *gobreaker.CircuitBreaker) []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(grpcmiddleware.ChainUnaryClient(breakerUnary(cb))),
		grpc.WithStreamInterceptor(grpcmiddleware.ChainStreamClient(breakerStream(cb))),
	}
}
