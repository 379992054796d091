package stream_test

import (
	"context"

	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// newTestConn dials through an in-memory bufconn and wraps the result in a
// *stream.Conn, satisfying every per-stream Client interface this package defines.
func newTestConn(ctx context.Context, bufnet *mock.Listener) (*stream.Conn, *grpc.ClientConn, error) {
	cc, err := bufnet.Connect(ctx, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return stream.NewConn(cc, runtimev1.NewDaprClient(cc)), cc, nil
}
