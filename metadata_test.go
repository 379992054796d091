package dapr_test

import (
	"context"
	"testing"

	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
)

func TestGetMetadata(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnGetMetadata = func(context.Context, *runtimev1.GetMetadataRequest) (*runtimev1.GetMetadataResponse, error) {
		return &runtimev1.GetMetadataResponse{
			Id:                  "sidecar-1",
			ActiveActorsCount:   []*runtimev1.ActiveActorsCount{{Type: "worker", Count: 2}},
			RegisteredComponents: []*runtimev1.RegisteredComponents{{Name: "statestore", Type: "state.redis", Version: "v1"}},
			ExtendedMetadata:    map[string]string{"region": "us-east-1"},
		}, nil
	}

	client := newTestClient(t, srv)
	meta, err := client.GetMetadata(context.Background())
	require.NoError(err)
	require.Equal("sidecar-1", meta.ID)
	require.Len(meta.ActiveActorsCount, 1)
	require.Equal("worker", meta.ActiveActorsCount[0].Type)
	require.Len(meta.RegisteredComponents, 1)
	require.Equal("statestore", meta.RegisteredComponents[0].Name)
	require.Equal("us-east-1", meta.ExtendedMetadata["region"])
}

func TestSetMetadata(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnSetMetadata = func(_ context.Context, in *runtimev1.SetMetadataRequest) (*runtimev1.Empty, error) {
		require.Equal("region", in.Key)
		require.Equal("us-east-1", in.Value)
		return &runtimev1.Empty{}, nil
	}

	client := newTestClient(t, srv)
	require.NoError(client.SetMetadata(context.Background(), "region", "us-east-1"))
}

func TestShutdown(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	var called bool
	srv.OnShutdown = func(context.Context, *runtimev1.ShutdownRequest) (*runtimev1.Empty, error) {
		called = true
		return &runtimev1.Empty{}, nil
	}

	client := newTestClient(t, srv)
	require.NoError(client.Shutdown(context.Background()))
	require.True(called)
}
