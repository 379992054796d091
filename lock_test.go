package dapr_test

import (
	"context"
	"testing"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
)

func TestTryLockValidatesArgumentsLocally(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnTryLockAlpha1 = func(context.Context, *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error) {
		t.Fatal("RPC should not be issued for a locally-invalid call")
		return nil, nil
	}

	client := newTestClient(t, srv)
	_, err := client.TryLock(context.Background(), "locks", "", "me", 10)

	var argErr *dapr.ArgumentError
	require.ErrorAs(err, &argErr)
}

func TestTryLockAndUnlock(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnTryLockAlpha1 = func(_ context.Context, in *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error) {
		require.Equal("resource-1", in.ResourceId)
		return &runtimev1.TryLockResponse{Success: true}, nil
	}

	calls := 0
	srv.OnUnlockAlpha1 = func(_ context.Context, in *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error) {
		require.Equal("resource-1", in.ResourceId)
		calls++
		if calls == 1 {
			return &runtimev1.UnlockResponse{Status: runtimev1.UnlockResponse_SUCCESS}, nil
		}
		return &runtimev1.UnlockResponse{Status: runtimev1.UnlockResponse_LOCK_DOES_NOT_EXIST}, nil
	}

	client := newTestClient(t, srv)
	handle, err := client.TryLock(context.Background(), "locks", "resource-1", "me", 10)
	require.NoError(err)
	require.True(handle.Success)

	require.NoError(handle.Release(context.Background()))
	require.Equal(1, srv.Calls[mock.UnlockAlpha1RPC])

	// A second release re-issues the RPC; the sidecar observes the lock is
	// already gone and reports it as lock_does_not_exist.
	require.ErrorIs(handle.Release(context.Background()), dapr.ErrLockError)
	require.Equal(2, srv.Calls[mock.UnlockAlpha1RPC])
}

func TestClientUnlockStandalone(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnUnlockAlpha1 = func(_ context.Context, in *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error) {
		require.Equal("locks", in.StoreName)
		require.Equal("resource-1", in.ResourceId)
		require.Equal("me", in.LockOwner)
		return &runtimev1.UnlockResponse{Status: runtimev1.UnlockResponse_SUCCESS}, nil
	}

	client := newTestClient(t, srv)
	status, err := client.Unlock(context.Background(), "locks", "resource-1", "me")
	require.NoError(err)
	require.Equal(dapr.UnlockSuccess, status)
}

func TestClientUnlockValidatesArgumentsLocally(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnUnlockAlpha1 = func(context.Context, *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error) {
		t.Fatal("RPC should not be issued for a locally-invalid call")
		return nil, nil
	}

	client := newTestClient(t, srv)
	_, err := client.Unlock(context.Background(), "locks", "", "me")

	var argErr *dapr.ArgumentError
	require.ErrorAs(err, &argErr)
}

func TestTryLockContentionIsNotAnError(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnTryLockAlpha1 = func(context.Context, *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error) {
		return &runtimev1.TryLockResponse{Success: false}, nil
	}

	client := newTestClient(t, srv)
	handle, err := client.TryLock(context.Background(), "locks", "resource-1", "me", 10)
	require.NoError(err)
	require.False(handle.Success)

	// Releasing a handle that never acquired is a no-op.
	require.NoError(handle.Release(context.Background()))
}

func TestReleaseSurfacesContentionOnUnlock(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnTryLockAlpha1 = func(context.Context, *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error) {
		return &runtimev1.TryLockResponse{Success: true}, nil
	}
	srv.OnUnlockAlpha1 = func(context.Context, *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error) {
		return &runtimev1.UnlockResponse{Status: runtimev1.UnlockResponse_LOCK_BELONGS_TO_OTHERS}, nil
	}

	client := newTestClient(t, srv)
	handle, err := client.TryLock(context.Background(), "locks", "resource-1", "me", 10)
	require.NoError(err)

	require.ErrorIs(handle.Release(context.Background()), dapr.ErrLockError)
}
