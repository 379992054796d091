package dapr_test

import (
	"context"
	"testing"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"
)

func newTestClient(t *testing.T, srv *mock.Dapr) *dapr.Client {
	t.Helper()
	client, err := dapr.New(dapr.WithMock(srv))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGetState(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnGetState = func(_ context.Context, in *runtimev1.GetStateRequest) (*runtimev1.GetStateResponse, error) {
		require.Equal("orders", in.StoreName)
		require.Equal("order-1", in.Key)
		return &runtimev1.GetStateResponse{Data: []byte(`{"total":42}`), Etag: "1"}, nil
	}

	client := newTestClient(t, srv)
	data, etag, err := client.GetState(context.Background(), "orders", "order-1", nil, dapr.ConsistencyEventual)
	require.NoError(err)
	require.Equal([]byte(`{"total":42}`), data)
	require.Equal("1", etag)
}

func TestGetStateEmptyKeyReturnsErrEmptyKey(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	client := newTestClient(t, srv)
	_, _, err := client.GetState(context.Background(), "orders", "", nil, dapr.ConsistencyUnspecified)
	require.ErrorIs(err, dapr.ErrEmptyKey)
}

func TestSaveStateWrapsFailureAsStateError(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	require.NoError(srv.UseError(mock.SaveStateRPC, codes.Unavailable, "store unavailable"))

	client := newTestClient(t, srv)
	err := client.SaveState(context.Background(), "orders", dapr.StateItem{Key: "order-1", Value: []byte("x")})
	require.Error(err)

	var stateErr *dapr.StateError
	require.ErrorAs(err, &stateErr)
	require.Equal("save", stateErr.Op)
	require.Equal("order-1", stateErr.Key)
}

func TestExecuteStateTransaction(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	var seenOps []runtimev1.TransactionalStateOperation_OperationType
	srv.OnExecuteStateTransaction = func(_ context.Context, in *runtimev1.ExecuteStateTransactionRequest) (*runtimev1.ExecuteStateTransactionResponse, error) {
		for _, op := range in.Operations {
			seenOps = append(seenOps, op.OperationType)
		}
		return &runtimev1.ExecuteStateTransactionResponse{}, nil
	}

	client := newTestClient(t, srv)
	err := client.ExecuteStateTransaction(context.Background(), "orders", []dapr.TransactionOp{
		{Op: dapr.OpUpsert, Key: "a", Value: []byte("1")},
		{Op: dapr.OpDelete, Key: "b"},
	}, nil)
	require.NoError(err)
	require.Equal([]runtimev1.TransactionalStateOperation_OperationType{dapr.OpUpsert, dapr.OpDelete}, seenOps)
}

func TestExecuteStateTransactionValidatesEveryOpLocally(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnExecuteStateTransaction = func(_ context.Context, in *runtimev1.ExecuteStateTransactionRequest) (*runtimev1.ExecuteStateTransactionResponse, error) {
		t.Fatal("RPC should not be issued when any op carries an empty key")
		return nil, nil
	}

	client := newTestClient(t, srv)
	err := client.ExecuteStateTransaction(context.Background(), "orders", []dapr.TransactionOp{
		{Op: dapr.OpUpsert, Key: ""},
		{Op: dapr.OpDelete, Key: ""},
	}, nil)
	require.Error(err)
	require.Equal(2, len(multierr.Errors(err)))
}

func TestQueryState(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnQueryStateAlpha1 = func(_ context.Context, in *runtimev1.QueryStateRequest) (*runtimev1.QueryStateResponse, error) {
		return &runtimev1.QueryStateResponse{
			Results: []*runtimev1.QueryStateItem{{Key: "a", Data: []byte("1")}},
			Token:   "",
		}, nil
	}

	client := newTestClient(t, srv)
	results, token, err := client.QueryState(context.Background(), "orders", `{"filter":{}}`, nil)
	require.NoError(err)
	require.Empty(token)
	require.Len(results, 1)
	require.Equal("a", results[0].Key)
}
