package stream_test

import (
	"context"
	"testing"
	"time"

	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherHandshakeAndUpdate(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	updates := make(chan *runtimev1.ConfigurationItem, 1)
	srv.OnSubscribeConfiguration = func(in *runtimev1.SubscribeConfigurationRequest, strm runtimev1.Dapr_SubscribeConfigurationServer) error {
		if err := strm.Send(&runtimev1.SubscribeConfigurationResponse{Id: "sub-1"}); err != nil {
			return err
		}
		item := <-updates
		return strm.Send(&runtimev1.SubscribeConfigurationResponse{
			Items: map[string]*runtimev1.ConfigurationItem{"flag.enabled": item},
		})
	}
	srv.OnUnsubscribeConfiguration = func(_ context.Context, in *runtimev1.UnsubscribeConfigurationRequest) (*runtimev1.UnsubscribeConfigurationResponse, error) {
		require.Equal("sub-1", in.Id)
		return &runtimev1.UnsubscribeConfigurationResponse{Ok: true}, nil
	}

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	watch, watcher, err := stream.NewConfigWatcher(conn, "appconfig", []string{"flag.enabled"}, nil, nil)
	require.NoError(err)

	updates <- &runtimev1.ConfigurationItem{Value: "true", Version: "2"}

	select {
	case update := <-watch:
		require.Equal("sub-1", update.SubscriptionID)
		require.Equal("true", update.Items["flag.enabled"].Value)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for configuration update")
	}

	require.NoError(watcher.Close(ctx))
}

func TestConfigWatcherHandshakeDeliversInitialItems(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	block := make(chan struct{})
	srv.OnSubscribeConfiguration = func(in *runtimev1.SubscribeConfigurationRequest, strm runtimev1.Dapr_SubscribeConfigurationServer) error {
		if err := strm.Send(&runtimev1.SubscribeConfigurationResponse{
			Id:    "sub-2",
			Items: map[string]*runtimev1.ConfigurationItem{"flag.enabled": {Value: "true", Version: "1"}},
		}); err != nil {
			return err
		}
		<-block
		return nil
	}
	defer close(block)

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	watch, watcher, err := stream.NewConfigWatcher(conn, "appconfig", []string{"flag.enabled"}, nil, nil)
	require.NoError(err)
	defer func() { _ = watcher.Close(ctx) }()

	select {
	case update := <-watch:
		require.Equal("sub-2", update.SubscriptionID)
		require.Equal("true", update.Items["flag.enabled"].Value)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for handshake-delivered configuration items")
	}
}

func TestConfigWatcherHandshakeTimeout(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	block := make(chan struct{})
	srv.OnSubscribeConfiguration = func(in *runtimev1.SubscribeConfigurationRequest, strm runtimev1.Dapr_SubscribeConfigurationServer) error {
		<-block
		return nil
	}
	defer close(block)

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	_, _, err = stream.NewConfigWatcher(conn, "appconfig", nil, nil, nil)
	require.ErrorIs(err, stream.ErrHandshakeTimeout)
}
