package dapr_test

import (
	"context"
	"testing"
	"time"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
)

func TestGetConfiguration(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnGetConfiguration = func(_ context.Context, in *runtimev1.GetConfigurationRequest) (*runtimev1.GetConfigurationResponse, error) {
		require.Equal("appconfig", in.StoreName)
		return &runtimev1.GetConfigurationResponse{
			Items: map[string]*runtimev1.ConfigurationItem{"flag.enabled": {Value: "true", Version: "1"}},
		}, nil
	}

	client := newTestClient(t, srv)
	items, err := client.GetConfiguration(context.Background(), "appconfig", []string{"flag.enabled"}, nil)
	require.NoError(err)
	require.Equal("true", items["flag.enabled"].Value)
}

func TestGetConfigurationCachesAfterFirstFetch(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	calls := 0
	srv.OnGetConfiguration = func(_ context.Context, in *runtimev1.GetConfigurationRequest) (*runtimev1.GetConfigurationResponse, error) {
		calls++
		return &runtimev1.GetConfigurationResponse{
			Items: map[string]*runtimev1.ConfigurationItem{"flag.enabled": {Value: "true", Version: "1"}},
		}, nil
	}

	client, err := dapr.New(dapr.WithMock(srv), dapr.WithConfigurationCache(16))
	require.NoError(err)
	defer client.Close()

	for i := 0; i < 3; i++ {
		items, err := client.GetConfiguration(context.Background(), "appconfig", []string{"flag.enabled"}, nil)
		require.NoError(err)
		require.Equal("true", items["flag.enabled"].Value)
	}
	require.Equal(1, calls)
}

func TestWatchConfiguration(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
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

	client := newTestClient(t, srv)
	watch, watcher, err := client.WatchConfiguration("appconfig", []string{"flag.enabled"}, nil)
	require.NoError(err)

	updates <- &runtimev1.ConfigurationItem{Value: "true", Version: "2"}

	select {
	case update := <-watch:
		require.Equal("true", update.Items["flag.enabled"].Value)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for configuration update")
	}

	require.NoError(watcher.Close(context.Background()))
}
