package dapr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func sidecarHTTPPort(t *testing.T, server *httptest.Server) string {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return u.Port()
}

func TestWaitUntilReadySucceedsOnceHealthy(t *testing.T) {
	require := require.New(t)

	var ready atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Setenv("DAPR_HTTP_PORT", sidecarHTTPPort(t, server))

	srv := mock.New(nil)
	defer srv.Shutdown()

	client, err := dapr.New(dapr.WithMock(srv))
	require.NoError(err)
	defer client.Close()

	go func() {
		time.Sleep(50 * time.Millisecond)
		ready.Store(true)
	}()

	require.NoError(client.WaitUntilReady(context.Background(), 2*time.Second))
}

func TestWaitUntilReadyTimesOut(t *testing.T) {
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	t.Setenv("DAPR_HTTP_PORT", sidecarHTTPPort(t, server))

	srv := mock.New(nil)
	defer srv.Shutdown()

	client, err := dapr.New(dapr.WithMock(srv))
	require.NoError(err)
	defer client.Close()

	err = client.WaitUntilReady(context.Background(), 300*time.Millisecond)
	require.Error(err)
}
