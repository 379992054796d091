package dapr_test

import (
	"testing"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaultsEndpoint(t *testing.T) {
	require := require.New(t)

	opts, err := dapr.NewOptions()
	require.NoError(err)
	require.Equal(dapr.DefaultEndpoint, opts.Endpoint)
}

func TestNewOptionsAppliesExplicitOverrides(t *testing.T) {
	require := require.New(t)

	opts, err := dapr.NewOptions(
		dapr.WithEndpoint("sidecar:50001"),
		dapr.WithAPIToken("secret"),
		dapr.WithUserAgent("my-app/1.0"),
	)
	require.NoError(err)
	require.Equal("sidecar:50001", opts.Endpoint)
	require.Equal("secret", opts.APIToken)
	require.Equal("my-app/1.0", opts.UserAgent)
}

func TestNewOptionsTestingWithoutMockIsAnError(t *testing.T) {
	require := require.New(t)

	_, err := dapr.NewOptions(func(o *dapr.Options) error {
		o.Testing = true
		return nil
	})
	require.ErrorIs(err, dapr.ErrMissingMock)
}

func TestWithMockMarksTestingMode(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	opts, err := dapr.NewOptions(dapr.WithMock(srv))
	require.NoError(err)
	require.True(opts.Testing)
	require.Same(srv, opts.Mock)
}
