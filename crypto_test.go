package dapr_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
)

func TestEncryptValidatesArgumentsLocally(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnEncryptAlpha1 = func(runtimev1.Dapr_EncryptAlpha1Server) error {
		t.Fatal("RPC should not be issued for a locally-invalid call")
		return nil
	}

	client := newTestClient(t, srv)
	_, err := client.Encrypt(context.Background(), dapr.EncryptOptions{ComponentName: "vault"}, bytes.NewReader([]byte("hi")))

	var argErr *dapr.ArgumentError
	require.ErrorAs(err, &argErr)
}

func TestEncryptRoundTrip(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnEncryptAlpha1 = func(strm runtimev1.Dapr_EncryptAlpha1Server) error {
		for {
			req, err := strm.Recv()
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			if err := strm.Send(&runtimev1.EncryptResponse{Payload: req.Payload}); err != nil {
				return err
			}
		}
	}

	client := newTestClient(t, srv)
	plaintext := []byte("hello, sidecar")
	reader, err := client.Encrypt(context.Background(), dapr.EncryptOptions{
		ComponentName:    "vault",
		KeyName:          "key1",
		KeyWrapAlgorithm: "RSA",
	}, bytes.NewReader(plaintext))
	require.NoError(err)

	out, err := io.ReadAll(reader)
	require.NoError(err)
	require.Equal(plaintext, out)
}

func TestDecryptValidatesArgumentsLocally(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnDecryptAlpha1 = func(runtimev1.Dapr_DecryptAlpha1Server) error {
		t.Fatal("RPC should not be issued for a locally-invalid call")
		return nil
	}

	client := newTestClient(t, srv)
	_, err := client.Decrypt(context.Background(), dapr.DecryptOptions{}, bytes.NewReader([]byte("hi")))

	var argErr *dapr.ArgumentError
	require.ErrorAs(err, &argErr)
}
