package stream_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/mock"
	"github.com/rotationalio/dapr-go/stream"
	"github.com/stretchr/testify/require"
)

// echoEncrypt mirrors every chunk it receives back to the caller unchanged, so the
// test can assert on the chunk boundaries and sequence numbers it observes.
func echoEncrypt(strm runtimev1.Dapr_EncryptAlpha1Server) error {
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

func TestEncryptRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()
	srv.OnEncryptAlpha1 = echoEncrypt

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	plaintext := bytes.Repeat([]byte("a"), stream.ChunkSize+10)
	opts := &runtimev1.EncryptRequestOptions{ComponentName: "vault", KeyName: "key1"}

	reader, err := stream.Encrypt(ctx, conn, opts, bytes.NewReader(plaintext))
	require.NoError(err)

	out, err := io.ReadAll(reader)
	require.NoError(err)
	require.Equal(plaintext, out)
}

func TestEncryptSequenceGap(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	srv.OnEncryptAlpha1 = func(strm runtimev1.Dapr_EncryptAlpha1Server) error {
		if _, err := strm.Recv(); err != nil {
			return err
		}
		// Skip seq 0, respond with seq 1 first -- a gap the client must reject.
		return strm.Send(&runtimev1.EncryptResponse{Payload: &runtimev1.StreamPayload{Data: []byte("x"), Seq: 1}})
	}

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	reader, err := stream.Encrypt(ctx, conn, &runtimev1.EncryptRequestOptions{}, bytes.NewReader([]byte("hi")))
	require.NoError(err)

	_, err = io.ReadAll(reader)
	require.ErrorIs(err, stream.ErrSequenceGap)
}
