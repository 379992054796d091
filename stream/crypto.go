package stream

import (
	"context"
	"errors"
	"io"

	"github.com/rotationalio/dapr-go/internal/metrics"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"google.golang.org/grpc"
)

// ChunkSize bounds how much plaintext/ciphertext is read per StreamPayload frame.
const ChunkSize = 2 * 1024

// Encrypt opens an EncryptAlpha1 stream, writes plaintext to the sidecar in
// ChunkSize frames (the first frame carries options, every frame carries a
// strictly monotonic Seq starting at zero), and returns a reader of the
// resulting ciphertext stream. The returned reader surfaces ErrSequenceGap if
// the sidecar's response sequence skips or repeats a value.
func Encrypt(ctx context.Context, client EncryptClient, options *runtimev1.EncryptRequestOptions, plaintext io.Reader, copts ...grpc.CallOption) (io.ReadCloser, error) {
	stream, err := client.EncryptAlpha1(ctx, copts...)
	if err != nil {
		return nil, err
	}

	send := func(seq uint64, opts *runtimev1.EncryptRequestOptions, data []byte) error {
		return stream.Send(&runtimev1.EncryptRequest{
			Options: opts,
			Payload: &runtimev1.StreamPayload{Data: data, Seq: seq},
		})
	}
	recv := func() (*runtimev1.StreamPayload, error) {
		resp, err := stream.Recv()
		if err != nil {
			return nil, err
		}
		return resp.Payload, nil
	}

	return newChunkedStream(plaintext, options, send, recv, stream.CloseSend, "encrypt"), nil
}

// Decrypt is Encrypt's mirror image for the DecryptAlpha1 stream.
func Decrypt(ctx context.Context, client DecryptClient, options *runtimev1.DecryptRequestOptions, ciphertext io.Reader, copts ...grpc.CallOption) (io.ReadCloser, error) {
	stream, err := client.DecryptAlpha1(ctx, copts...)
	if err != nil {
		return nil, err
	}

	send := func(seq uint64, opts *runtimev1.DecryptRequestOptions, data []byte) error {
		return stream.Send(&runtimev1.DecryptRequest{
			Options: opts,
			Payload: &runtimev1.StreamPayload{Data: data, Seq: seq},
		})
	}
	recv := func() (*runtimev1.StreamPayload, error) {
		resp, err := stream.Recv()
		if err != nil {
			return nil, err
		}
		return resp.Payload, nil
	}

	return newChunkedStream(ciphertext, options, send, recv, stream.CloseSend, "decrypt"), nil
}

// newChunkedStream drives the send-side goroutine (chunk the input, first chunk
// carries opts, closeSend once the input is exhausted) and hands back an
// io.PipeReader fed by the receive side, which validates that Seq increases by
// exactly one starting at zero.
func newChunkedStream[O any](input io.Reader, opts O, send func(seq uint64, opts O, data []byte) error, recv func() (*runtimev1.StreamPayload, error), closeSend func() error, operation string) io.ReadCloser {
	pr, pw := io.Pipe()
	counter := metrics.CryptoBytesStreamedTotal.WithLabelValues(operation)

	go func() {
		buf := make([]byte, ChunkSize)
		var seq uint64
		for {
			n, rerr := input.Read(buf)
			if n > 0 {
				first := seq == 0
				var chunkOpts O
				if first {
					chunkOpts = opts
				}
				if serr := send(seq, chunkOpts, append([]byte(nil), buf[:n]...)); serr != nil {
					return
				}
				counter.Add(float64(n))
				seq++
			}
			if rerr != nil {
				closeSend()
				return
			}
		}
	}()

	go func() {
		var expected uint64
		for {
			payload, rerr := recv()
			if rerr != nil {
				if errors.Is(rerr, io.EOF) {
					pw.Close()
				} else {
					pw.CloseWithError(rerr)
				}
				return
			}

			if payload.Seq != expected {
				pw.CloseWithError(ErrSequenceGap)
				return
			}
			expected++

			if _, werr := pw.Write(payload.Data); werr != nil {
				return
			}
		}
	}()

	return pr
}
