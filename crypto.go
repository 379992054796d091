package dapr

import (
	"context"
	"io"
	"strings"

	"github.com/oklog/ulid/v2"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// EncryptOptions carries the cipher/key parameters for an Encrypt call.
type EncryptOptions struct {
	ComponentName         string
	KeyName               string
	KeyWrapAlgorithm      string
	DataEncryptionCipher  string
	OmitDecryptionKeyName bool
	DecryptionKeyName     string
}

// DecryptOptions carries the component/key parameters for a Decrypt call.
type DecryptOptions struct {
	ComponentName string
	KeyName       string
}

// Encrypt streams plaintext to a configured crypto component and returns a reader of
// the resulting ciphertext. component and key_name/key_wrap_algorithm are validated
// locally (ArgumentError) before any RPC is attempted.
func (c *Client) Encrypt(ctx context.Context, opts EncryptOptions, plaintext io.Reader, copts ...grpc.CallOption) (io.ReadCloser, error) {
	if strings.TrimSpace(opts.ComponentName) == "" {
		return nil, newArgumentError("component_name", "must not be empty")
	}
	if strings.TrimSpace(opts.KeyName) == "" {
		return nil, newArgumentError("key_name", "must not be empty")
	}
	if strings.TrimSpace(opts.KeyWrapAlgorithm) == "" {
		return nil, newArgumentError("key_wrap_algorithm", "must not be empty")
	}

	requestID := ulid.Make().String()
	c.logger.Debug("starting encrypt stream", zap.String("request_id", requestID), zap.String("component_name", opts.ComponentName))

	conn := stream.NewConn(c.cc, c.api)
	return stream.Encrypt(ctx, conn, &runtimev1.EncryptRequestOptions{
		ComponentName:         opts.ComponentName,
		KeyName:               opts.KeyName,
		KeyWrapAlgorithm:      opts.KeyWrapAlgorithm,
		DataEncryptionCipher:  opts.DataEncryptionCipher,
		OmitDecryptionKeyName: opts.OmitDecryptionKeyName,
		DecryptionKeyName:     opts.DecryptionKeyName,
	}, plaintext, copts...)
}

// Decrypt streams ciphertext to a configured crypto component and returns a reader of
// the resulting plaintext. component is validated locally (ArgumentError) before any
// RPC is attempted.
func (c *Client) Decrypt(ctx context.Context, opts DecryptOptions, ciphertext io.Reader, copts ...grpc.CallOption) (io.ReadCloser, error) {
	if strings.TrimSpace(opts.ComponentName) == "" {
		return nil, newArgumentError("component_name", "must not be empty")
	}

	requestID := ulid.Make().String()
	c.logger.Debug("starting decrypt stream", zap.String("request_id", requestID), zap.String("component_name", opts.ComponentName))

	conn := stream.NewConn(c.cc, c.api)
	return stream.Decrypt(ctx, conn, &runtimev1.DecryptRequestOptions{
		ComponentName: opts.ComponentName,
		KeyName:       opts.KeyName,
	}, ciphertext, copts...)
}
