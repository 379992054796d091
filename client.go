package dapr

import (
	"context"
	"strings"

	"github.com/rotationalio/dapr-go/internal/cache"
	"github.com/rotationalio/dapr-go/internal/credentials"
	"github.com/rotationalio/dapr-go/internal/interceptors"
	"github.com/rotationalio/dapr-go/internal/logging"
	"github.com/rotationalio/dapr-go/internal/metrics"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// BufferSize is the default capacity of the send/receive channels backing the
// streaming subscribers, matching the teacher's stream.BufferSize.
const BufferSize = 128

// Client manages the connection and Envelope (endpoint, api token, user agent,
// default timeout) used to issue every RPC against a co-located sidecar.
type Client struct {
	opts    Options
	cc      *grpc.ClientConn
	api     runtimev1.DaprClient
	logger  *zap.Logger
	copts   []grpc.CallOption
	breaker *gobreaker.CircuitBreaker

	// configCache is GetConfiguration's optional read-through cache; nil when
	// ConfigCacheSize is zero (the default).
	configCache *cache.Cache[string, ConfigurationItem]
}

// New constructs a Client from the given options, resolving the Envelope (env
// contract + functional overrides) and opening the connection.
func New(opts ...Option) (client *Client, err error) {
	metrics.Register()
	client = &Client{logger: logging.New()}
	if client.opts, err = NewOptions(opts...); err != nil {
		return nil, err
	}

	if client.opts.ConfigCacheSize > 0 {
		if client.configCache, err = cache.New[string, ConfigurationItem](client.opts.ConfigCacheSize); err != nil {
			return nil, err
		}
	}

	if client.opts.Testing {
		if err = client.ConnectMock(client.opts.Mock, client.opts.Dialing...); err != nil {
			return nil, err
		}
		return client, nil
	}

	if err = client.Connect(client.opts.Dialing...); err != nil {
		return nil, err
	}
	return client, nil
}

// WithLogger overrides the Client's zap.Logger used by the background workers
// started by Subscribe/WatchConfiguration.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	c.logger = logger
	return c
}

// Connect dials the sidecar at the Envelope's endpoint. If opts is empty, transport
// credentials are derived from the endpoint's scheme (spec.md §4.A) and the shared
// interceptor chain (otel propagation, circuit breaker) plus the static api-token
// PerRPCCredentials are wired in; passing opts overrides all of that -- use only if
// you know what you're doing and why.
func (c *Client) Connect(opts ...grpc.DialOption) (err error) {
	target := c.opts.Endpoint
	if len(opts) == 0 {
		var dialTarget string
		var schemeOpts []grpc.DialOption
		if dialTarget, schemeOpts, err = parseTarget(c.opts.Endpoint, c.opts.Insecure); err != nil {
			return err
		}
		target = dialTarget

		c.breaker = interceptors.NewBreaker(c.opts.Endpoint)
		opts = append(opts, schemeOpts...)
		opts = append(opts, interceptors.DialOptions(c.breaker)...)
		if c.opts.APIToken != "" {
			// The token only demands TLS when the scheme itself dials with TLS.
			plaintext := c.opts.Insecure || !(strings.HasPrefix(c.opts.Endpoint, "https://") || strings.HasPrefix(c.opts.Endpoint, "grpcs://"))
			opts = append(opts, credentials.WithPerRPCCredentials(c.opts.APIToken, plaintext))
		}
	}

	if c.cc, err = grpc.Dial(target, opts...); err != nil {
		return &ConnectionError{Endpoint: c.opts.Endpoint, Cause: err}
	}

	c.api = runtimev1.NewDaprClient(c.cc)
	return nil
}

// ConnectMock wires the Client to an in-process mock.Dapr server instead of dialing a
// real sidecar.
func (c *Client) ConnectMock(srv *mock.Dapr, opts ...grpc.DialOption) (err error) {
	if c.cc, err = srv.Conn(context.Background(), opts...); err != nil {
		return err
	}
	c.api = runtimev1.NewDaprClient(c.cc)
	return nil
}

// Close tears down the connection. Idempotent.
func (c *Client) Close() (err error) {
	defer func() {
		c.cc = nil
		c.api = nil
	}()

	if c.cc != nil {
		if err = c.cc.Close(); err != nil {
			return err
		}
	}
	return nil
}

// WithCallOptions configures the next client call to use the given call options.
// Returns a clone of the Client so the original is unaffected; the clone does not own
// the connection and cannot Close it.
//
// Experimental: call options and thread-safe cloning is an experimental feature and
// its signature may be subject to change in the future.
func (c *Client) WithCallOptions(opts ...grpc.CallOption) *Client {
	return &Client{
		opts:    c.opts,
		api:     c.api,
		logger:  c.logger,
		breaker: c.breaker,
		copts:   opts,
	}
}

// DaprClient exposes the underlying generated client, for callers that need an RPC
// this module does not wrap directly.
func (c *Client) DaprClient() runtimev1.DaprClient {
	return c.api
}

// invokeContext merges the Envelope's env_metadata into ctx and applies the default
// timeout when ctx carries no deadline of its own.
func (c *Client) invokeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return c.opts.withEnvelope(ctx)
}
