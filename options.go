package dapr

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	daprcredentials "github.com/rotationalio/dapr-go/internal/credentials"
	"github.com/rotationalio/dapr-go/mock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Environment variables making up the Envelope's environment contract (spec.md §6).
// Unless overridden by an explicit Option, the Client configures itself from these.
const (
	EnvGRPCEndpoint = "DAPR_GRPC_ENDPOINT"
	EnvGRPCPort     = "DAPR_GRPC_PORT"
	EnvHTTPPort     = "DAPR_HTTP_PORT"
	EnvAPIToken     = "DAPR_API_TOKEN"
	EnvUserAgent    = "DAPR_USER_AGENT"
)

// Defaults applied when neither an Option nor the environment supplies a value.
const (
	DefaultHost     = "127.0.0.1"
	DefaultGRPCPort = "50001"
	DefaultHTTPPort = "3500"
	DefaultEndpoint = DefaultHost + ":" + DefaultGRPCPort
)

// envContract is decoded once by envconfig at Client construction (spec.md §6: "read
// once at Client construction, may be overridden by explicit arguments"). The
// teacher's go.mod already declares github.com/kelseyhightower/envconfig without
// putting it to work; this struct gives it a job.
type envContract struct {
	GRPCEndpoint string `envconfig:"DAPR_GRPC_ENDPOINT"`
	GRPCPort     string `envconfig:"DAPR_GRPC_PORT"`
	HTTPPort     string `envconfig:"DAPR_HTTP_PORT" default:"3500"`
	APIToken     string `envconfig:"DAPR_API_TOKEN"`
	UserAgent    string `envconfig:"DAPR_USER_AGENT"`
}

// Option configures the Client's Envelope. Functional options always take precedence
// over the environment contract, mirroring the teacher's NewOptions processing order.
type Option func(o *Options) error

// WithEndpoint sets the sidecar gRPC target, e.g. "127.0.0.1:50001",
// "dns:///sidecar:50001", "https://sidecar.internal:443", or
// "unix:///var/run/dapr.sock" (spec.md §4.A).
func WithEndpoint(endpoint string) Option {
	return func(o *Options) error {
		o.Endpoint = endpoint
		return nil
	}
}

// WithAPIToken configures the static token injected as the "dapr-api-token" metadata
// entry on every outbound call.
func WithAPIToken(token string) Option {
	return func(o *Options) error {
		o.APIToken = token
		return nil
	}
}

// WithUserAgent overrides the user-agent metadata entry attached to every call.
func WithUserAgent(userAgent string) Option {
	return func(o *Options) error {
		o.UserAgent = userAgent
		return nil
	}
}

// WithDefaultTimeout sets the deadline applied to a call when the caller's context
// carries none. Zero means no client-imposed deadline; cancellation is still honored.
func WithDefaultTimeout(d time.Duration) Option {
	return func(o *Options) error {
		o.DefaultTimeout = d
		return nil
	}
}

// WithBulkPublishFallback toggles the UNIMPLEMENTED-triggered fallback from
// BulkPublishEvent to its Alpha1 variant (spec.md §7 Fallback). Off by default.
func WithBulkPublishFallback(allowed bool) Option {
	return func(o *Options) error {
		o.BulkPublishFallbackAllowed = allowed
		return nil
	}
}

// WithInsecure relaxes transport security even for schemes that would otherwise
// require TLS, for local development against a sidecar run without certificates.
func WithInsecure(insecure bool) Option {
	return func(o *Options) error {
		o.Insecure = insecure
		return nil
	}
}

// WithDialOptions overrides the gRPC dial options the Client would otherwise derive
// from the endpoint scheme. Use with care: this replaces the scheme-derived transport
// credentials entirely.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *Options) error {
		o.Dialing = opts
		return nil
	}
}

// WithOptions overrides the options wholesale; use first in the chain so later
// options can still refine individual fields.
func WithOptions(opts Options) Option {
	return func(o *Options) error {
		*o = opts
		return nil
	}
}

// WithConfigurationCache bounds GetConfiguration's read-through cache to size entries
// (keyed by store+key); zero (the default) disables caching entirely.
func WithConfigurationCache(size int) Option {
	return func(o *Options) error {
		o.ConfigCacheSize = size
		return nil
	}
}

// WithMock connects the Client to an in-process mock.Dapr server instead of dialing a
// real sidecar, for tests.
func WithMock(srv *mock.Dapr, opts ...grpc.DialOption) Option {
	return func(o *Options) error {
		o.Testing = true
		o.Mock = srv
		o.Dialing = opts
		return nil
	}
}

// Options holds the resolved Envelope (spec.md §3: "{ endpoint, api_token?,
// user_agent, default_timeout?, retry_on_unimplemented_fallback_allowed }") plus the
// connection knobs needed to open the shared gRPC channel.
type Options struct {
	// Endpoint is the sidecar target; see WithEndpoint.
	Endpoint string

	// APIToken, when non-empty, is attached as "dapr-api-token" to every call.
	APIToken string

	// UserAgent is attached as "user-agent" to every call.
	UserAgent string

	// DefaultTimeout is applied to a call's context when it carries no deadline.
	// Zero means no client-imposed deadline.
	DefaultTimeout time.Duration

	// BulkPublishFallbackAllowed toggles the Alpha1 fallback on UNIMPLEMENTED.
	BulkPublishFallbackAllowed bool

	// Insecure relaxes transport security regardless of scheme.
	Insecure bool

	// Dialing overrides the scheme-derived dial options entirely, when set.
	Dialing []grpc.DialOption

	// Testing/Mock select an in-process mock.Dapr server instead of a real dial.
	Testing bool
	Mock    *mock.Dapr

	// ConfigCacheSize bounds GetConfiguration's read-through cache; zero disables it.
	ConfigCacheSize int
}

// NewOptions applies opts over the zero value, fills any remaining blanks from the
// environment contract and documented constants, then validates the result.
func NewOptions(opts ...Option) (options Options, err error) {
	options = Options{}
	for _, opt := range opts {
		if err = opt(&options); err != nil {
			return Options{}, err
		}
	}

	if err = options.Validate(); err != nil {
		return Options{}, err
	}
	return options, nil
}

// Validate fills in defaults (via setDefaults) and checks the result is usable.
func (o *Options) Validate() (err error) {
	o.setDefaults()

	if o.Testing {
		if o.Mock == nil {
			return ErrMissingMock
		}
		return nil
	}

	if o.Endpoint == "" {
		return ErrMissingEndpoint
	}
	return nil
}

// setDefaults decodes the environment contract with envconfig and fills any field an
// Option left unset, falling back to documented constants as the final step.
func (o *Options) setDefaults() {
	var env envContract
	// envconfig.Process only fails on malformed required fields or unparsable types;
	// none of ours are required, so an error here would indicate a programmer error
	// in the struct tags, not a runtime condition callers need to handle.
	_ = envconfig.Process("", &env)

	if o.Endpoint == "" {
		switch {
		case env.GRPCEndpoint != "":
			o.Endpoint = env.GRPCEndpoint
		case env.GRPCPort != "":
			o.Endpoint = DefaultHost + ":" + env.GRPCPort
		default:
			o.Endpoint = DefaultEndpoint
		}
	}

	if o.APIToken == "" {
		o.APIToken = env.APIToken
	}

	if o.UserAgent == "" {
		if env.UserAgent != "" {
			o.UserAgent = env.UserAgent
		} else {
			o.UserAgent = "dapr-go-sdk/" + Version()
		}
	}
}

// parseTarget resolves the Envelope's endpoint into a gRPC dial target plus the dial
// options implied by its scheme (spec.md §4.A): "http"/"dns" dial in plaintext ("dns"
// preserves the "dns:///" prefix for client-side load balancing), "https"/"grpcs"
// dial with TLS and the system root pool, "unix" dials a domain socket, and a plain
// "host:port" with no scheme defaults to plaintext. Any other scheme is a local
// ArgumentError; no RPC is attempted.
func parseTarget(target string, insecureOverride bool) (dialTarget string, opts []grpc.DialOption, err error) {
	if !strings.Contains(target, "://") {
		return target, []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, nil
	}

	var u *url.URL
	if u, err = url.Parse(target); err != nil {
		return "", nil, newArgumentError("endpoint", err.Error())
	}

	dialOpts := make([]grpc.DialOption, 0, 2)
	if authority := u.Query().Get("authority"); authority != "" {
		dialOpts = append(dialOpts, grpc.WithAuthority(authority))
	}

	switch u.Scheme {
	case "http":
		return u.Host, append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials())), nil
	case "dns":
		return "dns:///" + u.Host, append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials())), nil
	case "https", "grpcs":
		if insecureOverride {
			return u.Host, append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials())), nil
		}
		pool, poolErr := x509.SystemCertPool()
		if poolErr != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		creds := credentials.NewTLS(&tls.Config{RootCAs: pool})
		return u.Host, append(dialOpts, grpc.WithTransportCredentials(creds)), nil
	case "unix":
		return "unix://" + u.Path, append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials())), nil
	default:
		return "", nil, newArgumentError("endpoint", fmt.Sprintf("unrecognized scheme %q", u.Scheme))
	}
}

// callMetadata returns the Envelope's env_metadata as alternating key/value pairs:
// "user-agent" always, "dapr-api-token" when an api token is configured.
func (o *Options) callMetadata() []string {
	pairs := []string{"user-agent", o.UserAgent}
	if o.APIToken != "" {
		pairs = append(pairs, daprcredentials.MetadataKey, o.APIToken)
	}
	return pairs
}

// withEnvelope returns ctx with the Envelope's env_metadata merged into any
// call_metadata already attached by the caller -- the union spec.md §4.A requires --
// and, when DefaultTimeout is set and ctx carries no deadline of its own, a deadline
// derived from it. Trace headers are forwarded automatically by the otelgrpc stats
// handler wired in Connect, so they need no explicit handling here.
func (o *Options) withEnvelope(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = metadata.AppendToOutgoingContext(ctx, o.callMetadata()...)

	if o.DefaultTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.DefaultTimeout)
}
