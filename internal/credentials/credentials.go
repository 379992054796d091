/*
Package credentials adapts the teacher's auth.Credentials (a Bearer-token
PerRPCCredentials wrapping an OAuth access token refreshed against Quarterdeck) to the
sidecar's actual auth model: a single, static, operator-configured token attached as
the "dapr-api-token" metadata entry on every call (spec.md §4.A). There is no login or
refresh flow, so the teacher's token-refresh interceptors have no equivalent here.
*/
package credentials

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"google.golang.org/grpc"
)

// MetadataKey is the gRPC metadata key the sidecar expects the api token on.
const MetadataKey = "dapr-api-token"

// Static implements credentials.PerRPCCredentials, attaching a fixed api token to
// every outbound call. It never rotates or re-fetches the token, unlike the teacher's
// Credentials, because the sidecar does not issue refreshable access tokens.
type Static struct {
	token    string
	insecure bool
}

// New wraps an api token. An empty token produces a no-op Static that attaches no
// metadata, for callers that run the sidecar without API token authentication.
func New(token string, insecure bool) *Static {
	return &Static{token: token, insecure: insecure}
}

// GetRequestMetadata attaches the api token, if configured.
func (s *Static) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	if s.token == "" {
		return nil, nil
	}
	return map[string]string{MetadataKey: s.token}, nil
}

// RequireTransportSecurity mirrors the teacher's Credentials: true unless explicitly
// relaxed for local/insecure sidecar connections (unix socket, docker-compose, CI).
func (s *Static) RequireTransportSecurity() bool {
	return !s.insecure
}

// Equals compares two Static credentials, primarily for tests.
func (s *Static) Equals(o *Static) bool {
	return s.token == o.token && s.insecure == o.insecure
}

// PerRPCCallOption attaches the api token to a single RPC call, mirroring the
// teacher's PerRPCToken helper.
func PerRPCCallOption(token string, insecure bool) grpc.CallOption {
	return grpc.PerRPCCredentials(New(token, insecure))
}

// WithPerRPCCredentials returns a DialOption attaching the api token to every call
// made over the dialed connection, mirroring the teacher's WithPerRPCToken.
func WithPerRPCCredentials(token string, insecure bool) grpc.DialOption {
	return grpc.WithPerRPCCredentials(New(token, insecure))
}

// ExpiryWarning best-effort parses the configured api token as a JWT and returns its
// expiry time, for a one-time startup advisory log. The Dapr api token is an opaque
// operator-issued secret, not a token this client logs in to refresh, so a parse
// failure is not an error -- it's simply not a JWT, which is the common case.
func ExpiryWarning(token string) (hasExpiry bool, unixSeconds int64) {
	token = strings.TrimSpace(token)
	if token == "" {
		return false, 0
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, 0
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, 0
	}
	return true, exp.Unix()
}
