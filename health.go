package dapr

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// healthPort resolves the sidecar's HTTP health port: DAPR_HTTP_PORT, then
// DefaultHTTPPort.
func healthPort() string {
	var env envContract
	_ = envconfig.Process("", &env)
	if env.HTTPPort != "" {
		return env.HTTPPort
	}
	return DefaultHTTPPort
}

// healthURL builds the sidecar's HTTP health-check URL. The sidecar's HTTP listener
// always binds the same host as its gRPC listener; we reuse the Envelope's endpoint
// host when it names one, defaulting to DefaultHost otherwise (spec.md §4.B/§6).
func (c *Client) healthURL() string {
	host := DefaultHost
	if idx := strings.LastIndex(c.opts.Endpoint, "://"); idx >= 0 {
		host = hostOf(c.opts.Endpoint[idx+3:])
	} else if c.opts.Endpoint != "" {
		host = hostOf(c.opts.Endpoint)
	}
	return fmt.Sprintf("http://%s:%s/v1.0/healthz", host, healthPort())
}

func hostOf(hostport string) string {
	if idx := strings.LastIndex(hostport, ":"); idx > 0 {
		return hostport[:idx]
	}
	return hostport
}

// WaitUntilReady polls the sidecar's HTTP health endpoint until it reports ready, the
// deadline elapses, or ctx is cancelled (spec.md §4.B). It is side-effect free on
// success and safe to call concurrently.
func (c *Client) WaitUntilReady(ctx context.Context, deadline time.Duration) (err error) {
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	url := c.healthURL()
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	client := &http.Client{}
	for {
		if ready, checkErr := checkHealth(ctx, client, url); ready {
			return nil
		} else if checkErr != nil {
			err = &ConnectionError{Endpoint: url, Cause: checkErr}
		}

		select {
		case <-ctx.Done():
			if err != nil {
				return err
			}
			return fmt.Errorf("%w: sidecar not ready after %s", context.DeadlineExceeded, deadline)
		case <-ticker.C:
		}
	}
}

func checkHealth(ctx context.Context, client *http.Client, url string) (ready bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
