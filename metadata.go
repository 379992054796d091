package dapr

import (
	"context"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
)

// Metadata are user-defined key/value pairs attached to pub/sub messages and
// configuration items without requiring the caller to unmarshal the full payload.
type Metadata map[string]string

// Get returns the metadata value for the given key, or "" if absent.
func (m Metadata) Get(key string) string {
	if val, ok := m[key]; ok {
		return val
	}
	return ""
}

// Set a metadata value for the given key; overwrites an existing value.
func (m Metadata) Set(key, value string) {
	m[key] = value
}

// ActiveActorsCount reports how many actors of a given type are currently active.
type ActiveActorsCount struct {
	Type  string
	Count int32
}

// RegisteredComponent describes one sidecar component (a state store, pub/sub
// broker, binding, etc).
type RegisteredComponent struct {
	Name    string
	Type    string
	Version string
}

// SidecarMetadata is the sidecar's self-reported identity and component inventory
// (SUPPLEMENTED FEATURES #1, grounded on dapr_client.py's get_metadata).
type SidecarMetadata struct {
	ID                 string
	ActiveActorsCount  []ActiveActorsCount
	RegisteredComponents []RegisteredComponent
	ExtendedMetadata   map[string]string
}

// GetMetadata reports the sidecar's runtime id, active actor counts, registered
// components, and any extended metadata it chooses to report.
func (c *Client) GetMetadata(ctx context.Context) (meta *SidecarMetadata, err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	var resp *runtimev1.GetMetadataResponse
	if resp, err = c.api.GetMetadata(ctx, &runtimev1.GetMetadataRequest{}, c.copts...); err != nil {
		return nil, AsSidecarError(err)
	}

	meta = &SidecarMetadata{
		ID:               resp.Id,
		ExtendedMetadata: resp.ExtendedMetadata,
	}
	for _, a := range resp.ActiveActorsCount {
		meta.ActiveActorsCount = append(meta.ActiveActorsCount, ActiveActorsCount{Type: a.Type, Count: a.Count})
	}
	for _, rc := range resp.RegisteredComponents {
		meta.RegisteredComponents = append(meta.RegisteredComponents, RegisteredComponent{Name: rc.Name, Type: rc.Type, Version: rc.Version})
	}
	return meta, nil
}

// SetMetadata sets a single extended metadata key/value pair on the sidecar.
func (c *Client) SetMetadata(ctx context.Context, key, value string) (err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	if _, err = c.api.SetMetadata(ctx, &runtimev1.SetMetadataRequest{Key: key, Value: value}, c.copts...); err != nil {
		return AsSidecarError(err)
	}
	return nil
}

// Shutdown asks the sidecar to shut itself down gracefully.
func (c *Client) Shutdown(ctx context.Context) (err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	if _, err = c.api.Shutdown(ctx, &runtimev1.ShutdownRequest{}, c.copts...); err != nil {
		return AsSidecarError(err)
	}
	return nil
}
