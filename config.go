package dapr

import (
	"context"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"google.golang.org/grpc"
)

// ConfigurationItem is a single key/value/version triple from a configuration store.
type ConfigurationItem struct {
	Value    string
	Version  string
	Metadata map[string]string
}

func configItemFromWire(wire *runtimev1.ConfigurationItem) ConfigurationItem {
	return ConfigurationItem{Value: wire.Value, Version: wire.Version, Metadata: wire.Metadata}
}

func configCacheKey(store, key string) string {
	return store + "\x00" + key
}

// GetConfiguration fetches the current value of the given keys (or every key in the
// store, if keys is empty) in one round trip. When a bounded cache is configured
// (WithConfigurationCache) and every requested key is already cached, no RPC is
// issued; fetching the whole store (keys empty) always bypasses the cache, since the
// cache only ever remembers individually-requested keys.
func (c *Client) GetConfiguration(ctx context.Context, store string, keys []string, metadata map[string]string) (map[string]ConfigurationItem, error) {
	if c.configCache != nil && len(keys) > 0 {
		items := make(map[string]ConfigurationItem, len(keys))
		hit := true
		for _, key := range keys {
			item, ok := c.configCache.Get(configCacheKey(store, key))
			if !ok {
				hit = false
				break
			}
			items[key] = item
		}
		if hit {
			return items, nil
		}
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.GetConfiguration(ctx, &runtimev1.GetConfigurationRequest{
		StoreName: store,
		Keys:      keys,
		Metadata:  metadata,
	}, c.copts...)
	if err != nil {
		return nil, AsSidecarError(err)
	}

	items := make(map[string]ConfigurationItem, len(resp.Items))
	for key, wire := range resp.Items {
		item := configItemFromWire(wire)
		items[key] = item
		if c.configCache != nil {
			c.configCache.Set(configCacheKey(store, key), item)
		}
	}
	return items, nil
}

// WatchConfiguration opens a long-lived watch over store/keys and returns the update
// channel alongside the stream.ConfigWatcher used to eventually Close the watch.
// Blocks until the subscription handshake completes or stream.HandshakeTimeout
// elapses. Every pushed update also refreshes GetConfiguration's cache (if
// configured) so a subsequent cached read doesn't return stale data.
func (c *Client) WatchConfiguration(store string, keys []string, metadata map[string]string, opts ...grpc.CallOption) (<-chan *stream.ConfigUpdate, *stream.ConfigWatcher, error) {
	conn := stream.NewConn(c.cc, c.api)
	updates, watcher, err := stream.NewConfigWatcher(conn, store, keys, metadata, c.logger, opts...)
	if err != nil || c.configCache == nil {
		return updates, watcher, err
	}

	out := make(chan *stream.ConfigUpdate, BufferSize)
	go func() {
		defer close(out)
		for update := range updates {
			for key, wire := range update.Items {
				c.configCache.Set(configCacheKey(store, key), configItemFromWire(wire))
			}
			out <- update
		}
	}()
	return out, watcher, nil
}
