package stream

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/rotationalio/dapr-go/internal/metrics"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// ConfigUpdate is a single push of changed configuration items (spec.md §3
// ConfigurationUpdate). SubscriptionID identifies which watch it belongs to --
// useful when a caller fans several subscriptions' update channels into one
// consumer loop.
type ConfigUpdate struct {
	SubscriptionID string
	Items          map[string]*runtimev1.ConfigurationItem
}

// ConfigWatcher maintains a server-streaming SubscribeConfiguration watch,
// reconnecting transparently on transient errors. NewConfigWatcher blocks until
// the handshake (the first server message, which carries the subscription id
// used to cancel the watch) completes or HandshakeTimeout elapses.
type ConfigWatcher struct {
	// id correlates this watcher's log lines across reconnects; distinct from
	// subID, which is the sidecar-assigned subscription id used to unsubscribe.
	id     string
	client ConfigClient
	copts  []grpc.CallOption
	req    *runtimev1.SubscribeConfigurationRequest
	logger *zap.Logger

	smu    sync.RWMutex
	stream runtimev1.Dapr_SubscribeConfigurationClient
	subID  string

	updates chan *ConfigUpdate
	stop    chan struct{}
	down    chan struct{}
	wg      sync.WaitGroup

	fmu   sync.RWMutex
	fatal error
}

// NewConfigWatcher opens a SubscribeConfiguration watch over storeName/keys and
// starts the background receive/reconnect goroutine.
func NewConfigWatcher(client ConfigClient, storeName string, keys []string, metadata map[string]string, logger *zap.Logger, opts ...grpc.CallOption) (<-chan *ConfigUpdate, *ConfigWatcher, error) {
	w := &ConfigWatcher{
		id:     ulid.Make().String(),
		client: client,
		copts:  opts,
		req: &runtimev1.SubscribeConfigurationRequest{
			StoreName: storeName,
			Keys:      keys,
			Metadata:  metadata,
		},
		logger:  logger,
		updates: make(chan *ConfigUpdate, BufferSize),
		stop:    make(chan struct{}, 1),
		down:    make(chan struct{}, 1),
	}

	if err := w.openStream(); err != nil {
		return nil, nil, err
	}

	w.wg.Add(1)
	go w.start()

	return w.updates, w, nil
}

// openStream issues a fresh SubscribeConfiguration call and blocks for the
// handshake frame (HandshakeTimeout), which carries the subscription id and,
// if the store already has matching items at subscribe time, an initial batch
// of them (spec.md §4.F: "the watcher stores [the subscription id], signals a
// local handshake event, and delivers any items present on that first message
// (unless empty)"). A handshake that takes longer than HandshakeTimeout
// reports ErrHandshakeTimeout and abandons the stream.
func (w *ConfigWatcher) openStream() (err error) {
	// The stream outlives this call; its context is cancelled only when the
	// stream could not be opened or the handshake failed.
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		if err != nil {
			cancel()
		}
	}()

	w.smu.Lock()
	defer w.smu.Unlock()

	stream, err := w.client.SubscribeConfiguration(ctx, w.req, w.copts...)
	if err != nil {
		return err
	}
	w.stream = stream

	type handshake struct {
		resp *runtimev1.SubscribeConfigurationResponse
		err  error
	}
	done := make(chan handshake, 1)
	go func() {
		resp, err := stream.Recv()
		done <- handshake{resp, err}
	}()

	select {
	case h := <-done:
		if h.err != nil {
			return h.err
		}
		w.subID = h.resp.Id
		if len(h.resp.Items) > 0 {
			w.updates <- &ConfigUpdate{SubscriptionID: w.subID, Items: h.resp.Items}
		}
		return nil
	case <-time.After(HandshakeTimeout):
		return ErrHandshakeTimeout
	}
}

func (w *ConfigWatcher) start() {
	defer w.wg.Done()

	w.wg.Add(1)
	go w.receiver()

	for {
		select {
		case <-w.down:
			if err := w.reconnect(); err != nil {
				w.setFatal(err)
				return
			}
			w.wg.Add(1)
			go w.receiver()

		case <-w.stop:
			return
		}
	}
}

func (w *ConfigWatcher) reconnect() error {
	op := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), ReconnectTimeout)
		defer cancel()

		if !w.client.WaitForReconnect(ctx) {
			return ErrReconnect
		}
		if err := w.openStream(); err != nil {
			return err
		}
		metrics.ReconnectsTotal.WithLabelValues("config").Inc()
		return nil
	}
	return backoff.Retry(op, reconnectBackoff())
}

func (w *ConfigWatcher) receiver() {
	defer w.wg.Done()
	for {
		w.smu.RLock()
		stream := w.stream
		w.smu.RUnlock()

		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			if w.logger != nil {
				w.logger.Debug("could not recv configuration update, attempting reconnect", zap.Error(err), zap.String("watcher_id", w.id))
			}
			w.down <- struct{}{}
			return
		}

		w.smu.RLock()
		subID := w.subID
		w.smu.RUnlock()
		w.updates <- &ConfigUpdate{SubscriptionID: subID, Items: resp.Items}
	}
}

// Close cancels the subscription on the sidecar (best-effort) and stops the
// background goroutine. Once closed, the watcher cannot be restarted.
func (w *ConfigWatcher) Close(ctx context.Context) error {
	w.stop <- struct{}{}
	w.wg.Wait()
	close(w.updates)

	w.smu.RLock()
	storeName, subID := w.req.StoreName, w.subID
	w.smu.RUnlock()

	if subID == "" {
		return nil
	}
	_, err := w.client.UnsubscribeConfiguration(ctx, &runtimev1.UnsubscribeConfigurationRequest{
		StoreName: storeName,
		Id:        subID,
	}, w.copts...)
	return err
}

// Err reports the watcher's latched fatal error, if any.
func (w *ConfigWatcher) Err() error {
	w.fmu.RLock()
	defer w.fmu.RUnlock()
	return w.fatal
}

func (w *ConfigWatcher) setFatal(err error) {
	w.fmu.Lock()
	w.fatal = err
	w.fmu.Unlock()
}
