package dapr

import (
	"context"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PublishEvent publishes a single event to pubsubName/topic.
func (c *Client) PublishEvent(ctx context.Context, pubsubName, topic string, data []byte, contentType string, metadata map[string]string) (err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	_, err = c.api.PublishEvent(ctx, &runtimev1.PublishEventRequest{
		PubsubName:      pubsubName,
		Topic:           topic,
		Data:            data,
		DataContentType: contentType,
		Metadata:        metadata,
	}, c.copts...)
	if err != nil {
		return AsSidecarError(err)
	}
	return nil
}

// BulkPublishEntry is one event of a BulkPublishEventAlpha1 call.
type BulkPublishEntry struct {
	EntryId     string
	Event       []byte
	ContentType string
	Metadata    map[string]string
}

// BulkPublishFailure reports one entry the sidecar could not publish.
type BulkPublishFailure struct {
	EntryId string
	Error   string
}

// BulkPublishEventAlpha1 publishes multiple events in a single call. If the sidecar
// reports Unimplemented and Options.BulkPublishFallbackAllowed is set (spec.md §7
// Fallback, off by default), each entry is retried individually via PublishEvent and
// any per-entry failure is folded into the returned failures slice instead of
// failing the whole call.
func (c *Client) BulkPublishEventAlpha1(ctx context.Context, pubsubName, topic string, entries []BulkPublishEntry, metadata map[string]string) (failures []BulkPublishFailure, err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	wire := make([]*runtimev1.BulkPublishEventEntry, len(entries))
	for i, e := range entries {
		wire[i] = &runtimev1.BulkPublishEventEntry{
			EntryId:     e.EntryId,
			Event:       e.Event,
			ContentType: e.ContentType,
			Metadata:    e.Metadata,
		}
	}

	resp, err := c.api.BulkPublishEventAlpha1(ctx, &runtimev1.BulkPublishEventRequest{
		PubsubName: pubsubName,
		Topic:      topic,
		Entries:    wire,
		Metadata:   metadata,
	}, c.copts...)

	if err != nil {
		if c.opts.BulkPublishFallbackAllowed && status.Code(err) == codes.Unimplemented {
			return c.bulkPublishFallback(ctx, pubsubName, topic, entries)
		}
		return nil, AsSidecarError(err)
	}

	failures = make([]BulkPublishFailure, len(resp.FailedEntries))
	for i, f := range resp.FailedEntries {
		failures[i] = BulkPublishFailure{EntryId: f.EntryId, Error: f.Error}
	}
	return failures, nil
}

func (c *Client) bulkPublishFallback(ctx context.Context, pubsubName, topic string, entries []BulkPublishEntry) (failures []BulkPublishFailure, err error) {
	for _, e := range entries {
		if _, perr := c.api.PublishEvent(ctx, &runtimev1.PublishEventRequest{
			PubsubName:      pubsubName,
			Topic:           topic,
			Data:            e.Event,
			DataContentType: e.ContentType,
			Metadata:        e.Metadata,
		}, c.copts...); perr != nil {
			failures = append(failures, BulkPublishFailure{EntryId: e.EntryId, Error: perr.Error()})
		}
	}
	return failures, nil
}

// Subscribe opens a long-lived pub/sub subscription on pubsubName/topic and returns
// the inbound message channel alongside the stream.Subscriber used to ack messages
// and eventually Close the subscription.
func (c *Client) Subscribe(pubsubName, topic string, metadata map[string]string, deadLetterTopic string, opts ...grpc.CallOption) (<-chan *stream.InboundMessage, *stream.Subscriber, error) {
	conn := stream.NewConn(c.cc, c.api)
	return stream.NewSubscriber(conn, pubsubName, topic, metadata, deadLetterTopic, c.logger, opts...)
}

// SubscribeWithHandler opens a subscription the same way Subscribe does, then runs
// handler in a background goroutine against every delivered message: the handler's
// returned stream.TopicResponseStatus (or a recovered panic, logged and treated as a
// retry) drives the ack automatically. Callers that want to pump messages and ack
// them manually should use Subscribe instead; callers of this method only need to
// Close the returned subscriber when done.
func (c *Client) SubscribeWithHandler(pubsubName, topic string, metadata map[string]string, deadLetterTopic string, handler func(*stream.InboundMessage) stream.TopicResponseStatus, opts ...grpc.CallOption) (*stream.Subscriber, error) {
	_, sub, err := c.Subscribe(pubsubName, topic, metadata, deadLetterTopic, opts...)
	if err != nil {
		return nil, err
	}
	go sub.RunHandler(handler)
	return sub, nil
}
