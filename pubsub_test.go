package dapr_test

import (
	"context"
	"testing"
	"time"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestPublishEvent(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnPublishEvent = func(_ context.Context, in *runtimev1.PublishEventRequest) (*runtimev1.PublishEventResponse, error) {
		require.Equal("orders", in.PubsubName)
		require.Equal("created", in.Topic)
		require.Equal([]byte(`{"id":1}`), in.Data)
		return &runtimev1.PublishEventResponse{}, nil
	}

	client := newTestClient(t, srv)
	err := client.PublishEvent(context.Background(), "orders", "created", []byte(`{"id":1}`), "application/json", nil)
	require.NoError(err)
}

func TestBulkPublishEventAlpha1(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnBulkPublishEventAlpha1 = func(_ context.Context, in *runtimev1.BulkPublishEventRequest) (*runtimev1.BulkPublishEventResponse, error) {
		require.Len(in.Entries, 2)
		return &runtimev1.BulkPublishEventResponse{
			FailedEntries: []*runtimev1.BulkPublishResponseFailedEntry{{EntryId: "2", Error: "boom"}},
		}, nil
	}

	client := newTestClient(t, srv)
	failures, err := client.BulkPublishEventAlpha1(context.Background(), "orders", "created", []dapr.BulkPublishEntry{
		{EntryId: "1", Event: []byte("a")},
		{EntryId: "2", Event: []byte("b")},
	}, nil)
	require.NoError(err)
	require.Len(failures, 1)
	require.Equal("2", failures[0].EntryId)
}

func TestBulkPublishEventAlpha1FallsBackWhenAllowed(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	require.NoError(srv.UseError(mock.BulkPublishEventAlpha1RPC, codes.Unimplemented, "not supported"))

	var published int
	srv.OnPublishEvent = func(context.Context, *runtimev1.PublishEventRequest) (*runtimev1.PublishEventResponse, error) {
		published++
		return &runtimev1.PublishEventResponse{}, nil
	}

	client, err := dapr.New(dapr.WithMock(srv), dapr.WithBulkPublishFallback(true))
	require.NoError(err)
	defer client.Close()

	failures, err := client.BulkPublishEventAlpha1(context.Background(), "orders", "created", []dapr.BulkPublishEntry{
		{EntryId: "1", Event: []byte("a")},
		{EntryId: "2", Event: []byte("b")},
	}, nil)
	require.NoError(err)
	require.Empty(failures)
	require.Equal(2, published)
}

func TestBulkPublishEventAlpha1UnimplementedWithoutFallback(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	require.NoError(srv.UseError(mock.BulkPublishEventAlpha1RPC, codes.Unimplemented, "not supported"))

	client := newTestClient(t, srv)
	_, err := client.BulkPublishEventAlpha1(context.Background(), "orders", "created", []dapr.BulkPublishEntry{
		{EntryId: "1", Event: []byte("a")},
	}, nil)
	require.Error(err)
}

func TestSubscribe(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	handler := mock.NewTopicEventsHandler()
	srv.OnSubscribeTopicEventsAlpha1 = handler.OnSubscribeTopicEventsAlpha1
	defer handler.Shutdown()

	client := newTestClient(t, srv)
	messages, sub, err := client.Subscribe("orders", "created", nil, "")
	require.NoError(err)
	defer func() { _ = sub.Close() }()

	handler.Send <- &runtimev1.TopicEventRequest{Id: "evt-1", Data: []byte(`{"id":1}`), DataContentType: "application/json"}

	select {
	case msg := <-messages:
		require.Equal("evt-1", msg.Id)
		require.NoError(sub.RespondSuccess(msg.Id))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscribed message")
	}
}

func TestSubscribeWithHandler(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	acks := make(chan *runtimev1.SubscribeTopicEventsRequestProcessedAlpha1, 4)
	topicHandler := mock.NewTopicEventsHandler()
	topicHandler.OnProcessed = func(in *runtimev1.SubscribeTopicEventsRequestProcessedAlpha1) error {
		acks <- in
		return nil
	}
	srv.OnSubscribeTopicEventsAlpha1 = topicHandler.OnSubscribeTopicEventsAlpha1
	defer topicHandler.Shutdown()

	client := newTestClient(t, srv)

	var seen []string
	sub, err := client.SubscribeWithHandler("orders", "created", nil, "", func(msg *stream.InboundMessage) stream.TopicResponseStatus {
		seen = append(seen, msg.Id)
		if msg.Id == "evt-bad" {
			return stream.StatusRetry
		}
		return stream.StatusSuccess
	})
	require.NoError(err)
	defer func() { _ = sub.Close() }()

	topicHandler.Send <- &runtimev1.TopicEventRequest{Id: "evt-1", Data: []byte(`{"id":1}`), DataContentType: "application/json"}
	topicHandler.Send <- &runtimev1.TopicEventRequest{Id: "evt-bad", Data: []byte(`{"id":2}`), DataContentType: "application/json"}

	var got []*runtimev1.SubscribeTopicEventsRequestProcessedAlpha1
	for i := 0; i < 2; i++ {
		select {
		case ack := <-acks:
			got = append(got, ack)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for handler-driven ack")
		}
	}

	require.Len(got, 2)
	require.Equal("evt-1", got[0].Id)
	require.Equal(stream.StatusSuccess, got[0].Status.Status)
	require.Equal("evt-bad", got[1].Id)
	require.Equal(stream.StatusRetry, got[1].Status.Status)
}
