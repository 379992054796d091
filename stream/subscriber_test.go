package stream_test

import (
	"context"
	"testing"
	"time"

	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/rotationalio/dapr-go/stream"
	"github.com/stretchr/testify/require"
)

func TestSubscriberHandshakeAndDelivery(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	handler := mock.NewTopicEventsHandler()
	var initialized *runtimev1.SubscribeTopicEventsRequestInitialAlpha1
	handler.OnInitialize = func(in *runtimev1.SubscribeTopicEventsRequestInitialAlpha1) error {
		initialized = in
		return nil
	}

	var processed []*runtimev1.SubscribeTopicEventsRequestProcessedAlpha1
	handler.OnProcessed = func(in *runtimev1.SubscribeTopicEventsRequestProcessedAlpha1) error {
		processed = append(processed, in)
		return nil
	}
	srv.OnSubscribeTopicEventsAlpha1 = handler.OnSubscribeTopicEventsAlpha1

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	messages, sub, err := stream.NewSubscriber(conn, "orders", "orders.created", nil, "", nil)
	require.NoError(err)
	require.NotNil(initialized)
	require.Equal("orders", initialized.PubsubName)
	require.Equal("orders.created", initialized.Topic)

	handler.Send <- &runtimev1.TopicEventRequest{
		Id:              "evt-1",
		Topic:           "orders.created",
		DataContentType: "application/json",
		Data:            []byte(`{"order_id":"123"}`),
	}

	select {
	case msg := <-messages:
		require.Equal("evt-1", msg.Id)
		require.Equal(map[string]interface{}{"order_id": "123"}, msg.ParsedPayload)
		require.NoError(sub.RespondSuccess(msg.Id))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered message")
	}

	require.Eventually(func() bool {
		for _, p := range processed {
			if p.Id == "evt-1" && p.Status.Status == stream.StatusSuccess {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	handler.Shutdown()
	require.NoError(sub.Close())
}

func TestSubscriberRespondOnInactiveSubscription(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	handler := mock.NewTopicEventsHandler()
	srv.OnSubscribeTopicEventsAlpha1 = handler.OnSubscribeTopicEventsAlpha1

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	_, sub, err := stream.NewSubscriber(conn, "orders", "orders.created", nil, "", nil)
	require.NoError(err)

	handler.Shutdown()
	require.NoError(sub.Close())

	err = sub.RespondSuccess("evt-1")
	require.ErrorIs(err, stream.ErrStreamInactive)
}

func TestSubscriberTextPlainPayload(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	bufnet := mock.NewBufConn()
	srv := mock.New(bufnet)
	defer srv.Shutdown()

	handler := mock.NewTopicEventsHandler()
	srv.OnSubscribeTopicEventsAlpha1 = handler.OnSubscribeTopicEventsAlpha1

	conn, cc, err := newTestConn(ctx, bufnet)
	require.NoError(err)
	defer cc.Close()

	messages, sub, err := stream.NewSubscriber(conn, "orders", "orders.created", nil, "", nil)
	require.NoError(err)
	defer sub.Close()

	handler.Send <- &runtimev1.TopicEventRequest{
		Id:              "evt-2",
		Topic:           "orders.created",
		DataContentType: "text/plain",
		Data:            []byte("hello world"),
	}

	select {
	case msg := <-messages:
		require.Equal("hello world", msg.ParsedPayload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered message")
	}

	handler.Shutdown()
}
