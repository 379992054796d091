package mock

import (
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
)

// TopicEventsHandler provides an OnSubscribeTopicEventsAlpha1 function that breaks the
// subscribe stream down into its initialization and delivery phases, for tests that
// want to assert on the initial subscribe request, push events on demand, or assert on
// the acks the client sends back.
type TopicEventsHandler struct {
	OnInitialize func(in *runtimev1.SubscribeTopicEventsRequestInitialAlpha1) error
	OnProcessed  func(in *runtimev1.SubscribeTopicEventsRequestProcessedAlpha1) error
	Send         chan<- *runtimev1.TopicEventRequest
	events       <-chan *runtimev1.TopicEventRequest
}

// NewTopicEventsHandler creates a handler with an internal, buffered delivery channel.
func NewTopicEventsHandler() *TopicEventsHandler {
	events := make(chan *runtimev1.TopicEventRequest, 64)
	return &TopicEventsHandler{
		Send:   events,
		events: events,
	}
}

// OnSubscribeTopicEventsAlpha1 should be assigned to Dapr.OnSubscribeTopicEventsAlpha1.
func (h *TopicEventsHandler) OnSubscribeTopicEventsAlpha1(stream runtimev1.Dapr_SubscribeTopicEventsAlpha1Server) (err error) {
	var msg *runtimev1.SubscribeTopicEventsRequestAlpha1
	if msg, err = stream.Recv(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return status.Error(codes.Aborted, "stream canceled before initialization")
	}

	if msg.InitialRequest == nil {
		return status.Error(codes.FailedPrecondition, "expected an initial request to start the subscription")
	}

	if h.OnInitialize != nil {
		if err = h.OnInitialize(msg.InitialRequest); err != nil {
			return err
		}
	}

	if err = stream.Send(&runtimev1.SubscribeTopicEventsResponseAlpha1{
		InitialResponse: &runtimev1.SubscribeTopicEventsResponseInitialAlpha1{},
	}); err != nil {
		return status.Error(codes.Canceled, "could not send handshake response")
	}

	go func() {
		for event := range h.events {
			if err := stream.Send(&runtimev1.SubscribeTopicEventsResponseAlpha1{EventMessage: event}); err != nil {
				return
			}
		}
	}()

	for {
		if msg, err = stream.Recv(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return status.Error(codes.Aborted, "subscribe stream aborted")
		}

		if msg.EventProcessed == nil {
			return status.Error(codes.FailedPrecondition, "only acks allowed after stream initialization")
		}

		if h.OnProcessed != nil {
			if err = h.OnProcessed(msg.EventProcessed); err != nil {
				return err
			}
		}
	}
}

// Shutdown closes the delivery channel, ending the goroutine sending events.
func (h *TopicEventsHandler) Shutdown() {
	close(h.Send)
}
