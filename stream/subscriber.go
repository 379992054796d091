package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/rotationalio/dapr-go/internal/metrics"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// InboundMessage is a single delivered pub/sub message (spec.md §3). ParsedPayload is
// derived from DataContentType: "application/json" and "application/*+json" decode to
// a JSON value (nil on parse failure); "text/plain" decodes to a UTF-8 string (nil on
// decode failure); anything else leaves it nil.
type InboundMessage struct {
	Id              string
	Source          string
	Type            string
	SpecVersion     string
	Topic           string
	PubsubName      string
	DataContentType string
	RawBytes        []byte
	ParsedPayload   interface{}
	Extensions      map[string]string
}

func newInboundMessage(in *runtimev1.TopicEventRequest) *InboundMessage {
	msg := &InboundMessage{
		Id:              in.Id,
		Source:          in.Source,
		Type:            in.Type,
		SpecVersion:     in.SpecVersion,
		Topic:           in.Topic,
		PubsubName:      in.PubsubName,
		DataContentType: in.DataContentType,
		RawBytes:        in.Data,
		Extensions:      in.Extensions,
	}

	ct := strings.ToLower(strings.TrimSpace(in.DataContentType))
	switch {
	case ct == "application/json" || strings.HasSuffix(ct, "+json"):
		var payload interface{}
		if err := json.Unmarshal(in.Data, &payload); err == nil {
			msg.ParsedPayload = payload
		}
	case ct == "text/plain" || strings.HasPrefix(ct, "text/plain;"):
		if isValidUTF8(in.Data) {
			msg.ParsedPayload = string(in.Data)
		}
	}
	return msg
}

func isValidUTF8(b []byte) bool {
	return !hasInvalidUTF8Bytes(b)
}

// hasInvalidUTF8Bytes reports whether b holds a byte sequence that is not valid
// UTF-8. Ranging over a string yields U+FFFD for each invalid sequence, which is
// indistinguishable from a legitimately encoded replacement character unless we also
// check the source bytes at that offset.
func hasInvalidUTF8Bytes(b []byte) bool {
	s := string(b)
	for i, r := range s {
		if r == '�' && !strings.HasPrefix(s[i:], "�") {
			return true
		}
	}
	return false
}

// TopicResponseStatus is the ack verdict a consumer returns for one delivered
// message (spec.md §3 TopicResponse).
type TopicResponseStatus = runtimev1.TopicEventResponse_TopicEventResponseStatus

const (
	StatusSuccess = runtimev1.TopicEventResponse_SUCCESS
	StatusRetry   = runtimev1.TopicEventResponse_RETRY
	StatusDrop    = runtimev1.TopicEventResponse_DROP
)

type ack struct {
	id     string
	status TopicResponseStatus
}

// ackStatusLabel gives TopicResponseStatus a metrics-friendly label; the wire
// enum carries no String method of its own.
func ackStatusLabel(status TopicResponseStatus) string {
	switch status {
	case StatusSuccess:
		return "success"
	case StatusRetry:
		return "retry"
	case StatusDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Subscriber maintains a bidirectional SubscribeTopicEventsAlpha1 stream to a sidecar
// (spec.md §4.D). NewSubscriber returns once the outbound initial request is written and
// the inbound handshake frame is read; messages are then delivered on the channel
// NewSubscriber returns and acks are sent with RespondSuccess/RespondRetry/RespondDrop.
type Subscriber struct {
	// id correlates this subscriber's log lines across reconnects; it never
	// travels over the wire, since SubscribeTopicEventsRequestInitialAlpha1 has
	// no field for a client-chosen subscription id.
	id      string
	client  SubscribeClient
	copts   []grpc.CallOption
	initial *runtimev1.SubscribeTopicEventsRequestInitialAlpha1
	logger  *zap.Logger

	smu    sync.RWMutex
	stream runtimev1.Dapr_SubscribeTopicEventsAlpha1Client

	sendQueue chan ack
	messages  chan *InboundMessage

	active     atomic.Bool
	stop       chan struct{}
	down       chan struct{}
	senderStop chan struct{}
	wg         *sync.WaitGroup

	fmu   sync.RWMutex
	fatal error
}

// NewSubscriber opens a SubscribeTopicEventsAlpha1 stream, completes the handshake,
// and starts the background reconnect/receive goroutines. The returned channel
// delivers messages to the caller; it is the caller's responsibility to drain it --
// if it fills, the receiver blocks (spec.md §9: a documented bound, overflow blocks).
func NewSubscriber(client SubscribeClient, pubsubName, topic string, metadata map[string]string, deadLetterTopic string, logger *zap.Logger, opts ...grpc.CallOption) (_ <-chan *InboundMessage, _ *Subscriber, err error) {
	sub := &Subscriber{
		id:     ulid.Make().String(),
		client: client,
		copts:  opts,
		logger: logger,
		initial: &runtimev1.SubscribeTopicEventsRequestInitialAlpha1{
			PubsubName:      pubsubName,
			Topic:           topic,
			Metadata:        metadata,
			DeadLetterTopic: deadLetterTopic,
		},
		sendQueue:  make(chan ack, BufferSize),
		stop:       make(chan struct{}, 1),
		down:       make(chan struct{}, 1),
		senderStop: make(chan struct{}, 1),
		wg:         &sync.WaitGroup{},
	}

	if err = sub.openStream(); err != nil {
		return nil, nil, err
	}
	sub.active.Store(true)

	messages := make(chan *InboundMessage, BufferSize)
	sub.messages = messages

	sub.wg.Add(2)
	go sub.sender()
	go sub.start()

	return messages, sub, nil
}

func (s *Subscriber) openStream() (err error) {
	s.smu.Lock()
	defer s.smu.Unlock()

	// The stream outlives this call, so its context is not cancelled on return.
	if s.stream, err = s.client.SubscribeTopicEventsAlpha1(context.Background(), s.copts...); err != nil {
		return err
	}

	if err = s.stream.Send(&runtimev1.SubscribeTopicEventsRequestAlpha1{InitialRequest: s.initial}); err != nil {
		return err
	}

	// The first inbound message is the handshake response; it is discarded (spec.md
	// §4.D: "the first server message is a handshake response and is discarded").
	var rep *runtimev1.SubscribeTopicEventsResponseAlpha1
	if rep, err = s.stream.Recv(); err != nil {
		return err
	}
	if rep.InitialResponse == nil {
		return ErrStreamUninitialized
	}
	return nil
}

// respond enqueues an ack for id if the subscription is active, otherwise it reports
// ErrStreamInactive without touching the stream (spec.md §4.D).
func (s *Subscriber) respond(id string, status TopicResponseStatus) error {
	if !s.active.Load() {
		return ErrStreamInactive
	}
	s.sendQueue <- ack{id: id, status: status}
	return nil
}

// RespondSuccess acks message id as successfully processed.
func (s *Subscriber) RespondSuccess(id string) error { return s.respond(id, StatusSuccess) }

// RespondRetry asks the sidecar to redeliver message id.
func (s *Subscriber) RespondRetry(id string) error { return s.respond(id, StatusRetry) }

// RespondDrop asks the sidecar to drop message id without redelivery.
func (s *Subscriber) RespondDrop(id string) error { return s.respond(id, StatusDrop) }

// sender drains the send queue onto the outbound half of the stream until
// senderStop fires; it never closes sendQueue itself, so respond() can keep
// checking active/sending without racing a close.
func (s *Subscriber) sender() {
	defer s.wg.Done()
	for {
		select {
		case a := <-s.sendQueue:
			req := &runtimev1.SubscribeTopicEventsRequestAlpha1{
				EventProcessed: &runtimev1.SubscribeTopicEventsRequestProcessedAlpha1{
					Id:     a.id,
					Status: &runtimev1.TopicEventResponse{Status: a.status},
				},
			}

			s.smu.RLock()
			err := s.stream.Send(req)
			s.smu.RUnlock()

			if err == nil {
				metrics.MessagesAckedTotal.WithLabelValues(ackStatusLabel(a.status)).Inc()
			} else if s.logger != nil {
				s.logger.Debug("could not send ack on subscribe stream", zap.Error(err), zap.String("message_id", a.id), zap.String("subscriber_id", s.id))
			}

		case <-s.senderStop:
			return
		}
	}
}

func (s *Subscriber) start() {
	defer s.wg.Done()

	s.wg.Add(1)
	go s.receiver()

	for {
		select {
		case <-s.down:
			if err := s.reconnect(); err != nil {
				s.setFatal(err)
				s.active.Store(false)
				return
			}

			s.wg.Add(1)
			go s.receiver()

		case <-s.stop:
			s.active.Store(false)
			return
		}
	}
}

// reconnect retries WaitForReconnect+openStream under the shared exponential backoff
// policy (spec.md §9 Open Questions).
func (s *Subscriber) reconnect() error {
	op := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), ReconnectTimeout)
		defer cancel()

		if !s.client.WaitForReconnect(ctx) {
			return ErrReconnect
		}
		if err := s.openStream(); err != nil {
			return err
		}
		metrics.ReconnectsTotal.WithLabelValues("subscribe").Inc()
		return nil
	}
	return backoff.Retry(op, reconnectBackoff())
}

func (s *Subscriber) receiver() {
	defer s.wg.Done()
	for {
		s.smu.RLock()
		stream := s.stream
		s.smu.RUnlock()

		in, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			if s.logger != nil {
				s.logger.Debug("could not recv message from subscribe stream, attempting reconnect", zap.Error(err), zap.String("subscriber_id", s.id))
			}
			s.down <- struct{}{}
			return
		}

		if in.EventMessage != nil {
			msg := newInboundMessage(in.EventMessage)
			metrics.MessagesReceivedTotal.WithLabelValues(msg.PubsubName, msg.Topic).Inc()
			s.messages <- msg
		}
	}
}

// RunHandler drains the message channel, invoking handler for each delivered message and
// translating its returned TopicResponseStatus into the matching ack
// (StatusSuccess/StatusDrop -> RespondSuccess/RespondDrop, anything else,
// including StatusRetry, -> RespondRetry). A handler panic is recovered, logged,
// and treated as a retry rather than crashing the loop. RunHandler blocks until
// the message channel is closed by Close, so callers typically run it in its own
// goroutine.
func (s *Subscriber) RunHandler(handler func(*InboundMessage) TopicResponseStatus) {
	for msg := range s.messages {
		var ackErr error
		switch s.invokeHandler(handler, msg) {
		case StatusSuccess:
			ackErr = s.RespondSuccess(msg.Id)
		case StatusDrop:
			ackErr = s.RespondDrop(msg.Id)
		default:
			ackErr = s.RespondRetry(msg.Id)
		}

		if ackErr != nil && s.logger != nil {
			s.logger.Debug("could not ack message from handler loop", zap.Error(ackErr), zap.String("message_id", msg.Id), zap.String("subscriber_id", s.id))
		}
	}
}

// invokeHandler calls handler, recovering a panic into a logged retry so one bad
// message can't take the whole handler loop down.
func (s *Subscriber) invokeHandler(handler func(*InboundMessage) TopicResponseStatus, msg *InboundMessage) (status TopicResponseStatus) {
	status = StatusRetry
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.Error("subscribe handler panicked, retrying message", zap.Any("panic", r), zap.String("message_id", msg.Id), zap.String("subscriber_id", s.id))
			}
			status = StatusRetry
		}
	}()
	return handler(msg)
}

// Close gracefully shuts down the subscriber. Once closed it cannot be restarted.
func (s *Subscriber) Close() error {
	s.active.Store(false)
	s.stop <- struct{}{}
	s.senderStop <- struct{}{}

	s.smu.RLock()
	err := s.stream.CloseSend()
	s.smu.RUnlock()

	s.wg.Wait()
	close(s.messages)
	return err
}

// Err reports the subscriber's latched fatal error, if any.
func (s *Subscriber) Err() error {
	s.fmu.RLock()
	defer s.fmu.RUnlock()
	return s.fatal
}

func (s *Subscriber) setFatal(err error) {
	s.fmu.Lock()
	s.fatal = err
	s.fmu.Unlock()
}
