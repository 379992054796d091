package v1

// PublishEventRequest is a single-event publish to a pubsub/topic pair.
type PublishEventRequest struct {
	message
	PubsubName      string
	Topic           string
	Data            []byte
	DataContentType string
	Metadata        map[string]string
}

type PublishEventResponse struct {
	message
}

// BulkPublishEventEntry is one event within a BulkPublishEventRequest.
type BulkPublishEventEntry struct {
	message
	EntryId         string
	Event           []byte
	ContentType     string
	Metadata        map[string]string
}

type BulkPublishEventRequest struct {
	message
	PubsubName string
	Topic      string
	Entries    []*BulkPublishEventEntry
	Metadata   map[string]string
}

type BulkPublishResponseFailedEntry struct {
	message
	EntryId string
	Error   string
}

type BulkPublishEventResponse struct {
	message
	FailedEntries []*BulkPublishResponseFailedEntry
	ErrorCode     string
}

// TopicEventResponse_TopicEventResponseStatus mirrors the ack verdict a consumer
// returns for a single delivered message (spec.md §3 TopicResponse).
type TopicEventResponse_TopicEventResponseStatus int32

const (
	TopicEventResponse_SUCCESS TopicEventResponse_TopicEventResponseStatus = 0
	TopicEventResponse_RETRY   TopicEventResponse_TopicEventResponseStatus = 1
	TopicEventResponse_DROP    TopicEventResponse_TopicEventResponseStatus = 2
)

type TopicEventResponse struct {
	message
	Status TopicEventResponse_TopicEventResponseStatus
}

// SubscribeTopicEventsRequestInitialAlpha1 is the handshake the client sends first on
// the SubscribeTopicEventsAlpha1 stream to announce the subscription.
type SubscribeTopicEventsRequestInitialAlpha1 struct {
	message
	PubsubName      string
	Topic           string
	Metadata        map[string]string
	DeadLetterTopic string
}

// SubscribeTopicEventsRequestProcessedAlpha1 is a single ack sent on the outbound
// half of the subscribe stream, keyed by the delivered message's id.
type SubscribeTopicEventsRequestProcessedAlpha1 struct {
	message
	Id     string
	Status *TopicEventResponse
}

// SubscribeTopicEventsRequestAlpha1 is the oneof envelope for everything the client
// sends on the subscribe stream: exactly one of InitialRequest or EventProcessed.
type SubscribeTopicEventsRequestAlpha1 struct {
	message
	InitialRequest *SubscribeTopicEventsRequestInitialAlpha1
	EventProcessed *SubscribeTopicEventsRequestProcessedAlpha1
}

// SubscribeTopicEventsResponseInitialAlpha1 is the server's handshake acknowledgement;
// it carries no fields of interest to the client beyond its presence (spec.md §4.D:
// "the first server message is a handshake response and is discarded").
type SubscribeTopicEventsResponseInitialAlpha1 struct {
	message
}

// TopicEventRequest is a single delivered message (spec.md §3 InboundMessage).
type TopicEventRequest struct {
	message
	Id              string
	Source          string
	Type            string
	SpecVersion     string
	Topic           string
	PubsubName      string
	DataContentType string
	Data            []byte
	Extensions      map[string]string
}

// SubscribeTopicEventsResponseAlpha1 is the oneof envelope for everything the server
// sends on the subscribe stream: exactly one of InitialResponse or EventMessage.
type SubscribeTopicEventsResponseAlpha1 struct {
	message
	InitialResponse *SubscribeTopicEventsResponseInitialAlpha1
	EventMessage    *TopicEventRequest
}
