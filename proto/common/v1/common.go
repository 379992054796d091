/*
Package v1 defines the wire-shaped types shared by every Dapr runtime RPC: the
state-store consistency/concurrency enums and the retry policy embedded in
StateOptions. It is hand-authored in the same shape protoc-gen-go would produce for
dapr/proto/common/v1/common.proto, mirroring the style of the teacher's
api/v1beta1/ensign_grpc.pb.go; see DESIGN.md for the scope note on why these types
stop short of full generated-descriptor wiring.
*/
package v1

// message is embedded by every wire-shaped struct in this module to give it the
// Reset/String/ProtoMessage method set that protoc-gen-go attaches to generated
// messages, without requiring a compiled file descriptor.
type message struct{}

func (message) Reset()         {}
func (message) String() string { return "" }
func (message) ProtoMessage()  {}

// StateOptions_StateConsistency mirrors common.proto's nested StateConsistency enum.
type StateOptions_StateConsistency int32

const (
	StateOptions_CONSISTENCY_UNSPECIFIED StateOptions_StateConsistency = 0
	StateOptions_CONSISTENCY_EVENTUAL    StateOptions_StateConsistency = 1
	StateOptions_CONSISTENCY_STRONG      StateOptions_StateConsistency = 2
)

// StateOptions_StateConcurrency mirrors common.proto's nested StateConcurrency enum.
type StateOptions_StateConcurrency int32

const (
	StateOptions_CONCURRENCY_UNSPECIFIED  StateOptions_StateConcurrency = 0
	StateOptions_CONCURRENCY_FIRST_WRITE  StateOptions_StateConcurrency = 1
	StateOptions_CONCURRENCY_LAST_WRITE   StateOptions_StateConcurrency = 2
)

// StateRetryPolicy_RetryPattern mirrors common.proto's nested RetryPattern enum.
type StateRetryPolicy_RetryPattern int32

const (
	StateRetryPolicy_RETRY_UNSPECIFIED StateRetryPolicy_RetryPattern = 0
	StateRetryPolicy_RETRY_LINEAR      StateRetryPolicy_RetryPattern = 1
	StateRetryPolicy_RETRY_EXPONENTIAL StateRetryPolicy_RetryPattern = 2
)

// StateRetryPolicy is the wire shape of a save/delete retry policy.
type StateRetryPolicy struct {
	message
	Threshold int32
	Pattern   StateRetryPolicy_RetryPattern
	Interval  int64 // nanoseconds, wire-equivalent of google.protobuf.Duration
}

// StateOptions is the wire shape of per-call state consistency/concurrency options.
type StateOptions struct {
	message
	Concurrency  StateOptions_StateConcurrency
	Consistency  StateOptions_StateConsistency
	RetryPolicy  *StateRetryPolicy
}

// Etag is the wire shape of an optimistic-concurrency version token.
type Etag struct {
	message
	Value string
}
