package v1

import commonv1 "github.com/rotationalio/dapr-go/proto/common/v1"

// StateItem is the wire shape of a single key/value pair to save, keyed by a
// caller-supplied Key; Etag follows the three-way null/empty/value semantics
// described in spec.md §3 (nil pointer = no check, empty string = expect absent,
// any other string = expect that version).
type StateItem struct {
	message
	Key      string
	Value    []byte
	Etag     *string
	Metadata map[string]string
	Options  *commonv1.StateOptions
}

type GetStateRequest struct {
	message
	StoreName   string
	Key         string
	Metadata    map[string]string
	Consistency commonv1.StateOptions_StateConsistency
}

type GetStateResponse struct {
	message
	Data     []byte
	Etag     string
	Metadata map[string]string
}

type GetBulkStateRequest struct {
	message
	StoreName   string
	Keys        []string
	Parallelism int32
	Metadata    map[string]string
}

type BulkStateItem struct {
	message
	Key      string
	Data     []byte
	Etag     string
	Error    string
	Metadata map[string]string
}

type GetBulkStateResponse struct {
	message
	Items []*BulkStateItem
}

type SaveStateRequest struct {
	message
	StoreName string
	States    []*StateItem
}

type DeleteStateRequest struct {
	message
	StoreName string
	Key       string
	Etag      *commonv1.Etag
	Options   *commonv1.StateOptions
	Metadata  map[string]string
}

// TransactionalStateOperation_OperationType mirrors the oneof-like string enum Dapr
// uses on the wire for transactional ops ("upsert" / "delete").
type TransactionalStateOperation_OperationType string

const (
	Upsert TransactionalStateOperation_OperationType = "upsert"
	Delete TransactionalStateOperation_OperationType = "delete"
)

type TransactionalStateOperation struct {
	message
	OperationType TransactionalStateOperation_OperationType
	Request       *StateItem
}

type ExecuteStateTransactionRequest struct {
	message
	StoreName  string
	Operations []*TransactionalStateOperation
	Metadata   map[string]string
}

type QueryStateRequest struct {
	message
	StoreName string
	Query     string
	Metadata  map[string]string
}

type QueryStateItem struct {
	message
	Key   string
	Data  []byte
	Etag  string
	Error string
}

type QueryStateResponse struct {
	message
	Results  []*QueryStateItem
	Token    string
	Metadata map[string]string
}

type TryLockRequest struct {
	message
	StoreName       string
	ResourceId      string
	LockOwner       string
	ExpiryInSeconds int32
}

type TryLockResponse struct {
	message
	Success bool
}

type UnlockRequest struct {
	message
	StoreName  string
	ResourceId string
	LockOwner  string
}

type UnlockResponse_Status int32

const (
	UnlockResponse_SUCCESS              UnlockResponse_Status = 0
	UnlockResponse_LOCK_DOES_NOT_EXIST  UnlockResponse_Status = 1
	UnlockResponse_LOCK_BELONGS_TO_OTHERS UnlockResponse_Status = 2
	UnlockResponse_INTERNAL_ERROR       UnlockResponse_Status = 3
)

type UnlockResponse struct {
	message
	Status UnlockResponse_Status
}
