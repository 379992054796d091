package dapr

import (
	"context"
	"strconv"
	"strings"

	commonv1 "github.com/rotationalio/dapr-go/proto/common/v1"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"go.uber.org/multierr"
)

// Consistency and Concurrency re-export the wire-level state store enums so callers
// don't need to import proto/common/v1 directly for everyday use.
type (
	Consistency = commonv1.StateOptions_StateConsistency
	Concurrency = commonv1.StateOptions_StateConcurrency
)

const (
	ConsistencyUnspecified = commonv1.StateOptions_CONSISTENCY_UNSPECIFIED
	ConsistencyEventual    = commonv1.StateOptions_CONSISTENCY_EVENTUAL
	ConsistencyStrong      = commonv1.StateOptions_CONSISTENCY_STRONG

	ConcurrencyUnspecified = commonv1.StateOptions_CONCURRENCY_UNSPECIFIED
	ConcurrencyFirstWrite  = commonv1.StateOptions_CONCURRENCY_FIRST_WRITE
	ConcurrencyLastWrite   = commonv1.StateOptions_CONCURRENCY_LAST_WRITE
)

// StateOptions controls per-call consistency/concurrency and retry policy;
// Unspecified for either field means "use the sidecar's configured default".
type StateOptions struct {
	Consistency Consistency
	Concurrency Concurrency
	RetryPolicy *StateRetryPolicy
}

// StateRetryPolicy mirrors common.proto's embedded retry policy for save/delete.
type StateRetryPolicy struct {
	Threshold int32
	Pattern   commonv1.StateRetryPolicy_RetryPattern
	Interval  int64 // nanoseconds
}

func (o *StateOptions) toWire() *commonv1.StateOptions {
	if o == nil {
		return nil
	}
	wire := &commonv1.StateOptions{Consistency: o.Consistency, Concurrency: o.Concurrency}
	if o.RetryPolicy != nil {
		wire.RetryPolicy = &commonv1.StateRetryPolicy{
			Threshold: o.RetryPolicy.Threshold,
			Pattern:   o.RetryPolicy.Pattern,
			Interval:  o.RetryPolicy.Interval,
		}
	}
	return wire
}

// StateItem is a key/value pair to save. Etag follows the three-way null/empty/value
// semantics from spec.md §3: nil means "no optimistic check", "" means "expect no
// prior value", any other string means "expect this version".
type StateItem struct {
	Key      string
	Value    []byte
	Etag     *string
	Metadata map[string]string
	Options  *StateOptions
}

func (s *StateItem) toWire() *runtimev1.StateItem {
	wire := &runtimev1.StateItem{
		Key:      s.Key,
		Value:    s.Value,
		Etag:     s.Etag,
		Metadata: s.Metadata,
		Options:  s.Options.toWire(),
	}
	return wire
}

// BulkStateItem is one entry of a get_bulk response; Error is set (and Data/Etag
// empty) when the sidecar failed to fetch this particular key without failing the
// whole call.
type BulkStateItem struct {
	Key      string
	Data     []byte
	Etag     string
	Error    string
	Metadata map[string]string
}

// TransactionOp is one step of an atomic transaction() call.
type TransactionOp struct {
	Op       runtimev1.TransactionalStateOperation_OperationType
	Key      string
	Value    []byte
	Etag     *string
	Metadata map[string]string
}

// Transaction operation kinds.
const (
	OpUpsert = runtimev1.Upsert
	OpDelete = runtimev1.Delete
)

// GetState fetches a single key. A missing key returns empty data and an empty etag,
// not an error (spec.md §4.C).
func (c *Client) GetState(ctx context.Context, store, key string, metadata map[string]string, consistency Consistency) (data []byte, etag string, err error) {
	if key == "" {
		return nil, "", ErrEmptyKey
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.GetState(ctx, &runtimev1.GetStateRequest{
		StoreName:   store,
		Key:         key,
		Metadata:    metadata,
		Consistency: consistency,
	}, c.copts...)
	if err != nil {
		return nil, "", &StateError{Op: "get", Store: store, Key: key, Cause: AsSidecarError(err)}
	}
	return resp.Data, resp.Etag, nil
}

// GetBulkState fetches multiple keys in one round trip.
func (c *Client) GetBulkState(ctx context.Context, store string, keys []string, parallelism int32, metadata map[string]string) (items []BulkStateItem, err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.GetBulkState(ctx, &runtimev1.GetBulkStateRequest{
		StoreName:   store,
		Keys:        keys,
		Parallelism: parallelism,
		Metadata:    metadata,
	}, c.copts...)
	if err != nil {
		return nil, &StateError{Op: "get_bulk", Store: store, Cause: AsSidecarError(err)}
	}

	items = make([]BulkStateItem, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = BulkStateItem{Key: it.Key, Data: it.Data, Etag: it.Etag, Error: it.Error, Metadata: it.Metadata}
	}
	return items, nil
}

// SaveState upserts one or more items in a single call.
func (c *Client) SaveState(ctx context.Context, store string, items ...StateItem) (err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	wire := make([]*runtimev1.StateItem, len(items))
	for i := range items {
		wire[i] = items[i].toWire()
	}

	if _, err = c.api.SaveState(ctx, &runtimev1.SaveStateRequest{StoreName: store, States: wire}, c.copts...); err != nil {
		key := ""
		if len(items) == 1 {
			key = items[0].Key
		}
		return &StateError{Op: "save", Store: store, Key: key, Cause: AsSidecarError(err)}
	}
	return nil
}

// DeleteState removes a key. etag follows the same three-way semantics as StateItem.
func (c *Client) DeleteState(ctx context.Context, store, key string, etag *string, opts *StateOptions, metadata map[string]string) (err error) {
	if key == "" {
		return ErrEmptyKey
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	var wireEtag *commonv1.Etag
	if etag != nil {
		wireEtag = &commonv1.Etag{Value: *etag}
	}

	if _, err = c.api.DeleteState(ctx, &runtimev1.DeleteStateRequest{
		StoreName: store,
		Key:       key,
		Etag:      wireEtag,
		Options:   opts.toWire(),
		Metadata:  metadata,
	}, c.copts...); err != nil {
		return &StateError{Op: "delete", Store: store, Key: key, Cause: AsSidecarError(err)}
	}
	return nil
}

// ExecuteStateTransaction applies ops atomically against store. Every op's key is
// validated locally before any RPC is attempted; a transaction naming more than one
// empty-key op reports all of them at once (go.uber.org/multierr), not just the
// first, since the sidecar would otherwise reject the whole transaction for a reason
// the caller would have to run it again to discover.
func (c *Client) ExecuteStateTransaction(ctx context.Context, store string, ops []TransactionOp, metadata map[string]string) (err error) {
	var verr error
	for i, op := range ops {
		if strings.TrimSpace(op.Key) == "" {
			verr = multierr.Append(verr, newArgumentError("ops["+strconv.Itoa(i)+"].key", "must not be empty"))
		}
	}
	if verr != nil {
		return verr
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	wire := make([]*runtimev1.TransactionalStateOperation, len(ops))
	for i, op := range ops {
		wire[i] = &runtimev1.TransactionalStateOperation{
			OperationType: op.Op,
			Request: &runtimev1.StateItem{
				Key:      op.Key,
				Value:    op.Value,
				Etag:     op.Etag,
				Metadata: op.Metadata,
			},
		}
	}

	if _, err = c.api.ExecuteStateTransaction(ctx, &runtimev1.ExecuteStateTransactionRequest{
		StoreName:  store,
		Operations: wire,
		Metadata:   metadata,
	}, c.copts...); err != nil {
		return &StateError{Op: "transaction", Store: store, Cause: AsSidecarError(err)}
	}
	return nil
}

// QueryResult is one row of a QueryState response.
type QueryResult struct {
	Key   string
	Data  []byte
	Etag  string
	Error string
}

// QueryState runs a store-native query (JSON query language); an empty returned token
// means there are no more pages.
func (c *Client) QueryState(ctx context.Context, store, query string, metadata map[string]string) (results []QueryResult, token string, err error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.QueryStateAlpha1(ctx, &runtimev1.QueryStateRequest{
		StoreName: store,
		Query:     query,
		Metadata:  metadata,
	}, c.copts...)
	if err != nil {
		return nil, "", &StateError{Op: "query", Store: store, Cause: AsSidecarError(err)}
	}

	results = make([]QueryResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = QueryResult{Key: r.Key, Data: r.Data, Etag: r.Etag, Error: r.Error}
	}
	return results, resp.Token, nil
}

// validateLockIdentity enforces the (store, resource, owner) half of spec.md
// §4.C's local validation, shared by TryLock and the standalone Unlock: all
// three must be non-empty, non-whitespace strings.
func validateLockIdentity(store, resource, owner string) error {
	if strings.TrimSpace(store) == "" {
		return newArgumentError("store", "must not be empty")
	}
	if strings.TrimSpace(resource) == "" {
		return newArgumentError("resource", "must not be empty")
	}
	if strings.TrimSpace(owner) == "" {
		return newArgumentError("owner", "must not be empty")
	}
	return nil
}

// validateLockArgs enforces spec.md §4.C's local validation for TryLock: store,
// resource, and owner must be non-empty, non-whitespace strings, and expiry
// must be positive.
func validateLockArgs(store, resource, owner string, expirySeconds int32) error {
	if err := validateLockIdentity(store, resource, owner); err != nil {
		return err
	}
	if expirySeconds <= 0 {
		return newArgumentError("expiry_seconds", "must be a positive integer")
	}
	return nil
}
