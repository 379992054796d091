package dapr

import (
	"context"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
)

// LockHandle is returned by TryLock. A successfully acquired handle (Success == true)
// owns a release obligation: call Unlock (or Release) when the caller is done with the
// critical section. Locks are not reentrant -- re-acquiring the same (store, resource,
// owner) triple while held observes Success == false.
type LockHandle struct {
	client        *Client
	Store         string
	ResourceID    string
	Owner         string
	ExpirySeconds int32
	Success       bool
}

// TryLock attempts to acquire a distributed lock. It validates its arguments locally
// (ArgumentError) before issuing any RPC; contention is reported as
// LockHandle.Success == false, never as an error.
func (c *Client) TryLock(ctx context.Context, store, resource, owner string, expirySeconds int32) (handle *LockHandle, err error) {
	if err = validateLockArgs(store, resource, owner, expirySeconds); err != nil {
		return nil, err
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.TryLockAlpha1(ctx, &runtimev1.TryLockRequest{
		StoreName:       store,
		ResourceId:      resource,
		LockOwner:       owner,
		ExpiryInSeconds: expirySeconds,
	}, c.copts...)
	if err != nil {
		return nil, &StateError{Op: "try_lock", Store: store, Key: resource, Cause: AsSidecarError(err)}
	}

	return &LockHandle{
		client:        c,
		Store:         store,
		ResourceID:    resource,
		Owner:         owner,
		ExpirySeconds: expirySeconds,
		Success:       resp.Success,
	}, nil
}

// UnlockStatus enumerates the outcomes of Unlock.
type UnlockStatus = runtimev1.UnlockResponse_Status

const (
	UnlockSuccess            = runtimev1.UnlockResponse_SUCCESS
	UnlockDoesNotExist       = runtimev1.UnlockResponse_LOCK_DOES_NOT_EXIST
	UnlockBelongsToOthers    = runtimev1.UnlockResponse_LOCK_BELONGS_TO_OTHERS
	UnlockInternalError      = runtimev1.UnlockResponse_INTERNAL_ERROR
)

// Unlock releases the lock. On a handle that never acquired the lock (Success ==
// false) it returns UnlockSuccess without issuing an RPC. Otherwise every call
// issues the RPC: a lock that was already released by an earlier call is observed
// by the sidecar as UnlockDoesNotExist, not cached locally as a no-op (spec.md §3:
// "the second attempt is observed by the sidecar as lock_does_not_exist").
func (h *LockHandle) Unlock(ctx context.Context) (UnlockStatus, error) {
	if !h.Success {
		return UnlockSuccess, nil
	}
	return h.client.Unlock(ctx, h.Store, h.ResourceID, h.Owner)
}

// Unlock releases a distributed lock identified by the (store, resource, owner)
// triple directly, without requiring the LockHandle that acquired it (spec.md
// §4.C). It validates its arguments locally (ArgumentError) before issuing any
// RPC. Calling it again after a successful release re-issues the RPC and
// observes UnlockDoesNotExist from the sidecar.
func (c *Client) Unlock(ctx context.Context, store, resource, owner string) (UnlockStatus, error) {
	if err := validateLockIdentity(store, resource, owner); err != nil {
		return UnlockInternalError, err
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.UnlockAlpha1(ctx, &runtimev1.UnlockRequest{
		StoreName:  store,
		ResourceId: resource,
		LockOwner:  owner,
	}, c.copts...)
	if err != nil {
		return UnlockInternalError, &StateError{Op: "unlock", Store: store, Key: resource, Cause: AsSidecarError(err)}
	}
	return resp.Status, nil
}

// Release is the scoped-resource idiom for Unlock, meant for defer: it swallows the
// returned status and reports only a genuine failure (spec.md §7: ErrLockError).
// Contention observed on the matching try_lock is not a release failure.
func (h *LockHandle) Release(ctx context.Context) error {
	status, err := h.Unlock(ctx)
	if err != nil {
		return err
	}
	if status == UnlockDoesNotExist || status == UnlockBelongsToOthers || status == UnlockInternalError {
		return ErrLockError
	}
	return nil
}
