package dapr

import (
	"context"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/google/uuid"
)

// WorkflowRuntimeStatus re-exports the sidecar's workflow status enum.
type WorkflowRuntimeStatus = runtimev1.GetWorkflowResponse_WorkflowRuntimeStatus

const (
	WorkflowUnknown    = runtimev1.WorkflowStatus_UNKNOWN
	WorkflowRunning    = runtimev1.WorkflowStatus_RUNNING
	WorkflowCompleted  = runtimev1.WorkflowStatus_COMPLETED
	WorkflowFailed     = runtimev1.WorkflowStatus_FAILED
	WorkflowTerminated = runtimev1.WorkflowStatus_TERMINATED
	WorkflowPending    = runtimev1.WorkflowStatus_PENDING
	WorkflowSuspended  = runtimev1.WorkflowStatus_SUSPENDED
)

// workflowRuntimeStatusByName maps the sidecar's raw status string onto its enum,
// falling back to WorkflowUnknown for anything this client hasn't seen yet.
var workflowRuntimeStatusByName = map[string]WorkflowRuntimeStatus{
	"Running":    WorkflowRunning,
	"Completed":  WorkflowCompleted,
	"Failed":     WorkflowFailed,
	"Terminated": WorkflowTerminated,
	"Pending":    WorkflowPending,
	"Suspended":  WorkflowSuspended,
}

// ParseWorkflowRuntimeStatus converts the sidecar's raw status string into its enum.
func ParseWorkflowRuntimeStatus(raw string) WorkflowRuntimeStatus {
	if status, ok := workflowRuntimeStatusByName[raw]; ok {
		return status
	}
	return WorkflowUnknown
}

// WorkflowInstance describes a started or running workflow.
type WorkflowInstance struct {
	InstanceId        string
	WorkflowComponent string
	WorkflowName      string
	CreatedAt         int64
	LastUpdatedAt     int64
	RuntimeStatus     WorkflowRuntimeStatus
	Properties        map[string]string
}

// StartWorkflow starts a new instance of workflowName on workflowComponent. An empty
// instanceId is replaced with a random UUID generated by the client; the instance id
// the sidecar reports back is returned.
func (c *Client) StartWorkflow(ctx context.Context, workflowComponent, workflowName, instanceId string, input []byte, options map[string]string) (string, error) {
	if instanceId == "" {
		instanceId = uuid.NewString()
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.StartWorkflowBeta1(ctx, &runtimev1.StartWorkflowRequest{
		InstanceId:        instanceId,
		WorkflowComponent: workflowComponent,
		WorkflowName:      workflowName,
		Options:           options,
		Input:             input,
	}, c.copts...)
	if err != nil {
		return "", AsSidecarError(err)
	}
	return resp.InstanceId, nil
}

// GetWorkflow fetches the current state of a workflow instance.
func (c *Client) GetWorkflow(ctx context.Context, workflowComponent, instanceId string) (*WorkflowInstance, error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	resp, err := c.api.GetWorkflowBeta1(ctx, &runtimev1.GetWorkflowRequest{
		InstanceId:        instanceId,
		WorkflowComponent: workflowComponent,
	}, c.copts...)
	if err != nil {
		return nil, AsSidecarError(err)
	}

	return &WorkflowInstance{
		InstanceId:        instanceId,
		WorkflowComponent: workflowComponent,
		WorkflowName:      resp.WorkflowName,
		CreatedAt:         resp.CreatedAt,
		LastUpdatedAt:     resp.LastUpdatedAt,
		RuntimeStatus:     ParseWorkflowRuntimeStatus(resp.RuntimeStatus),
		Properties:        resp.Properties,
	}, nil
}

// PauseWorkflow suspends a running workflow instance.
func (c *Client) PauseWorkflow(ctx context.Context, workflowComponent, instanceId string) error {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.PauseWorkflowBeta1(ctx, &runtimev1.PauseWorkflowRequest{InstanceId: instanceId, WorkflowComponent: workflowComponent}, c.copts...)
	return AsSidecarError(err)
}

// ResumeWorkflow resumes a paused workflow instance.
func (c *Client) ResumeWorkflow(ctx context.Context, workflowComponent, instanceId string) error {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.ResumeWorkflowBeta1(ctx, &runtimev1.ResumeWorkflowRequest{InstanceId: instanceId, WorkflowComponent: workflowComponent}, c.copts...)
	return AsSidecarError(err)
}

// TerminateWorkflow stops a workflow instance; it cannot be resumed afterward.
func (c *Client) TerminateWorkflow(ctx context.Context, workflowComponent, instanceId string) error {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.TerminateWorkflowBeta1(ctx, &runtimev1.TerminateWorkflowRequest{InstanceId: instanceId, WorkflowComponent: workflowComponent}, c.copts...)
	return AsSidecarError(err)
}

// PurgeWorkflow removes a completed/terminated workflow instance's state.
func (c *Client) PurgeWorkflow(ctx context.Context, workflowComponent, instanceId string) error {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.PurgeWorkflowBeta1(ctx, &runtimev1.PurgeWorkflowRequest{InstanceId: instanceId, WorkflowComponent: workflowComponent}, c.copts...)
	return AsSidecarError(err)
}

// RaiseEventWorkflow delivers an external event to a running workflow instance.
func (c *Client) RaiseEventWorkflow(ctx context.Context, workflowComponent, instanceId, eventName string, eventData []byte) error {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.RaiseEventWorkflowBeta1(ctx, &runtimev1.RaiseEventWorkflowRequest{
		InstanceId:        instanceId,
		WorkflowComponent: workflowComponent,
		EventName:         eventName,
		EventData:         eventData,
	}, c.copts...)
	return AsSidecarError(err)
}
