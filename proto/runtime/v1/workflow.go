package v1

// StartWorkflowRequest starts a new workflow instance; InstanceId empty lets the
// sidecar generate one.
type StartWorkflowRequest struct {
	message
	InstanceId      string
	WorkflowComponent string
	WorkflowName    string
	Options         map[string]string
	Input           []byte
	SendRawInput    bool
}

type StartWorkflowResponse struct {
	message
	InstanceId string
}

type GetWorkflowRequest struct {
	message
	InstanceId        string
	WorkflowComponent string
}

// GetWorkflowResponse_WorkflowRuntimeStatus mirrors the Dapr workflow runtime status
// enum (original_source/dapr/clients/grpc/_helpers.py WorkflowRuntimeStatus), with an
// explicit UNKNOWN fallback for forward compatibility with statuses this client has
// not seen yet.
type GetWorkflowResponse_WorkflowRuntimeStatus int32

const (
	WorkflowStatus_UNKNOWN   GetWorkflowResponse_WorkflowRuntimeStatus = 0
	WorkflowStatus_RUNNING   GetWorkflowResponse_WorkflowRuntimeStatus = 1
	WorkflowStatus_COMPLETED GetWorkflowResponse_WorkflowRuntimeStatus = 2
	WorkflowStatus_FAILED    GetWorkflowResponse_WorkflowRuntimeStatus = 3
	WorkflowStatus_TERMINATED GetWorkflowResponse_WorkflowRuntimeStatus = 4
	WorkflowStatus_PENDING   GetWorkflowResponse_WorkflowRuntimeStatus = 5
	WorkflowStatus_SUSPENDED GetWorkflowResponse_WorkflowRuntimeStatus = 6
)

type GetWorkflowResponse struct {
	message
	InstanceId   string
	WorkflowName string
	CreatedAt    int64 // unix nanos
	LastUpdatedAt int64
	RuntimeStatus string // raw string as returned by the sidecar
	Properties   map[string]string
}

type PauseWorkflowRequest struct {
	message
	InstanceId        string
	WorkflowComponent string
}

type ResumeWorkflowRequest struct {
	message
	InstanceId        string
	WorkflowComponent string
}

type TerminateWorkflowRequest struct {
	message
	InstanceId        string
	WorkflowComponent string
}

type PurgeWorkflowRequest struct {
	message
	InstanceId        string
	WorkflowComponent string
}

type RaiseEventWorkflowRequest struct {
	message
	InstanceId        string
	WorkflowComponent string
	EventName         string
	EventData         []byte
}
