package dapr_test

import (
	"context"
	"testing"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
)

func TestParseWorkflowRuntimeStatus(t *testing.T) {
	require := require.New(t)
	require.Equal(dapr.WorkflowRunning, dapr.ParseWorkflowRuntimeStatus("Running"))
	require.Equal(dapr.WorkflowCompleted, dapr.ParseWorkflowRuntimeStatus("Completed"))
	require.Equal(dapr.WorkflowUnknown, dapr.ParseWorkflowRuntimeStatus("something-new"))
}

func TestStartWorkflowGeneratesInstanceIdWhenEmpty(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnStartWorkflowBeta1 = func(_ context.Context, in *runtimev1.StartWorkflowRequest) (*runtimev1.StartWorkflowResponse, error) {
		require.NotEmpty(in.InstanceId)
		return &runtimev1.StartWorkflowResponse{InstanceId: in.InstanceId}, nil
	}

	client := newTestClient(t, srv)
	instanceId, err := client.StartWorkflow(context.Background(), "dapr", "order-workflow", "", nil, nil)
	require.NoError(err)
	require.NotEmpty(instanceId)
}

func TestStartWorkflowHonorsGivenInstanceId(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnStartWorkflowBeta1 = func(_ context.Context, in *runtimev1.StartWorkflowRequest) (*runtimev1.StartWorkflowResponse, error) {
		return &runtimev1.StartWorkflowResponse{InstanceId: in.InstanceId}, nil
	}

	client := newTestClient(t, srv)
	instanceId, err := client.StartWorkflow(context.Background(), "dapr", "order-workflow", "wf-1", nil, nil)
	require.NoError(err)
	require.Equal("wf-1", instanceId)
}

func TestGetWorkflow(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnGetWorkflowBeta1 = func(_ context.Context, in *runtimev1.GetWorkflowRequest) (*runtimev1.GetWorkflowResponse, error) {
		require.Equal("wf-1", in.InstanceId)
		return &runtimev1.GetWorkflowResponse{
			WorkflowName:  "order-workflow",
			RuntimeStatus: "Running",
		}, nil
	}

	client := newTestClient(t, srv)
	instance, err := client.GetWorkflow(context.Background(), "dapr", "wf-1")
	require.NoError(err)
	require.Equal("order-workflow", instance.WorkflowName)
	require.Equal(dapr.WorkflowRunning, instance.RuntimeStatus)
}

func TestRaiseEventWorkflow(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnRaiseEventWorkflowBeta1 = func(_ context.Context, in *runtimev1.RaiseEventWorkflowRequest) (*runtimev1.Empty, error) {
		require.Equal("wf-1", in.InstanceId)
		require.Equal("payment-confirmed", in.EventName)
		return &runtimev1.Empty{}, nil
	}

	client := newTestClient(t, srv)
	err := client.RaiseEventWorkflow(context.Background(), "dapr", "wf-1", "payment-confirmed", []byte(`{}`))
	require.NoError(err)
}
