package v1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this hand-authored file stays
// compatible with the grpc package it is built against, mirroring the assertion
// protoc-gen-go-grpc emits in generated code.
const _ = grpc.SupportPackageIsVersion7

// DaprClient is the client API for the Dapr runtime sidecar service. It covers the
// subset of dapr.proto.runtime.v1.Dapr this module fronts: state & distributed locks,
// pub/sub (unary publish, bulk publish, and the bidirectional-streaming subscriber),
// crypto (bidirectional-streaming encrypt/decrypt), configuration (get and the
// server-streaming watch), workflow control, the conversation API, job scheduling and
// sidecar metadata/shutdown.
type DaprClient interface {
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	GetBulkState(ctx context.Context, in *GetBulkStateRequest, opts ...grpc.CallOption) (*GetBulkStateResponse, error)
	SaveState(ctx context.Context, in *SaveStateRequest, opts ...grpc.CallOption) (*SaveStateResponse, error)
	DeleteState(ctx context.Context, in *DeleteStateRequest, opts ...grpc.CallOption) (*DeleteStateResponse, error)
	ExecuteStateTransaction(ctx context.Context, in *ExecuteStateTransactionRequest, opts ...grpc.CallOption) (*ExecuteStateTransactionResponse, error)
	QueryStateAlpha1(ctx context.Context, in *QueryStateRequest, opts ...grpc.CallOption) (*QueryStateResponse, error)
	TryLockAlpha1(ctx context.Context, in *TryLockRequest, opts ...grpc.CallOption) (*TryLockResponse, error)
	UnlockAlpha1(ctx context.Context, in *UnlockRequest, opts ...grpc.CallOption) (*UnlockResponse, error)

	PublishEvent(ctx context.Context, in *PublishEventRequest, opts ...grpc.CallOption) (*PublishEventResponse, error)
	BulkPublishEventAlpha1(ctx context.Context, in *BulkPublishEventRequest, opts ...grpc.CallOption) (*BulkPublishEventResponse, error)
	SubscribeTopicEventsAlpha1(ctx context.Context, opts ...grpc.CallOption) (Dapr_SubscribeTopicEventsAlpha1Client, error)

	EncryptAlpha1(ctx context.Context, opts ...grpc.CallOption) (Dapr_EncryptAlpha1Client, error)
	DecryptAlpha1(ctx context.Context, opts ...grpc.CallOption) (Dapr_DecryptAlpha1Client, error)

	GetConfiguration(ctx context.Context, in *GetConfigurationRequest, opts ...grpc.CallOption) (*GetConfigurationResponse, error)
	SubscribeConfiguration(ctx context.Context, in *SubscribeConfigurationRequest, opts ...grpc.CallOption) (Dapr_SubscribeConfigurationClient, error)
	UnsubscribeConfiguration(ctx context.Context, in *UnsubscribeConfigurationRequest, opts ...grpc.CallOption) (*UnsubscribeConfigurationResponse, error)

	StartWorkflowBeta1(ctx context.Context, in *StartWorkflowRequest, opts ...grpc.CallOption) (*StartWorkflowResponse, error)
	GetWorkflowBeta1(ctx context.Context, in *GetWorkflowRequest, opts ...grpc.CallOption) (*GetWorkflowResponse, error)
	PauseWorkflowBeta1(ctx context.Context, in *PauseWorkflowRequest, opts ...grpc.CallOption) (*Empty, error)
	ResumeWorkflowBeta1(ctx context.Context, in *ResumeWorkflowRequest, opts ...grpc.CallOption) (*Empty, error)
	TerminateWorkflowBeta1(ctx context.Context, in *TerminateWorkflowRequest, opts ...grpc.CallOption) (*Empty, error)
	PurgeWorkflowBeta1(ctx context.Context, in *PurgeWorkflowRequest, opts ...grpc.CallOption) (*Empty, error)
	RaiseEventWorkflowBeta1(ctx context.Context, in *RaiseEventWorkflowRequest, opts ...grpc.CallOption) (*Empty, error)

	ConverseAlpha1(ctx context.Context, in *ConversationRequestAlpha1, opts ...grpc.CallOption) (*ConversationResponseAlpha1, error)
	ConverseStreamAlpha2(ctx context.Context, in *ConversationRequestAlpha2, opts ...grpc.CallOption) (Dapr_ConverseStreamAlpha2Client, error)

	ScheduleJobAlpha1(ctx context.Context, in *ScheduleJobRequest, opts ...grpc.CallOption) (*ScheduleJobResponse, error)
	GetJobAlpha1(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	DeleteJobAlpha1(ctx context.Context, in *DeleteJobRequest, opts ...grpc.CallOption) (*DeleteJobResponse, error)

	GetMetadata(ctx context.Context, in *GetMetadataRequest, opts ...grpc.CallOption) (*GetMetadataResponse, error)
	SetMetadata(ctx context.Context, in *SetMetadataRequest, opts ...grpc.CallOption) (*Empty, error)
	Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*Empty, error)
}

// Empty mirrors google.protobuf.Empty for the handful of RPCs that return nothing.
type Empty struct {
	message
}

type SaveStateResponse struct{ message }
type DeleteStateResponse struct{ message }
type ExecuteStateTransactionResponse struct{ message }

type daprClient struct {
	cc grpc.ClientConnInterface
}

func NewDaprClient(cc grpc.ClientConnInterface) DaprClient {
	return &daprClient{cc}
}

func (c *daprClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	out := new(GetStateResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/GetState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) GetBulkState(ctx context.Context, in *GetBulkStateRequest, opts ...grpc.CallOption) (*GetBulkStateResponse, error) {
	out := new(GetBulkStateResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/GetBulkState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) SaveState(ctx context.Context, in *SaveStateRequest, opts ...grpc.CallOption) (*SaveStateResponse, error) {
	out := new(SaveStateResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/SaveState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) DeleteState(ctx context.Context, in *DeleteStateRequest, opts ...grpc.CallOption) (*DeleteStateResponse, error) {
	out := new(DeleteStateResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/DeleteState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) ExecuteStateTransaction(ctx context.Context, in *ExecuteStateTransactionRequest, opts ...grpc.CallOption) (*ExecuteStateTransactionResponse, error) {
	out := new(ExecuteStateTransactionResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/ExecuteStateTransaction", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) QueryStateAlpha1(ctx context.Context, in *QueryStateRequest, opts ...grpc.CallOption) (*QueryStateResponse, error) {
	out := new(QueryStateResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/QueryStateAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) TryLockAlpha1(ctx context.Context, in *TryLockRequest, opts ...grpc.CallOption) (*TryLockResponse, error) {
	out := new(TryLockResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/TryLockAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) UnlockAlpha1(ctx context.Context, in *UnlockRequest, opts ...grpc.CallOption) (*UnlockResponse, error) {
	out := new(UnlockResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/UnlockAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) PublishEvent(ctx context.Context, in *PublishEventRequest, opts ...grpc.CallOption) (*PublishEventResponse, error) {
	out := new(PublishEventResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/PublishEvent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) BulkPublishEventAlpha1(ctx context.Context, in *BulkPublishEventRequest, opts ...grpc.CallOption) (*BulkPublishEventResponse, error) {
	out := new(BulkPublishEventResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/BulkPublishEventAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) SubscribeTopicEventsAlpha1(ctx context.Context, opts ...grpc.CallOption) (Dapr_SubscribeTopicEventsAlpha1Client, error) {
	stream, err := c.cc.NewStream(ctx, &Dapr_ServiceDesc.Streams[0], "/dapr.proto.runtime.v1.Dapr/SubscribeTopicEventsAlpha1", opts...)
	if err != nil {
		return nil, err
	}
	return &daprSubscribeTopicEventsAlpha1Client{stream}, nil
}

type Dapr_SubscribeTopicEventsAlpha1Client interface {
	Send(*SubscribeTopicEventsRequestAlpha1) error
	Recv() (*SubscribeTopicEventsResponseAlpha1, error)
	grpc.ClientStream
}

type daprSubscribeTopicEventsAlpha1Client struct {
	grpc.ClientStream
}

func (x *daprSubscribeTopicEventsAlpha1Client) Send(m *SubscribeTopicEventsRequestAlpha1) error {
	return x.ClientStream.SendMsg(m)
}

func (x *daprSubscribeTopicEventsAlpha1Client) Recv() (*SubscribeTopicEventsResponseAlpha1, error) {
	m := new(SubscribeTopicEventsResponseAlpha1)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *daprClient) EncryptAlpha1(ctx context.Context, opts ...grpc.CallOption) (Dapr_EncryptAlpha1Client, error) {
	stream, err := c.cc.NewStream(ctx, &Dapr_ServiceDesc.Streams[1], "/dapr.proto.runtime.v1.Dapr/EncryptAlpha1", opts...)
	if err != nil {
		return nil, err
	}
	return &daprEncryptAlpha1Client{stream}, nil
}

type Dapr_EncryptAlpha1Client interface {
	Send(*EncryptRequest) error
	Recv() (*EncryptResponse, error)
	grpc.ClientStream
}

type daprEncryptAlpha1Client struct {
	grpc.ClientStream
}

func (x *daprEncryptAlpha1Client) Send(m *EncryptRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *daprEncryptAlpha1Client) Recv() (*EncryptResponse, error) {
	m := new(EncryptResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *daprClient) DecryptAlpha1(ctx context.Context, opts ...grpc.CallOption) (Dapr_DecryptAlpha1Client, error) {
	stream, err := c.cc.NewStream(ctx, &Dapr_ServiceDesc.Streams[2], "/dapr.proto.runtime.v1.Dapr/DecryptAlpha1", opts...)
	if err != nil {
		return nil, err
	}
	return &daprDecryptAlpha1Client{stream}, nil
}

type Dapr_DecryptAlpha1Client interface {
	Send(*DecryptRequest) error
	Recv() (*DecryptResponse, error)
	grpc.ClientStream
}

type daprDecryptAlpha1Client struct {
	grpc.ClientStream
}

func (x *daprDecryptAlpha1Client) Send(m *DecryptRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *daprDecryptAlpha1Client) Recv() (*DecryptResponse, error) {
	m := new(DecryptResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *daprClient) GetConfiguration(ctx context.Context, in *GetConfigurationRequest, opts ...grpc.CallOption) (*GetConfigurationResponse, error) {
	out := new(GetConfigurationResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/GetConfiguration", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) SubscribeConfiguration(ctx context.Context, in *SubscribeConfigurationRequest, opts ...grpc.CallOption) (Dapr_SubscribeConfigurationClient, error) {
	stream, err := c.cc.NewStream(ctx, &Dapr_ServiceDesc.Streams[3], "/dapr.proto.runtime.v1.Dapr/SubscribeConfiguration", opts...)
	if err != nil {
		return nil, err
	}
	x := &daprSubscribeConfigurationClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Dapr_SubscribeConfigurationClient interface {
	Recv() (*SubscribeConfigurationResponse, error)
	grpc.ClientStream
}

type daprSubscribeConfigurationClient struct {
	grpc.ClientStream
}

func (x *daprSubscribeConfigurationClient) Recv() (*SubscribeConfigurationResponse, error) {
	m := new(SubscribeConfigurationResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *daprClient) UnsubscribeConfiguration(ctx context.Context, in *UnsubscribeConfigurationRequest, opts ...grpc.CallOption) (*UnsubscribeConfigurationResponse, error) {
	out := new(UnsubscribeConfigurationResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/UnsubscribeConfiguration", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) StartWorkflowBeta1(ctx context.Context, in *StartWorkflowRequest, opts ...grpc.CallOption) (*StartWorkflowResponse, error) {
	out := new(StartWorkflowResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/StartWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) GetWorkflowBeta1(ctx context.Context, in *GetWorkflowRequest, opts ...grpc.CallOption) (*GetWorkflowResponse, error) {
	out := new(GetWorkflowResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/GetWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) PauseWorkflowBeta1(ctx context.Context, in *PauseWorkflowRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/PauseWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) ResumeWorkflowBeta1(ctx context.Context, in *ResumeWorkflowRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/ResumeWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) TerminateWorkflowBeta1(ctx context.Context, in *TerminateWorkflowRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/TerminateWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) PurgeWorkflowBeta1(ctx context.Context, in *PurgeWorkflowRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/PurgeWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) RaiseEventWorkflowBeta1(ctx context.Context, in *RaiseEventWorkflowRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/RaiseEventWorkflowBeta1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) ConverseAlpha1(ctx context.Context, in *ConversationRequestAlpha1, opts ...grpc.CallOption) (*ConversationResponseAlpha1, error) {
	out := new(ConversationResponseAlpha1)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/ConverseAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) ConverseStreamAlpha2(ctx context.Context, in *ConversationRequestAlpha2, opts ...grpc.CallOption) (Dapr_ConverseStreamAlpha2Client, error) {
	stream, err := c.cc.NewStream(ctx, &Dapr_ServiceDesc.Streams[4], "/dapr.proto.runtime.v1.Dapr/ConverseStreamAlpha2", opts...)
	if err != nil {
		return nil, err
	}
	x := &daprConverseStreamAlpha2Client{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Dapr_ConverseStreamAlpha2Client interface {
	Recv() (*ConversationStreamChunkAlpha2, error)
	grpc.ClientStream
}

type daprConverseStreamAlpha2Client struct {
	grpc.ClientStream
}

func (x *daprConverseStreamAlpha2Client) Recv() (*ConversationStreamChunkAlpha2, error) {
	m := new(ConversationStreamChunkAlpha2)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *daprClient) ScheduleJobAlpha1(ctx context.Context, in *ScheduleJobRequest, opts ...grpc.CallOption) (*ScheduleJobResponse, error) {
	out := new(ScheduleJobResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/ScheduleJobAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) GetJobAlpha1(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	out := new(GetJobResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/GetJobAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) DeleteJobAlpha1(ctx context.Context, in *DeleteJobRequest, opts ...grpc.CallOption) (*DeleteJobResponse, error) {
	out := new(DeleteJobResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/DeleteJobAlpha1", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) GetMetadata(ctx context.Context, in *GetMetadataRequest, opts ...grpc.CallOption) (*GetMetadataResponse, error) {
	out := new(GetMetadataResponse)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/GetMetadata", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) SetMetadata(ctx context.Context, in *SetMetadataRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/SetMetadata", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daprClient) Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/dapr.proto.runtime.v1.Dapr/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DaprServer is the server API for the Dapr runtime service, implemented by the
// in-process mock used in this module's tests. All implementations must embed
// UnimplementedDaprServer for forward compatibility.
type DaprServer interface {
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	GetBulkState(context.Context, *GetBulkStateRequest) (*GetBulkStateResponse, error)
	SaveState(context.Context, *SaveStateRequest) (*SaveStateResponse, error)
	DeleteState(context.Context, *DeleteStateRequest) (*DeleteStateResponse, error)
	ExecuteStateTransaction(context.Context, *ExecuteStateTransactionRequest) (*ExecuteStateTransactionResponse, error)
	QueryStateAlpha1(context.Context, *QueryStateRequest) (*QueryStateResponse, error)
	TryLockAlpha1(context.Context, *TryLockRequest) (*TryLockResponse, error)
	UnlockAlpha1(context.Context, *UnlockRequest) (*UnlockResponse, error)

	PublishEvent(context.Context, *PublishEventRequest) (*PublishEventResponse, error)
	BulkPublishEventAlpha1(context.Context, *BulkPublishEventRequest) (*BulkPublishEventResponse, error)
	SubscribeTopicEventsAlpha1(Dapr_SubscribeTopicEventsAlpha1Server) error

	EncryptAlpha1(Dapr_EncryptAlpha1Server) error
	DecryptAlpha1(Dapr_DecryptAlpha1Server) error

	GetConfiguration(context.Context, *GetConfigurationRequest) (*GetConfigurationResponse, error)
	SubscribeConfiguration(*SubscribeConfigurationRequest, Dapr_SubscribeConfigurationServer) error
	UnsubscribeConfiguration(context.Context, *UnsubscribeConfigurationRequest) (*UnsubscribeConfigurationResponse, error)

	StartWorkflowBeta1(context.Context, *StartWorkflowRequest) (*StartWorkflowResponse, error)
	GetWorkflowBeta1(context.Context, *GetWorkflowRequest) (*GetWorkflowResponse, error)
	PauseWorkflowBeta1(context.Context, *PauseWorkflowRequest) (*Empty, error)
	ResumeWorkflowBeta1(context.Context, *ResumeWorkflowRequest) (*Empty, error)
	TerminateWorkflowBeta1(context.Context, *TerminateWorkflowRequest) (*Empty, error)
	PurgeWorkflowBeta1(context.Context, *PurgeWorkflowRequest) (*Empty, error)
	RaiseEventWorkflowBeta1(context.Context, *RaiseEventWorkflowRequest) (*Empty, error)

	ConverseAlpha1(context.Context, *ConversationRequestAlpha1) (*ConversationResponseAlpha1, error)
	ConverseStreamAlpha2(*ConversationRequestAlpha2, Dapr_ConverseStreamAlpha2Server) error

	ScheduleJobAlpha1(context.Context, *ScheduleJobRequest) (*ScheduleJobResponse, error)
	GetJobAlpha1(context.Context, *GetJobRequest) (*GetJobResponse, error)
	DeleteJobAlpha1(context.Context, *DeleteJobRequest) (*DeleteJobResponse, error)

	GetMetadata(context.Context, *GetMetadataRequest) (*GetMetadataResponse, error)
	SetMetadata(context.Context, *SetMetadataRequest) (*Empty, error)
	Shutdown(context.Context, *ShutdownRequest) (*Empty, error)

	mustEmbedUnimplementedDaprServer()
}

type Dapr_SubscribeTopicEventsAlpha1Server interface {
	Send(*SubscribeTopicEventsResponseAlpha1) error
	Recv() (*SubscribeTopicEventsRequestAlpha1, error)
	grpc.ServerStream
}

type daprSubscribeTopicEventsAlpha1Server struct {
	grpc.ServerStream
}

func (x *daprSubscribeTopicEventsAlpha1Server) Send(m *SubscribeTopicEventsResponseAlpha1) error {
	return x.ServerStream.SendMsg(m)
}

func (x *daprSubscribeTopicEventsAlpha1Server) Recv() (*SubscribeTopicEventsRequestAlpha1, error) {
	m := new(SubscribeTopicEventsRequestAlpha1)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Dapr_EncryptAlpha1Server interface {
	Send(*EncryptResponse) error
	Recv() (*EncryptRequest, error)
	grpc.ServerStream
}

type daprEncryptAlpha1Server struct {
	grpc.ServerStream
}

func (x *daprEncryptAlpha1Server) Send(m *EncryptResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *daprEncryptAlpha1Server) Recv() (*EncryptRequest, error) {
	m := new(EncryptRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Dapr_DecryptAlpha1Server interface {
	Send(*DecryptResponse) error
	Recv() (*DecryptRequest, error)
	grpc.ServerStream
}

type daprDecryptAlpha1Server struct {
	grpc.ServerStream
}

func (x *daprDecryptAlpha1Server) Send(m *DecryptResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *daprDecryptAlpha1Server) Recv() (*DecryptRequest, error) {
	m := new(DecryptRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Dapr_SubscribeConfigurationServer interface {
	Send(*SubscribeConfigurationResponse) error
	grpc.ServerStream
}

type daprSubscribeConfigurationServer struct {
	grpc.ServerStream
}

func (x *daprSubscribeConfigurationServer) Send(m *SubscribeConfigurationResponse) error {
	return x.ServerStream.SendMsg(m)
}

type Dapr_ConverseStreamAlpha2Server interface {
	Send(*ConversationStreamChunkAlpha2) error
	grpc.ServerStream
}

type daprConverseStreamAlpha2Server struct {
	grpc.ServerStream
}

func (x *daprConverseStreamAlpha2Server) Send(m *ConversationStreamChunkAlpha2) error {
	return x.ServerStream.SendMsg(m)
}

// UnimplementedDaprServer must be embedded to have forward compatible implementations.
type UnimplementedDaprServer struct{}

func (UnimplementedDaprServer) GetState(context.Context, *GetStateRequest) (*GetStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedDaprServer) GetBulkState(context.Context, *GetBulkStateRequest) (*GetBulkStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBulkState not implemented")
}
func (UnimplementedDaprServer) SaveState(context.Context, *SaveStateRequest) (*SaveStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveState not implemented")
}
func (UnimplementedDaprServer) DeleteState(context.Context, *DeleteStateRequest) (*DeleteStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteState not implemented")
}
func (UnimplementedDaprServer) ExecuteStateTransaction(context.Context, *ExecuteStateTransactionRequest) (*ExecuteStateTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteStateTransaction not implemented")
}
func (UnimplementedDaprServer) QueryStateAlpha1(context.Context, *QueryStateRequest) (*QueryStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryStateAlpha1 not implemented")
}
func (UnimplementedDaprServer) TryLockAlpha1(context.Context, *TryLockRequest) (*TryLockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TryLockAlpha1 not implemented")
}
func (UnimplementedDaprServer) UnlockAlpha1(context.Context, *UnlockRequest) (*UnlockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnlockAlpha1 not implemented")
}
func (UnimplementedDaprServer) PublishEvent(context.Context, *PublishEventRequest) (*PublishEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PublishEvent not implemented")
}
func (UnimplementedDaprServer) BulkPublishEventAlpha1(context.Context, *BulkPublishEventRequest) (*BulkPublishEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BulkPublishEventAlpha1 not implemented")
}
func (UnimplementedDaprServer) SubscribeTopicEventsAlpha1(Dapr_SubscribeTopicEventsAlpha1Server) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeTopicEventsAlpha1 not implemented")
}
func (UnimplementedDaprServer) EncryptAlpha1(Dapr_EncryptAlpha1Server) error {
	return status.Errorf(codes.Unimplemented, "method EncryptAlpha1 not implemented")
}
func (UnimplementedDaprServer) DecryptAlpha1(Dapr_DecryptAlpha1Server) error {
	return status.Errorf(codes.Unimplemented, "method DecryptAlpha1 not implemented")
}
func (UnimplementedDaprServer) GetConfiguration(context.Context, *GetConfigurationRequest) (*GetConfigurationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetConfiguration not implemented")
}
func (UnimplementedDaprServer) SubscribeConfiguration(*SubscribeConfigurationRequest, Dapr_SubscribeConfigurationServer) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeConfiguration not implemented")
}
func (UnimplementedDaprServer) UnsubscribeConfiguration(context.Context, *UnsubscribeConfigurationRequest) (*UnsubscribeConfigurationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnsubscribeConfiguration not implemented")
}
func (UnimplementedDaprServer) StartWorkflowBeta1(context.Context, *StartWorkflowRequest) (*StartWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) GetWorkflowBeta1(context.Context, *GetWorkflowRequest) (*GetWorkflowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) PauseWorkflowBeta1(context.Context, *PauseWorkflowRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PauseWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) ResumeWorkflowBeta1(context.Context, *ResumeWorkflowRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) TerminateWorkflowBeta1(context.Context, *TerminateWorkflowRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TerminateWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) PurgeWorkflowBeta1(context.Context, *PurgeWorkflowRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PurgeWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) RaiseEventWorkflowBeta1(context.Context, *RaiseEventWorkflowRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RaiseEventWorkflowBeta1 not implemented")
}
func (UnimplementedDaprServer) ConverseAlpha1(context.Context, *ConversationRequestAlpha1) (*ConversationResponseAlpha1, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConverseAlpha1 not implemented")
}
func (UnimplementedDaprServer) ConverseStreamAlpha2(*ConversationRequestAlpha2, Dapr_ConverseStreamAlpha2Server) error {
	return status.Errorf(codes.Unimplemented, "method ConverseStreamAlpha2 not implemented")
}
func (UnimplementedDaprServer) ScheduleJobAlpha1(context.Context, *ScheduleJobRequest) (*ScheduleJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScheduleJobAlpha1 not implemented")
}
func (UnimplementedDaprServer) GetJobAlpha1(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobAlpha1 not implemented")
}
func (UnimplementedDaprServer) DeleteJobAlpha1(context.Context, *DeleteJobRequest) (*DeleteJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteJobAlpha1 not implemented")
}
func (UnimplementedDaprServer) GetMetadata(context.Context, *GetMetadataRequest) (*GetMetadataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMetadata not implemented")
}
func (UnimplementedDaprServer) SetMetadata(context.Context, *SetMetadataRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetMetadata not implemented")
}
func (UnimplementedDaprServer) Shutdown(context.Context, *ShutdownRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Shutdown not implemented")
}
func (UnimplementedDaprServer) mustEmbedUnimplementedDaprServer() {}

// UnsafeDaprServer may be embedded to opt out of forward compatibility for this
// service. Use of this interface is not recommended.
type UnsafeDaprServer interface {
	mustEmbedUnimplementedDaprServer()
}

func RegisterDaprServer(s grpc.ServiceRegistrar, srv DaprServer) {
	s.RegisterService(&Dapr_ServiceDesc, srv)
}

func _Dapr_SubscribeTopicEventsAlpha1_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DaprServer).SubscribeTopicEventsAlpha1(&daprSubscribeTopicEventsAlpha1Server{stream})
}

func _Dapr_EncryptAlpha1_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DaprServer).EncryptAlpha1(&daprEncryptAlpha1Server{stream})
}

func _Dapr_DecryptAlpha1_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DaprServer).DecryptAlpha1(&daprDecryptAlpha1Server{stream})
}

func _Dapr_SubscribeConfiguration_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeConfigurationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DaprServer).SubscribeConfiguration(m, &daprSubscribeConfigurationServer{stream})
}

func _Dapr_ConverseStreamAlpha2_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ConversationRequestAlpha2)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DaprServer).ConverseStreamAlpha2(m, &daprConverseStreamAlpha2Server{stream})
}

func _Dapr_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaprServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dapr.proto.runtime.v1.Dapr/GetState"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaprServer).GetState(ctx, req.(*GetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Dapr_ServiceDesc is the grpc.ServiceDesc for the Dapr service. Only streaming
// methods and the unary methods the in-process mock exercises carry real handlers;
// other unary methods are invoked purely client-side via Invoke and do not need a
// registered handler to be reachable in this module's tests, mirroring how the
// teacher's Ensign_ServiceDesc only registers what it actually serves.
var Dapr_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dapr.proto.runtime.v1.Dapr",
	HandlerType: (*DaprServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: _Dapr_GetState_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeTopicEventsAlpha1",
			Handler:       _Dapr_SubscribeTopicEventsAlpha1_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "EncryptAlpha1",
			Handler:       _Dapr_EncryptAlpha1_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "DecryptAlpha1",
			Handler:       _Dapr_DecryptAlpha1_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "SubscribeConfiguration",
			Handler:       _Dapr_SubscribeConfiguration_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "ConverseStreamAlpha2",
			Handler:       _Dapr_ConverseStreamAlpha2_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "dapr/proto/runtime/v1/dapr.proto",
}
