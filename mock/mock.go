/*
Package mock implements an in-memory gRPC mock of the Dapr sidecar's runtime service
that can be dialed through a bufconn. It lets client-side code for state, pub/sub,
crypto, configuration, workflow, conversation and job operations be exercised without
a real sidecar process, the same role the teacher's mock package plays for testing
Ensign client code.
*/
package mock

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
)

// RPC name constants matching the FullMethod strings carried on every gRPC call; used
// to key the Calls map and the UseError configuration helper.
const (
	GetStateRPC                = "/dapr.proto.runtime.v1.Dapr/GetState"
	GetBulkStateRPC            = "/dapr.proto.runtime.v1.Dapr/GetBulkState"
	SaveStateRPC               = "/dapr.proto.runtime.v1.Dapr/SaveState"
	DeleteStateRPC             = "/dapr.proto.runtime.v1.Dapr/DeleteState"
	ExecuteStateTransactionRPC = "/dapr.proto.runtime.v1.Dapr/ExecuteStateTransaction"
	QueryStateAlpha1RPC        = "/dapr.proto.runtime.v1.Dapr/QueryStateAlpha1"
	TryLockAlpha1RPC           = "/dapr.proto.runtime.v1.Dapr/TryLockAlpha1"
	UnlockAlpha1RPC            = "/dapr.proto.runtime.v1.Dapr/UnlockAlpha1"

	PublishEventRPC               = "/dapr.proto.runtime.v1.Dapr/PublishEvent"
	BulkPublishEventAlpha1RPC     = "/dapr.proto.runtime.v1.Dapr/BulkPublishEventAlpha1"
	SubscribeTopicEventsAlpha1RPC = "/dapr.proto.runtime.v1.Dapr/SubscribeTopicEventsAlpha1"

	EncryptAlpha1RPC = "/dapr.proto.runtime.v1.Dapr/EncryptAlpha1"
	DecryptAlpha1RPC = "/dapr.proto.runtime.v1.Dapr/DecryptAlpha1"

	GetConfigurationRPC         = "/dapr.proto.runtime.v1.Dapr/GetConfiguration"
	SubscribeConfigurationRPC   = "/dapr.proto.runtime.v1.Dapr/SubscribeConfiguration"
	UnsubscribeConfigurationRPC = "/dapr.proto.runtime.v1.Dapr/UnsubscribeConfiguration"

	StartWorkflowBeta1RPC      = "/dapr.proto.runtime.v1.Dapr/StartWorkflowBeta1"
	GetWorkflowBeta1RPC        = "/dapr.proto.runtime.v1.Dapr/GetWorkflowBeta1"
	PauseWorkflowBeta1RPC      = "/dapr.proto.runtime.v1.Dapr/PauseWorkflowBeta1"
	ResumeWorkflowBeta1RPC     = "/dapr.proto.runtime.v1.Dapr/ResumeWorkflowBeta1"
	TerminateWorkflowBeta1RPC  = "/dapr.proto.runtime.v1.Dapr/TerminateWorkflowBeta1"
	PurgeWorkflowBeta1RPC      = "/dapr.proto.runtime.v1.Dapr/PurgeWorkflowBeta1"
	RaiseEventWorkflowBeta1RPC = "/dapr.proto.runtime.v1.Dapr/RaiseEventWorkflowBeta1"

	ConverseAlpha1RPC       = "/dapr.proto.runtime.v1.Dapr/ConverseAlpha1"
	ConverseStreamAlpha2RPC = "/dapr.proto.runtime.v1.Dapr/ConverseStreamAlpha2"

	ScheduleJobAlpha1RPC = "/dapr.proto.runtime.v1.Dapr/ScheduleJobAlpha1"
	GetJobAlpha1RPC      = "/dapr.proto.runtime.v1.Dapr/GetJobAlpha1"
	DeleteJobAlpha1RPC   = "/dapr.proto.runtime.v1.Dapr/DeleteJobAlpha1"

	GetMetadataRPC = "/dapr.proto.runtime.v1.Dapr/GetMetadata"
	SetMetadataRPC = "/dapr.proto.runtime.v1.Dapr/SetMetadata"
	ShutdownRPC    = "/dapr.proto.runtime.v1.Dapr/Shutdown"
)

// ErrUnavailable is returned by any RPC whose On* handler has not been configured.
var ErrUnavailable = status.Error(codes.Unavailable, "mock method has not been configured")

// Dapr is a mock implementation of the Dapr runtime gRPC service. The response to any
// RPC is set by assigning the corresponding On* field, or via UseError for a uniform
// status error. Calls counts the number of times each RPC was invoked.
type Dapr struct {
	runtimev1.UnimplementedDaprServer
	bufnet *Listener
	srv    *grpc.Server
	client runtimev1.DaprClient
	cc     *grpc.ClientConn
	Calls  map[string]int

	OnGetState                func(context.Context, *runtimev1.GetStateRequest) (*runtimev1.GetStateResponse, error)
	OnGetBulkState            func(context.Context, *runtimev1.GetBulkStateRequest) (*runtimev1.GetBulkStateResponse, error)
	OnSaveState               func(context.Context, *runtimev1.SaveStateRequest) (*runtimev1.SaveStateResponse, error)
	OnDeleteState             func(context.Context, *runtimev1.DeleteStateRequest) (*runtimev1.DeleteStateResponse, error)
	OnExecuteStateTransaction func(context.Context, *runtimev1.ExecuteStateTransactionRequest) (*runtimev1.ExecuteStateTransactionResponse, error)
	OnQueryStateAlpha1        func(context.Context, *runtimev1.QueryStateRequest) (*runtimev1.QueryStateResponse, error)
	OnTryLockAlpha1           func(context.Context, *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error)
	OnUnlockAlpha1            func(context.Context, *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error)

	OnPublishEvent               func(context.Context, *runtimev1.PublishEventRequest) (*runtimev1.PublishEventResponse, error)
	OnBulkPublishEventAlpha1     func(context.Context, *runtimev1.BulkPublishEventRequest) (*runtimev1.BulkPublishEventResponse, error)
	OnSubscribeTopicEventsAlpha1 func(runtimev1.Dapr_SubscribeTopicEventsAlpha1Server) error

	OnEncryptAlpha1 func(runtimev1.Dapr_EncryptAlpha1Server) error
	OnDecryptAlpha1 func(runtimev1.Dapr_DecryptAlpha1Server) error

	OnGetConfiguration         func(context.Context, *runtimev1.GetConfigurationRequest) (*runtimev1.GetConfigurationResponse, error)
	OnSubscribeConfiguration   func(*runtimev1.SubscribeConfigurationRequest, runtimev1.Dapr_SubscribeConfigurationServer) error
	OnUnsubscribeConfiguration func(context.Context, *runtimev1.UnsubscribeConfigurationRequest) (*runtimev1.UnsubscribeConfigurationResponse, error)

	OnStartWorkflowBeta1      func(context.Context, *runtimev1.StartWorkflowRequest) (*runtimev1.StartWorkflowResponse, error)
	OnGetWorkflowBeta1        func(context.Context, *runtimev1.GetWorkflowRequest) (*runtimev1.GetWorkflowResponse, error)
	OnPauseWorkflowBeta1      func(context.Context, *runtimev1.PauseWorkflowRequest) (*runtimev1.Empty, error)
	OnResumeWorkflowBeta1     func(context.Context, *runtimev1.ResumeWorkflowRequest) (*runtimev1.Empty, error)
	OnTerminateWorkflowBeta1  func(context.Context, *runtimev1.TerminateWorkflowRequest) (*runtimev1.Empty, error)
	OnPurgeWorkflowBeta1      func(context.Context, *runtimev1.PurgeWorkflowRequest) (*runtimev1.Empty, error)
	OnRaiseEventWorkflowBeta1 func(context.Context, *runtimev1.RaiseEventWorkflowRequest) (*runtimev1.Empty, error)

	OnConverseAlpha1       func(context.Context, *runtimev1.ConversationRequestAlpha1) (*runtimev1.ConversationResponseAlpha1, error)
	OnConverseStreamAlpha2 func(*runtimev1.ConversationRequestAlpha2, runtimev1.Dapr_ConverseStreamAlpha2Server) error

	OnScheduleJobAlpha1 func(context.Context, *runtimev1.ScheduleJobRequest) (*runtimev1.ScheduleJobResponse, error)
	OnGetJobAlpha1      func(context.Context, *runtimev1.GetJobRequest) (*runtimev1.GetJobResponse, error)
	OnDeleteJobAlpha1   func(context.Context, *runtimev1.DeleteJobRequest) (*runtimev1.DeleteJobResponse, error)

	OnGetMetadata func(context.Context, *runtimev1.GetMetadataRequest) (*runtimev1.GetMetadataResponse, error)
	OnSetMetadata func(context.Context, *runtimev1.SetMetadataRequest) (*runtimev1.Empty, error)
	OnShutdown    func(context.Context, *runtimev1.ShutdownRequest) (*runtimev1.Empty, error)
}

// New creates a mock Dapr server listening on an in-memory bufconn. If bufnet is nil a
// default one is created. Arbitrary server options (e.g. interceptors) can be passed
// through.
func New(bufnet *Listener, opts ...grpc.ServerOption) *Dapr {
	if bufnet == nil {
		bufnet = NewBufConn()
	}

	remote := &Dapr{
		bufnet: bufnet,
		srv:    grpc.NewServer(opts...),
		Calls:  make(map[string]int),
	}

	runtimev1.RegisterDaprServer(remote.srv, remote)
	go remote.srv.Serve(remote.bufnet.Sock())

	return remote
}

// Client dials and caches a DaprClient connected to this mock server.
func (s *Dapr) Client(ctx context.Context, opts ...grpc.DialOption) (client runtimev1.DaprClient, err error) {
	if s.client == nil {
		if len(opts) == 0 {
			opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
		}

		var cc *grpc.ClientConn
		if cc, err = s.bufnet.Connect(ctx, opts...); err != nil {
			return nil, err
		}
		s.cc = cc
		s.client = runtimev1.NewDaprClient(cc)
	}
	return s.client, nil
}

// Conn returns the *grpc.ClientConn backing the cached client, dialing one first via
// Client if necessary. Used by callers (e.g. Client.ConnectMock) that need the raw
// connection for connectivity introspection, not just the generated RPC client.
func (s *Dapr) Conn(ctx context.Context, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if _, err := s.Client(ctx, opts...); err != nil {
		return nil, err
	}
	return s.cc, nil
}

// ResetClient discards the cached client and redials with the given options.
func (s *Dapr) ResetClient(ctx context.Context, opts ...grpc.DialOption) (runtimev1.DaprClient, error) {
	s.client = nil
	s.cc = nil
	return s.Client(ctx, opts...)
}

// Shutdown stops the server and closes the bufconn; the mock cannot be reused after.
func (s *Dapr) Shutdown() {
	s.srv.GracefulStop()
	s.bufnet.Close()
}

// Reset clears the Calls map and every configured handler, for reuse across tests.
func (s *Dapr) Reset() {
	for key := range s.Calls {
		delete(s.Calls, key)
	}

	s.OnGetState = nil
	s.OnGetBulkState = nil
	s.OnSaveState = nil
	s.OnDeleteState = nil
	s.OnExecuteStateTransaction = nil
	s.OnQueryStateAlpha1 = nil
	s.OnTryLockAlpha1 = nil
	s.OnUnlockAlpha1 = nil
	s.OnPublishEvent = nil
	s.OnBulkPublishEventAlpha1 = nil
	s.OnSubscribeTopicEventsAlpha1 = nil
	s.OnEncryptAlpha1 = nil
	s.OnDecryptAlpha1 = nil
	s.OnGetConfiguration = nil
	s.OnSubscribeConfiguration = nil
	s.OnUnsubscribeConfiguration = nil
	s.OnStartWorkflowBeta1 = nil
	s.OnGetWorkflowBeta1 = nil
	s.OnPauseWorkflowBeta1 = nil
	s.OnResumeWorkflowBeta1 = nil
	s.OnTerminateWorkflowBeta1 = nil
	s.OnPurgeWorkflowBeta1 = nil
	s.OnRaiseEventWorkflowBeta1 = nil
	s.OnConverseAlpha1 = nil
	s.OnConverseStreamAlpha2 = nil
	s.OnScheduleJobAlpha1 = nil
	s.OnGetJobAlpha1 = nil
	s.OnDeleteJobAlpha1 = nil
	s.OnGetMetadata = nil
	s.OnSetMetadata = nil
	s.OnShutdown = nil
}

// UseError configures the named unary RPC to always return the given gRPC status
// error; streaming RPCs are configured directly via their On* field instead.
func (s *Dapr) UseError(rpc string, code codes.Code, msg string) error {
	err := status.Error(code, msg)
	switch rpc {
	case GetStateRPC:
		s.OnGetState = func(context.Context, *runtimev1.GetStateRequest) (*runtimev1.GetStateResponse, error) {
			return nil, err
		}
	case SaveStateRPC:
		s.OnSaveState = func(context.Context, *runtimev1.SaveStateRequest) (*runtimev1.SaveStateResponse, error) {
			return nil, err
		}
	case DeleteStateRPC:
		s.OnDeleteState = func(context.Context, *runtimev1.DeleteStateRequest) (*runtimev1.DeleteStateResponse, error) {
			return nil, err
		}
	case TryLockAlpha1RPC:
		s.OnTryLockAlpha1 = func(context.Context, *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error) {
			return nil, err
		}
	case UnlockAlpha1RPC:
		s.OnUnlockAlpha1 = func(context.Context, *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error) {
			return nil, err
		}
	case PublishEventRPC:
		s.OnPublishEvent = func(context.Context, *runtimev1.PublishEventRequest) (*runtimev1.PublishEventResponse, error) {
			return nil, err
		}
	case BulkPublishEventAlpha1RPC:
		s.OnBulkPublishEventAlpha1 = func(context.Context, *runtimev1.BulkPublishEventRequest) (*runtimev1.BulkPublishEventResponse, error) {
			return nil, err
		}
	case ConverseAlpha1RPC:
		s.OnConverseAlpha1 = func(context.Context, *runtimev1.ConversationRequestAlpha1) (*runtimev1.ConversationResponseAlpha1, error) {
			return nil, err
		}
	case GetMetadataRPC:
		s.OnGetMetadata = func(context.Context, *runtimev1.GetMetadataRequest) (*runtimev1.GetMetadataResponse, error) {
			return nil, err
		}
	default:
		return fmt.Errorf("unknown or non-unary RPC %q", rpc)
	}
	return nil
}

func (s *Dapr) GetState(ctx context.Context, in *runtimev1.GetStateRequest) (*runtimev1.GetStateResponse, error) {
	s.Calls[GetStateRPC]++
	if s.OnGetState != nil {
		return s.OnGetState(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) GetBulkState(ctx context.Context, in *runtimev1.GetBulkStateRequest) (*runtimev1.GetBulkStateResponse, error) {
	s.Calls[GetBulkStateRPC]++
	if s.OnGetBulkState != nil {
		return s.OnGetBulkState(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) SaveState(ctx context.Context, in *runtimev1.SaveStateRequest) (*runtimev1.SaveStateResponse, error) {
	s.Calls[SaveStateRPC]++
	if s.OnSaveState != nil {
		return s.OnSaveState(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) DeleteState(ctx context.Context, in *runtimev1.DeleteStateRequest) (*runtimev1.DeleteStateResponse, error) {
	s.Calls[DeleteStateRPC]++
	if s.OnDeleteState != nil {
		return s.OnDeleteState(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) ExecuteStateTransaction(ctx context.Context, in *runtimev1.ExecuteStateTransactionRequest) (*runtimev1.ExecuteStateTransactionResponse, error) {
	s.Calls[ExecuteStateTransactionRPC]++
	if s.OnExecuteStateTransaction != nil {
		return s.OnExecuteStateTransaction(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) QueryStateAlpha1(ctx context.Context, in *runtimev1.QueryStateRequest) (*runtimev1.QueryStateResponse, error) {
	s.Calls[QueryStateAlpha1RPC]++
	if s.OnQueryStateAlpha1 != nil {
		return s.OnQueryStateAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) TryLockAlpha1(ctx context.Context, in *runtimev1.TryLockRequest) (*runtimev1.TryLockResponse, error) {
	s.Calls[TryLockAlpha1RPC]++
	if s.OnTryLockAlpha1 != nil {
		return s.OnTryLockAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) UnlockAlpha1(ctx context.Context, in *runtimev1.UnlockRequest) (*runtimev1.UnlockResponse, error) {
	s.Calls[UnlockAlpha1RPC]++
	if s.OnUnlockAlpha1 != nil {
		return s.OnUnlockAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) PublishEvent(ctx context.Context, in *runtimev1.PublishEventRequest) (*runtimev1.PublishEventResponse, error) {
	s.Calls[PublishEventRPC]++
	if s.OnPublishEvent != nil {
		return s.OnPublishEvent(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) BulkPublishEventAlpha1(ctx context.Context, in *runtimev1.BulkPublishEventRequest) (*runtimev1.BulkPublishEventResponse, error) {
	s.Calls[BulkPublishEventAlpha1RPC]++
	if s.OnBulkPublishEventAlpha1 != nil {
		return s.OnBulkPublishEventAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) SubscribeTopicEventsAlpha1(stream runtimev1.Dapr_SubscribeTopicEventsAlpha1Server) error {
	s.Calls[SubscribeTopicEventsAlpha1RPC]++
	if s.OnSubscribeTopicEventsAlpha1 != nil {
		return s.OnSubscribeTopicEventsAlpha1(stream)
	}
	return ErrUnavailable
}

func (s *Dapr) EncryptAlpha1(stream runtimev1.Dapr_EncryptAlpha1Server) error {
	s.Calls[EncryptAlpha1RPC]++
	if s.OnEncryptAlpha1 != nil {
		return s.OnEncryptAlpha1(stream)
	}
	return ErrUnavailable
}

func (s *Dapr) DecryptAlpha1(stream runtimev1.Dapr_DecryptAlpha1Server) error {
	s.Calls[DecryptAlpha1RPC]++
	if s.OnDecryptAlpha1 != nil {
		return s.OnDecryptAlpha1(stream)
	}
	return ErrUnavailable
}

func (s *Dapr) GetConfiguration(ctx context.Context, in *runtimev1.GetConfigurationRequest) (*runtimev1.GetConfigurationResponse, error) {
	s.Calls[GetConfigurationRPC]++
	if s.OnGetConfiguration != nil {
		return s.OnGetConfiguration(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) SubscribeConfiguration(in *runtimev1.SubscribeConfigurationRequest, stream runtimev1.Dapr_SubscribeConfigurationServer) error {
	s.Calls[SubscribeConfigurationRPC]++
	if s.OnSubscribeConfiguration != nil {
		return s.OnSubscribeConfiguration(in, stream)
	}
	return ErrUnavailable
}

func (s *Dapr) UnsubscribeConfiguration(ctx context.Context, in *runtimev1.UnsubscribeConfigurationRequest) (*runtimev1.UnsubscribeConfigurationResponse, error) {
	s.Calls[UnsubscribeConfigurationRPC]++
	if s.OnUnsubscribeConfiguration != nil {
		return s.OnUnsubscribeConfiguration(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) StartWorkflowBeta1(ctx context.Context, in *runtimev1.StartWorkflowRequest) (*runtimev1.StartWorkflowResponse, error) {
	s.Calls[StartWorkflowBeta1RPC]++
	if s.OnStartWorkflowBeta1 != nil {
		return s.OnStartWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) GetWorkflowBeta1(ctx context.Context, in *runtimev1.GetWorkflowRequest) (*runtimev1.GetWorkflowResponse, error) {
	s.Calls[GetWorkflowBeta1RPC]++
	if s.OnGetWorkflowBeta1 != nil {
		return s.OnGetWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) PauseWorkflowBeta1(ctx context.Context, in *runtimev1.PauseWorkflowRequest) (*runtimev1.Empty, error) {
	s.Calls[PauseWorkflowBeta1RPC]++
	if s.OnPauseWorkflowBeta1 != nil {
		return s.OnPauseWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) ResumeWorkflowBeta1(ctx context.Context, in *runtimev1.ResumeWorkflowRequest) (*runtimev1.Empty, error) {
	s.Calls[ResumeWorkflowBeta1RPC]++
	if s.OnResumeWorkflowBeta1 != nil {
		return s.OnResumeWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) TerminateWorkflowBeta1(ctx context.Context, in *runtimev1.TerminateWorkflowRequest) (*runtimev1.Empty, error) {
	s.Calls[TerminateWorkflowBeta1RPC]++
	if s.OnTerminateWorkflowBeta1 != nil {
		return s.OnTerminateWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) PurgeWorkflowBeta1(ctx context.Context, in *runtimev1.PurgeWorkflowRequest) (*runtimev1.Empty, error) {
	s.Calls[PurgeWorkflowBeta1RPC]++
	if s.OnPurgeWorkflowBeta1 != nil {
		return s.OnPurgeWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) RaiseEventWorkflowBeta1(ctx context.Context, in *runtimev1.RaiseEventWorkflowRequest) (*runtimev1.Empty, error) {
	s.Calls[RaiseEventWorkflowBeta1RPC]++
	if s.OnRaiseEventWorkflowBeta1 != nil {
		return s.OnRaiseEventWorkflowBeta1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) ConverseAlpha1(ctx context.Context, in *runtimev1.ConversationRequestAlpha1) (*runtimev1.ConversationResponseAlpha1, error) {
	s.Calls[ConverseAlpha1RPC]++
	if s.OnConverseAlpha1 != nil {
		return s.OnConverseAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) ConverseStreamAlpha2(in *runtimev1.ConversationRequestAlpha2, stream runtimev1.Dapr_ConverseStreamAlpha2Server) error {
	s.Calls[ConverseStreamAlpha2RPC]++
	if s.OnConverseStreamAlpha2 != nil {
		return s.OnConverseStreamAlpha2(in, stream)
	}
	return ErrUnavailable
}

func (s *Dapr) ScheduleJobAlpha1(ctx context.Context, in *runtimev1.ScheduleJobRequest) (*runtimev1.ScheduleJobResponse, error) {
	s.Calls[ScheduleJobAlpha1RPC]++
	if s.OnScheduleJobAlpha1 != nil {
		return s.OnScheduleJobAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) GetJobAlpha1(ctx context.Context, in *runtimev1.GetJobRequest) (*runtimev1.GetJobResponse, error) {
	s.Calls[GetJobAlpha1RPC]++
	if s.OnGetJobAlpha1 != nil {
		return s.OnGetJobAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) DeleteJobAlpha1(ctx context.Context, in *runtimev1.DeleteJobRequest) (*runtimev1.DeleteJobResponse, error) {
	s.Calls[DeleteJobAlpha1RPC]++
	if s.OnDeleteJobAlpha1 != nil {
		return s.OnDeleteJobAlpha1(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) GetMetadata(ctx context.Context, in *runtimev1.GetMetadataRequest) (*runtimev1.GetMetadataResponse, error) {
	s.Calls[GetMetadataRPC]++
	if s.OnGetMetadata != nil {
		return s.OnGetMetadata(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) SetMetadata(ctx context.Context, in *runtimev1.SetMetadataRequest) (*runtimev1.Empty, error) {
	s.Calls[SetMetadataRPC]++
	if s.OnSetMetadata != nil {
		return s.OnSetMetadata(ctx, in)
	}
	return nil, ErrUnavailable
}

func (s *Dapr) Shutdown(ctx context.Context, in *runtimev1.ShutdownRequest) (*runtimev1.Empty, error) {
	s.Calls[ShutdownRPC]++
	if s.OnShutdown != nil {
		return s.OnShutdown(ctx, in)
	}
	return nil, ErrUnavailable
}
