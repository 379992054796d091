/*
Package v1 defines the Dapr runtime gRPC service (dapr.proto.runtime.v1.Dapr) client
and its request/response messages, hand-authored in the same shape protoc-gen-go and
protoc-gen-go-grpc produce, mirroring api/v1beta1/ensign_grpc.pb.go in the teacher
repo. See DESIGN.md for why message types stop short of full descriptor-backed
google.golang.org/protobuf reflection.
*/
package v1

// message is embedded by every wire-shaped struct in this package for the
// Reset/String/ProtoMessage method set protoc-gen-go attaches to generated code.
type message struct{}

func (message) Reset()         {}
func (message) String() string { return "" }
func (message) ProtoMessage()  {}
