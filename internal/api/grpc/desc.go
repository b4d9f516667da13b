package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName              = "devscore.Profiles"
	analyzeProfileFullMethod = "/" + serviceName + "/AnalyzeProfile"
	updatePointsFullMethod   = "/" + serviceName + "/UpdatePoints"
)

// ProfilesServer is the server API for devscore.Profiles service.
// Requests and replies are google.protobuf.Struct messages with the same fields as http api json.
type ProfilesServer interface {
	AnalyzeProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdatePoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterProfilesServer registers ProfilesServer implementation in grpc server.
func RegisterProfilesServer(s grpc.ServiceRegistrar, srv ProfilesServer) {
	s.RegisterService(&profilesServiceDesc, srv)
}

var profilesServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ProfilesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeProfile",
			Handler:    analyzeProfileHandler,
		},
		{
			MethodName: "UpdatePoints",
			Handler:    updatePointsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "devscore.proto",
}

func analyzeProfileHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServer).AnalyzeProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: analyzeProfileFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServer).AnalyzeProfile(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func updatePointsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServer).UpdatePoints(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: updatePointsFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServer).UpdatePoints(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ProfilesClient is the client API for devscore.Profiles service.
type ProfilesClient struct {
	cc grpc.ClientConnInterface
}

// NewProfilesClient creates new ProfilesClient instance.
func NewProfilesClient(cc grpc.ClientConnInterface) *ProfilesClient {
	return &ProfilesClient{cc: cc}
}

// AnalyzeProfile calls AnalyzeProfile method.
func (c *ProfilesClient) AnalyzeProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, analyzeProfileFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePoints calls UpdatePoints method.
func (c *ProfilesClient) UpdatePoints(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, updatePointsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
