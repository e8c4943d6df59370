package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// PlannerServiceName is the fully qualified gRPC service name
const PlannerServiceName = "logistics.api.v1alpha1.PlannerService"

// Full method names
const (
	PlannerService_PlanInsert_FullMethodName     = "/" + PlannerServiceName + "/PlanInsert"
	PlannerService_CommitInsert_FullMethodName   = "/" + PlannerServiceName + "/CommitInsert"
	PlannerService_CountInventory_FullMethodName = "/" + PlannerServiceName + "/CountInventory"
	PlannerService_SnapshotCounts_FullMethodName = "/" + PlannerServiceName + "/SnapshotCounts"
	PlannerService_GetCounts_FullMethodName      = "/" + PlannerServiceName + "/GetCounts"
	PlannerService_ReserveStock_FullMethodName   = "/" + PlannerServiceName + "/ReserveStock"
	PlannerService_ReleaseStock_FullMethodName   = "/" + PlannerServiceName + "/ReleaseStock"
	PlannerService_ExtractStock_FullMethodName   = "/" + PlannerServiceName + "/ExtractStock"
	PlannerService_LearnFilter_FullMethodName    = "/" + PlannerServiceName + "/LearnFilter"
)

// PlannerServiceClient is the client API for the planner service. Requests
// and responses are google.protobuf.Struct documents.
type PlannerServiceClient interface {
	PlanInsert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CommitInsert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CountInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SnapshotCounts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCounts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReserveStock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReleaseStock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ExtractStock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	LearnFilter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type plannerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlannerServiceClient creates a client on an existing connection
func NewPlannerServiceClient(cc grpc.ClientConnInterface) PlannerServiceClient {
	return &plannerServiceClient{cc}
}

func (c *plannerServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plannerServiceClient) PlanInsert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_PlanInsert_FullMethodName, in, opts)
}

func (c *plannerServiceClient) CommitInsert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_CommitInsert_FullMethodName, in, opts)
}

func (c *plannerServiceClient) CountInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_CountInventory_FullMethodName, in, opts)
}

func (c *plannerServiceClient) SnapshotCounts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_SnapshotCounts_FullMethodName, in, opts)
}

func (c *plannerServiceClient) GetCounts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_GetCounts_FullMethodName, in, opts)
}

func (c *plannerServiceClient) ReserveStock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_ReserveStock_FullMethodName, in, opts)
}

func (c *plannerServiceClient) ReleaseStock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_ReleaseStock_FullMethodName, in, opts)
}

func (c *plannerServiceClient) ExtractStock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_ExtractStock_FullMethodName, in, opts)
}

func (c *plannerServiceClient) LearnFilter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerService_LearnFilter_FullMethodName, in, opts)
}

// PlannerServiceServer is the server API for the planner service
type PlannerServiceServer interface {
	PlanInsert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CommitInsert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CountInventory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SnapshotCounts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCounts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReserveStock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReleaseStock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExtractStock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LearnFilter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedPlannerServiceServer can be embedded for forward compatibility
type UnimplementedPlannerServiceServer struct{}

func (UnimplementedPlannerServiceServer) PlanInsert(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method PlanInsert not implemented")
}
func (UnimplementedPlannerServiceServer) CommitInsert(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitInsert not implemented")
}
func (UnimplementedPlannerServiceServer) CountInventory(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CountInventory not implemented")
}
func (UnimplementedPlannerServiceServer) SnapshotCounts(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SnapshotCounts not implemented")
}
func (UnimplementedPlannerServiceServer) GetCounts(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCounts not implemented")
}
func (UnimplementedPlannerServiceServer) ReserveStock(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ReserveStock not implemented")
}
func (UnimplementedPlannerServiceServer) ReleaseStock(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ReleaseStock not implemented")
}
func (UnimplementedPlannerServiceServer) ExtractStock(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractStock not implemented")
}
func (UnimplementedPlannerServiceServer) LearnFilter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method LearnFilter not implemented")
}

// RegisterPlannerServiceServer registers the planner on a gRPC server
func RegisterPlannerServiceServer(s grpc.ServiceRegistrar, srv PlannerServiceServer) {
	s.RegisterService(&PlannerService_ServiceDesc, srv)
}

type plannerMethod func(PlannerServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call plannerMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PlannerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PlannerServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PlannerService_ServiceDesc is the grpc.ServiceDesc for the planner service
var PlannerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PlannerServiceName,
	HandlerType: (*PlannerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PlanInsert", Handler: unaryHandler(PlannerService_PlanInsert_FullMethodName, PlannerServiceServer.PlanInsert)},
		{MethodName: "CommitInsert", Handler: unaryHandler(PlannerService_CommitInsert_FullMethodName, PlannerServiceServer.CommitInsert)},
		{MethodName: "CountInventory", Handler: unaryHandler(PlannerService_CountInventory_FullMethodName, PlannerServiceServer.CountInventory)},
		{MethodName: "SnapshotCounts", Handler: unaryHandler(PlannerService_SnapshotCounts_FullMethodName, PlannerServiceServer.SnapshotCounts)},
		{MethodName: "GetCounts", Handler: unaryHandler(PlannerService_GetCounts_FullMethodName, PlannerServiceServer.GetCounts)},
		{MethodName: "ReserveStock", Handler: unaryHandler(PlannerService_ReserveStock_FullMethodName, PlannerServiceServer.ReserveStock)},
		{MethodName: "ReleaseStock", Handler: unaryHandler(PlannerService_ReleaseStock_FullMethodName, PlannerServiceServer.ReleaseStock)},
		{MethodName: "ExtractStock", Handler: unaryHandler(PlannerService_ExtractStock_FullMethodName, PlannerServiceServer.ExtractStock)},
		{MethodName: "LearnFilter", Handler: unaryHandler(PlannerService_LearnFilter_FullMethodName, PlannerServiceServer.LearnFilter)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "logistics/api/v1alpha1/planner.proto",
}
