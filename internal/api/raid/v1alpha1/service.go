package raidv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/ba-raid-api/internal/pkg/jsoncodec"
)

// ServiceName is the fully qualified service name
const ServiceName = "baraid.api.v1alpha1.RaidService"

// Full method names
const (
	RaidServiceListPartiesFullMethodName         = "/" + ServiceName + "/ListParties"
	RaidServiceGetFilterOptionsFullMethodName    = "/" + ServiceName + "/GetFilterOptions"
	RaidServiceGetStatisticsFullMethodName       = "/" + ServiceName + "/GetStatistics"
	RaidServiceGetFilterStateFullMethodName      = "/" + ServiceName + "/GetFilterState"
	RaidServiceSaveFilterStateFullMethodName     = "/" + ServiceName + "/SaveFilterState"
	RaidServiceSubmitVideoAnalysisFullMethodName = "/" + ServiceName + "/SubmitVideoAnalysis"
	RaidServiceListVideoAnalysesFullMethodName   = "/" + ServiceName + "/ListVideoAnalyses"
	RaidServiceDeleteVideoAnalysisFullMethodName = "/" + ServiceName + "/DeleteVideoAnalysis"
)

// RaidServiceServer is the server API for RaidService
type RaidServiceServer interface {
	ListParties(context.Context, *ListPartiesRequest) (*ListPartiesResponse, error)
	GetFilterOptions(context.Context, *GetFilterOptionsRequest) (*GetFilterOptionsResponse, error)
	GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error)
	GetFilterState(context.Context, *GetFilterStateRequest) (*GetFilterStateResponse, error)
	SaveFilterState(context.Context, *SaveFilterStateRequest) (*SaveFilterStateResponse, error)
	SubmitVideoAnalysis(context.Context, *SubmitVideoAnalysisRequest) (*SubmitVideoAnalysisResponse, error)
	ListVideoAnalyses(context.Context, *ListVideoAnalysesRequest) (*ListVideoAnalysesResponse, error)
	DeleteVideoAnalysis(context.Context, *DeleteVideoAnalysisRequest) (*DeleteVideoAnalysisResponse, error)
}

// UnimplementedRaidServiceServer can be embedded to satisfy RaidServiceServer
// while only some methods are implemented
type UnimplementedRaidServiceServer struct{}

func (UnimplementedRaidServiceServer) ListParties(context.Context, *ListPartiesRequest) (*ListPartiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListParties not implemented")
}

func (UnimplementedRaidServiceServer) GetFilterOptions(
	context.Context, *GetFilterOptionsRequest,
) (*GetFilterOptionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFilterOptions not implemented")
}

func (UnimplementedRaidServiceServer) GetStatistics(
	context.Context, *GetStatisticsRequest,
) (*GetStatisticsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatistics not implemented")
}

func (UnimplementedRaidServiceServer) GetFilterState(
	context.Context, *GetFilterStateRequest,
) (*GetFilterStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFilterState not implemented")
}

func (UnimplementedRaidServiceServer) SaveFilterState(
	context.Context, *SaveFilterStateRequest,
) (*SaveFilterStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveFilterState not implemented")
}

func (UnimplementedRaidServiceServer) SubmitVideoAnalysis(
	context.Context, *SubmitVideoAnalysisRequest,
) (*SubmitVideoAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitVideoAnalysis not implemented")
}

func (UnimplementedRaidServiceServer) ListVideoAnalyses(
	context.Context, *ListVideoAnalysesRequest,
) (*ListVideoAnalysesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVideoAnalyses not implemented")
}

func (UnimplementedRaidServiceServer) DeleteVideoAnalysis(
	context.Context, *DeleteVideoAnalysisRequest,
) (*DeleteVideoAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteVideoAnalysis not implemented")
}

// RegisterRaidServiceServer registers srv on s
func RegisterRaidServiceServer(s grpc.ServiceRegistrar, srv RaidServiceServer) {
	s.RegisterService(&RaidServiceServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(RaidServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RaidServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RaidServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RaidServiceServiceDesc is the grpc.ServiceDesc for RaidService
var RaidServiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RaidServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListParties",
			Handler:    unaryHandler(RaidServiceListPartiesFullMethodName, RaidServiceServer.ListParties),
		},
		{
			MethodName: "GetFilterOptions",
			Handler:    unaryHandler(RaidServiceGetFilterOptionsFullMethodName, RaidServiceServer.GetFilterOptions),
		},
		{
			MethodName: "GetStatistics",
			Handler:    unaryHandler(RaidServiceGetStatisticsFullMethodName, RaidServiceServer.GetStatistics),
		},
		{
			MethodName: "GetFilterState",
			Handler:    unaryHandler(RaidServiceGetFilterStateFullMethodName, RaidServiceServer.GetFilterState),
		},
		{
			MethodName: "SaveFilterState",
			Handler:    unaryHandler(RaidServiceSaveFilterStateFullMethodName, RaidServiceServer.SaveFilterState),
		},
		{
			MethodName: "SubmitVideoAnalysis",
			Handler:    unaryHandler(RaidServiceSubmitVideoAnalysisFullMethodName, RaidServiceServer.SubmitVideoAnalysis),
		},
		{
			MethodName: "ListVideoAnalyses",
			Handler:    unaryHandler(RaidServiceListVideoAnalysesFullMethodName, RaidServiceServer.ListVideoAnalyses),
		},
		{
			MethodName: "DeleteVideoAnalysis",
			Handler:    unaryHandler(RaidServiceDeleteVideoAnalysisFullMethodName, RaidServiceServer.DeleteVideoAnalysis),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "baraid/api/v1alpha1/raid.json",
}

// RaidServiceClient is the client API for RaidService
type RaidServiceClient interface {
	ListParties(ctx context.Context, in *ListPartiesRequest, opts ...grpc.CallOption) (*ListPartiesResponse, error)
	GetFilterOptions(
		ctx context.Context, in *GetFilterOptionsRequest, opts ...grpc.CallOption,
	) (*GetFilterOptionsResponse, error)
	GetStatistics(ctx context.Context, in *GetStatisticsRequest, opts ...grpc.CallOption) (*GetStatisticsResponse, error)
	GetFilterState(
		ctx context.Context, in *GetFilterStateRequest, opts ...grpc.CallOption,
	) (*GetFilterStateResponse, error)
	SaveFilterState(
		ctx context.Context, in *SaveFilterStateRequest, opts ...grpc.CallOption,
	) (*SaveFilterStateResponse, error)
	SubmitVideoAnalysis(
		ctx context.Context, in *SubmitVideoAnalysisRequest, opts ...grpc.CallOption,
	) (*SubmitVideoAnalysisResponse, error)
	ListVideoAnalyses(
		ctx context.Context, in *ListVideoAnalysesRequest, opts ...grpc.CallOption,
	) (*ListVideoAnalysesResponse, error)
	DeleteVideoAnalysis(
		ctx context.Context, in *DeleteVideoAnalysisRequest, opts ...grpc.CallOption,
	) (*DeleteVideoAnalysisResponse, error)
}

type raidServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRaidServiceClient returns a client that speaks the JSON content-subtype
func NewRaidServiceClient(cc grpc.ClientConnInterface) RaidServiceClient {
	return &raidServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *raidServiceClient) ListParties(
	ctx context.Context, in *ListPartiesRequest, opts ...grpc.CallOption,
) (*ListPartiesResponse, error) {
	return invoke[ListPartiesResponse](ctx, c.cc, RaidServiceListPartiesFullMethodName, in, opts)
}

func (c *raidServiceClient) GetFilterOptions(
	ctx context.Context, in *GetFilterOptionsRequest, opts ...grpc.CallOption,
) (*GetFilterOptionsResponse, error) {
	return invoke[GetFilterOptionsResponse](ctx, c.cc, RaidServiceGetFilterOptionsFullMethodName, in, opts)
}

func (c *raidServiceClient) GetStatistics(
	ctx context.Context, in *GetStatisticsRequest, opts ...grpc.CallOption,
) (*GetStatisticsResponse, error) {
	return invoke[GetStatisticsResponse](ctx, c.cc, RaidServiceGetStatisticsFullMethodName, in, opts)
}

func (c *raidServiceClient) GetFilterState(
	ctx context.Context, in *GetFilterStateRequest, opts ...grpc.CallOption,
) (*GetFilterStateResponse, error) {
	return invoke[GetFilterStateResponse](ctx, c.cc, RaidServiceGetFilterStateFullMethodName, in, opts)
}

func (c *raidServiceClient) SaveFilterState(
	ctx context.Context, in *SaveFilterStateRequest, opts ...grpc.CallOption,
) (*SaveFilterStateResponse, error) {
	return invoke[SaveFilterStateResponse](ctx, c.cc, RaidServiceSaveFilterStateFullMethodName, in, opts)
}

func (c *raidServiceClient) SubmitVideoAnalysis(
	ctx context.Context, in *SubmitVideoAnalysisRequest, opts ...grpc.CallOption,
) (*SubmitVideoAnalysisResponse, error) {
	return invoke[SubmitVideoAnalysisResponse](ctx, c.cc, RaidServiceSubmitVideoAnalysisFullMethodName, in, opts)
}

func (c *raidServiceClient) ListVideoAnalyses(
	ctx context.Context, in *ListVideoAnalysesRequest, opts ...grpc.CallOption,
) (*ListVideoAnalysesResponse, error) {
	return invoke[ListVideoAnalysesResponse](ctx, c.cc, RaidServiceListVideoAnalysesFullMethodName, in, opts)
}

func (c *raidServiceClient) DeleteVideoAnalysis(
	ctx context.Context, in *DeleteVideoAnalysisRequest, opts ...grpc.CallOption,
) (*DeleteVideoAnalysisResponse, error) {
	return invoke[DeleteVideoAnalysisResponse](ctx, c.cc, RaidServiceDeleteVideoAnalysisFullMethodName, in, opts)
}
