package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	TelemetryService_GetAllMetrics_FullMethodName      = "/telemetry.v1.TelemetryService/GetAllMetrics"
	TelemetryService_GetBusinessMetrics_FullMethodName = "/telemetry.v1.TelemetryService/GetBusinessMetrics"
	TelemetryService_GetCounter_FullMethodName         = "/telemetry.v1.TelemetryService/GetCounter"
	TelemetryService_GetGauge_FullMethodName           = "/telemetry.v1.TelemetryService/GetGauge"
	TelemetryService_GetHistogramStats_FullMethodName  = "/telemetry.v1.TelemetryService/GetHistogramStats"
	TelemetryService_GetRate_FullMethodName            = "/telemetry.v1.TelemetryService/GetRate"
)

type TelemetryServiceClient interface {
	GetAllMetrics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetBusinessMetrics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCounter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error)
	GetGauge(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error)
	GetHistogramStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetRate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error)
}

type telemetryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTelemetryServiceClient(cc grpc.ClientConnInterface) TelemetryServiceClient {
	return &telemetryServiceClient{cc}
}

func (c *telemetryServiceClient) GetAllMetrics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TelemetryService_GetAllMetrics_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) GetBusinessMetrics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TelemetryService_GetBusinessMetrics_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) GetCounter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error) {
	out := new(wrapperspb.DoubleValue)
	if err := c.cc.Invoke(ctx, TelemetryService_GetCounter_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) GetGauge(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error) {
	out := new(wrapperspb.DoubleValue)
	if err := c.cc.Invoke(ctx, TelemetryService_GetGauge_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) GetHistogramStats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TelemetryService_GetHistogramStats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) GetRate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.DoubleValue, error) {
	out := new(wrapperspb.DoubleValue)
	if err := c.cc.Invoke(ctx, TelemetryService_GetRate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// TelemetryServiceServer is the server API for TelemetryService.
// Implementations must embed UnimplementedTelemetryServiceServer.
type TelemetryServiceServer interface {
	GetAllMetrics(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetBusinessMetrics(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetCounter(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error)
	GetGauge(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error)
	GetHistogramStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRate(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error)
	mustEmbedUnimplementedTelemetryServiceServer()
}

type UnimplementedTelemetryServiceServer struct{}

func (UnimplementedTelemetryServiceServer) GetAllMetrics(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAllMetrics not implemented")
}
func (UnimplementedTelemetryServiceServer) GetBusinessMetrics(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBusinessMetrics not implemented")
}
func (UnimplementedTelemetryServiceServer) GetCounter(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCounter not implemented")
}
func (UnimplementedTelemetryServiceServer) GetGauge(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGauge not implemented")
}
func (UnimplementedTelemetryServiceServer) GetHistogramStats(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetHistogramStats not implemented")
}
func (UnimplementedTelemetryServiceServer) GetRate(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRate not implemented")
}
func (UnimplementedTelemetryServiceServer) mustEmbedUnimplementedTelemetryServiceServer() {}

func RegisterTelemetryServiceServer(s grpc.ServiceRegistrar, srv TelemetryServiceServer) {
	s.RegisterService(&TelemetryService_ServiceDesc, srv)
}

func _TelemetryService_GetAllMetrics_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).GetAllMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TelemetryService_GetAllMetrics_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TelemetryServiceServer).GetAllMetrics(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryService_GetBusinessMetrics_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).GetBusinessMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TelemetryService_GetBusinessMetrics_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TelemetryServiceServer).GetBusinessMetrics(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryService_GetCounter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).GetCounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TelemetryService_GetCounter_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TelemetryServiceServer).GetCounter(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryService_GetGauge_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).GetGauge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TelemetryService_GetGauge_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TelemetryServiceServer).GetGauge(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryService_GetHistogramStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).GetHistogramStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TelemetryService_GetHistogramStats_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TelemetryServiceServer).GetHistogramStats(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryService_GetRate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryServiceServer).GetRate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TelemetryService_GetRate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TelemetryServiceServer).GetRate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var TelemetryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "telemetry.v1.TelemetryService",
	HandlerType: (*TelemetryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAllMetrics", Handler: _TelemetryService_GetAllMetrics_Handler},
		{MethodName: "GetBusinessMetrics", Handler: _TelemetryService_GetBusinessMetrics_Handler},
		{MethodName: "GetCounter", Handler: _TelemetryService_GetCounter_Handler},
		{MethodName: "GetGauge", Handler: _TelemetryService_GetGauge_Handler},
		{MethodName: "GetHistogramStats", Handler: _TelemetryService_GetHistogramStats_Handler},
		{MethodName: "GetRate", Handler: _TelemetryService_GetRate_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "telemetry.proto",
}
