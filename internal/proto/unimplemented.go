package proto

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type UnimplementedSettingsServiceServer struct{}

func (UnimplementedSettingsServiceServer) GetDefaults(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDefaults not implemented")
}

func (UnimplementedSettingsServiceServer) GetSettings(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSettings not implemented")
}

func (UnimplementedSettingsServiceServer) ListExchanges(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExchanges not implemented")
}

func (UnimplementedSettingsServiceServer) IsSupportedExchange(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsSupportedExchange not implemented")
}

func (UnimplementedSettingsServiceServer) mustEmbedUnimplementedSettingsServiceServer() {}
