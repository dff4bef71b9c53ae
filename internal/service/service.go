package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"rotki-settings/internal/common"
	"rotki-settings/internal/config"
	"rotki-settings/internal/defaults"
	"rotki-settings/internal/proto"
	"rotki-settings/internal/util"
	"rotki-settings/pkg/models"
)

// Service answers read-only queries about the defaults and the settings
// resolved from the config file.
type Service struct {
	proto.UnimplementedSettingsServiceServer
	settings  models.Settings
	exchanges []models.Exchange
	logger    *util.Logger
}

func NewService(cfg *config.Config, logger *util.Logger) *Service {
	return &Service{
		settings:  cfg.Settings(),
		exchanges: cfg.EnabledExchanges(),
		logger:    logger,
	}
}

func (s *Service) GetDefaults(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.encode(defaults.Settings())
}

func (s *Service) GetSettings(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.encode(s.settings)
}

func (s *Service) ListExchanges(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(s.exchanges))
	for _, e := range s.exchanges {
		values = append(values, structpb.NewStringValue(e.String()))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *Service) IsSupportedExchange(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	tag := util.NormalizeExchange(req.GetValue())
	if tag == "" {
		return nil, status.Error(codes.InvalidArgument, "exchange tag is required")
	}

	ok := defaults.IsSupportedExchange(tag)
	if !ok {
		s.logger.Warn(common.ErrCodeUnsupportedExchange, common.ErrMsgUnsupportedExchange,
			"Rejected exchange tag", "exchange", tag)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Service) encode(settings models.Settings) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(settings.Map())
	if err != nil {
		s.logger.Error(err, common.ErrCodeSettingsEncodeFailed, common.ErrMsgSettingsEncodeFailed, "Encode settings failed")
		return nil, status.Errorf(codes.Internal, "encode settings: %v", err)
	}
	return st, nil
}
