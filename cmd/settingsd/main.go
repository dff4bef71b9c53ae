package main

import (
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"rotki-settings/internal/common"
	"rotki-settings/internal/config"
	"rotki-settings/internal/proto"
	"rotki-settings/internal/service"
	"rotki-settings/internal/util"
)

func main() {
	configPath := flag.String("config", common.DefaultConfigPath, "Path to config file")
	flag.Parse()

	// Configure logger
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("error_code", common.ErrCodeConfigLoadFailed.String()).
			Str("error_message", common.ErrMsgConfigLoadFailed.String()).
			Msg("Failed to load config")
	}

	if !util.SetLevel(cfg.LogLevel) {
		log.Fatal().
			Str("error_code", common.ErrCodeInvalidLogLevel.String()).
			Str("error_message", common.ErrMsgInvalidLogLevel.String()).
			Str("log_level", cfg.LogLevel).
			Msg("Invalid log level in config")
	}

	settings := cfg.Settings()
	logger := util.NewLogger(settings.AnonymizedLogs)
	logger.Debug("Resolved settings",
		"anonymized_logs", logger.Anonymized(),
		"rpc_endpoint", settings.RPCEndpoint,
		"currency_location", settings.CurrencyLocation.String(),
		"floating_precision", settings.FloatingPrecision,
		"balance_save_interval", util.BalanceSaveInterval(settings).String(),
		"usage_analytics", settings.AnonymousUsageAnalytics,
		"exchanges", cfg.EnabledExchanges(),
	)

	s := service.NewService(cfg, logger)

	serverAddr := cfg.GetListenAddr()
	lis, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Error(err, common.ErrCodeGRPCServeFailed, common.ErrMsgGRPCServeFailed, "Failed to listen", "address", serverAddr)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(grpc.MaxRecvMsgSize(common.MaxGRPCMessageSize))
	proto.RegisterSettingsServiceServer(grpcServer, s)

	go func() {
		logger.Info("Starting gRPC server", "address", serverAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error(err, common.ErrCodeGRPCServeFailed, common.ErrMsgGRPCServeFailed, "gRPC serve failed")
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down server...")
	grpcServer.GracefulStop()
	logger.Info("Server stopped gracefully")
}
