package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"rotki-settings/internal/common"
	"rotki-settings/internal/config"
	"rotki-settings/internal/proto"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	os.Exit(execute(os.Args[1:]))
}

// execute runs the client and returns the process exit code. Deferred
// cleanup runs before main calls os.Exit.
func execute(args []string) int {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	addr := fs.String("addr", (&config.Config{}).GetListenAddr(), "Settings server address")
	check := fs.String("check", "", "Exchange tag to check against the supported list")
	timeout := fs.Duration("timeout", 5*time.Second, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	conn, err := grpc.NewClient(
		*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(common.MaxGRPCMessageSize)),
	)
	if err != nil {
		log.Error().
			Err(err).
			Str("error_code", common.ErrCodeGRPCConnectionFailed.String()).
			Str("error_message", common.ErrMsgGRPCConnectionFailed.String()).
			Str("address", *addr).
			Msg("gRPC connect failed")
		return 1
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error().
				Err(err).
				Str("error_code", common.ErrCodeGRPCConnectionCloseFailed.String()).
				Str("error_message", common.ErrMsgGRPCConnectionCloseFailed.String()).
				Msg("Failed to close gRPC connection")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := proto.NewSettingsServiceClient(conn)
	if err := run(ctx, client, *check); err != nil {
		log.Error().
			Err(err).
			Str("error_code", common.ErrCodeGRPCRequestFailed.String()).
			Str("error_message", common.ErrMsgGRPCRequestFailed.String()).
			Str("address", *addr).
			Msg("Request failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, client proto.SettingsServiceClient, check string) error {
	if check != "" {
		resp, err := client.IsSupportedExchange(ctx, wrapperspb.String(check))
		if err != nil {
			return fmt.Errorf("check %q: %w", check, err)
		}
		fmt.Printf("%s supported: %t\n", check, resp.GetValue())
		return nil
	}

	defaults, err := client.GetDefaults(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("get defaults: %w", err)
	}
	settings, err := client.GetSettings(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	exchanges, err := client.ListExchanges(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("list exchanges: %w", err)
	}

	for _, section := range []struct {
		title string
		msg   protobuf.Message
	}{
		{"defaults", defaults},
		{"settings", settings},
		{"exchanges", exchanges},
	} {
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(section.msg)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", section.title, err)
		}
		fmt.Printf("%s:\n%s\n", section.title, out)
	}
	return nil
}
