package service

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"rotki-settings/internal/config"
	"rotki-settings/internal/proto"
	"rotki-settings/internal/util"
)

func startServer(t *testing.T, cfg *config.Config) proto.SettingsServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	proto.RegisterSettingsServiceServer(srv, NewService(cfg, util.NewLogger(false)))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return proto.NewSettingsServiceClient(conn)
}

func TestGetDefaults(t *testing.T) {
	client := startServer(t, &config.Config{LogLevel: "info"})

	resp, err := client.GetDefaults(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetDefaults: %v", err)
	}

	fields := resp.AsMap()
	if len(fields) != 11 {
		t.Errorf("got %d options, want 11", len(fields))
	}
	if fields["rpcEndpoint"] != "http://localhost:8545" {
		t.Errorf("rpcEndpoint = %v", fields["rpcEndpoint"])
	}
	if fields["krakenDefaultAccountType"] != "starter" {
		t.Errorf("krakenDefaultAccountType = %v", fields["krakenDefaultAccountType"])
	}
	if fields["floatingPrecision"] != float64(2) {
		t.Errorf("floatingPrecision = %v", fields["floatingPrecision"])
	}
	if fields["anonymousUsageAnalytics"] != true {
		t.Errorf("anonymousUsageAnalytics = %v", fields["anonymousUsageAnalytics"])
	}
}

func TestGetSettingsAppliesOverrides(t *testing.T) {
	endpoint := "https://eth.example.org"
	cfg := &config.Config{LogLevel: "info"}
	cfg.Overrides.RPCEndpoint = &endpoint
	client := startServer(t, cfg)

	resp, err := client.GetSettings(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got := resp.AsMap()["rpcEndpoint"]; got != endpoint {
		t.Errorf("rpcEndpoint = %v, want %s", got, endpoint)
	}

	defaults, err := client.GetDefaults(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetDefaults: %v", err)
	}
	if got := defaults.AsMap()["rpcEndpoint"]; got != "http://localhost:8545" {
		t.Errorf("defaults rpcEndpoint = %v", got)
	}
}

func TestListExchanges(t *testing.T) {
	client := startServer(t, &config.Config{LogLevel: "info", Exchanges: []string{"gemini", "poloniex"}})

	resp, err := client.ListExchanges(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("ListExchanges: %v", err)
	}
	got := resp.AsSlice()
	if len(got) != 2 || got[0] != "poloniex" || got[1] != "gemini" {
		t.Errorf("ListExchanges() = %v, want [poloniex gemini]", got)
	}
}

func TestIsSupportedExchange(t *testing.T) {
	client := startServer(t, &config.Config{LogLevel: "info"})

	tests := []struct {
		tag  string
		want bool
	}{
		{"kraken", true},
		{" Binance ", true},
		{"dogecoin", false},
	}
	for _, tt := range tests {
		resp, err := client.IsSupportedExchange(context.Background(), wrapperspb.String(tt.tag))
		if err != nil {
			t.Fatalf("IsSupportedExchange(%q): %v", tt.tag, err)
		}
		if resp.GetValue() != tt.want {
			t.Errorf("IsSupportedExchange(%q) = %v, want %v", tt.tag, resp.GetValue(), tt.want)
		}
	}

	_, err := client.IsSupportedExchange(context.Background(), wrapperspb.String("  "))
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("empty tag: code = %v, want InvalidArgument", status.Code(err))
	}
}
