package defaults

import (
	"reflect"
	"testing"

	"rotki-settings/pkg/models"
)

func TestSettingsLiterals(t *testing.T) {
	tests := []struct {
		name string
		want interface{}
	}{
		{"dateDisplayFormat", "%d/%m/%Y %H:%M:%S %Z"},
		{"thousandSeparator", ","},
		{"decimalSeparator", "."},
		{"currencyLocation", "after"},
		{"floatingPrecision", 2},
		{"rpcEndpoint", "http://localhost:8545"},
		{"balanceSaveFrequencyHours", 24},
		{"anonymizedLogs", false},
		{"historicalDataStart", "01/08/2015"},
		{"anonymousUsageAnalytics", true},
		{"krakenDefaultAccountType", "starter"},
	}

	if len(tests) != len(OptionNames()) {
		t.Fatalf("expected %d options, got %d", len(tests), len(OptionNames()))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.name)
			if !ok {
				t.Fatalf("option %q not recognized", tt.name)
			}
			if got != tt.want {
				t.Errorf("%s = %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestValueUnknownOption(t *testing.T) {
	if _, ok := Value("colorScheme"); ok {
		t.Error("unknown option reported as recognized")
	}
}

func TestOptionNamesMatchMap(t *testing.T) {
	m := Settings().Map()
	for _, name := range OptionNames() {
		if _, ok := m[name]; !ok {
			t.Errorf("option %q missing from settings map", name)
		}
	}
	if len(m) != len(OptionNames()) {
		t.Errorf("map has %d keys, option list has %d", len(m), len(OptionNames()))
	}
}

func TestSettingsInvariants(t *testing.T) {
	s := Settings()
	if s.FloatingPrecision < 0 {
		t.Errorf("floating precision %d is negative", s.FloatingPrecision)
	}
	if s.BalanceSaveFrequencyHours <= 0 {
		t.Errorf("balance save frequency %d is not positive", s.BalanceSaveFrequencyHours)
	}
	if !s.CurrencyLocation.Valid() {
		t.Errorf("currency location %q is not before/after", s.CurrencyLocation)
	}
}

func TestSettingsIsACopy(t *testing.T) {
	first := Settings()
	first.RPCEndpoint = "http://example.invalid:1"
	first.FloatingPrecision = 8

	second := Settings()
	if second.RPCEndpoint != "http://localhost:8545" {
		t.Errorf("defaults mutated through a returned copy: %q", second.RPCEndpoint)
	}
	if !reflect.DeepEqual(Settings(), second) {
		t.Error("repeated reads are not deep-equal")
	}
}

func TestExchanges(t *testing.T) {
	want := []models.Exchange{
		"poloniex", "kraken", "bittrex", "bitmex",
		"binance", "coinbase", "coinbasepro", "gemini",
	}
	got := Exchanges()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Exchanges() = %v, want %v", got, want)
	}

	seen := make(map[models.Exchange]bool)
	for _, e := range got {
		if seen[e] {
			t.Errorf("duplicate exchange %q", e)
		}
		seen[e] = true
	}

	got[0] = "dogecoin"
	if Exchanges()[0] != "poloniex" {
		t.Error("exchange list mutated through a returned slice")
	}
}

func TestIsSupportedExchange(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"kraken", true},
		{"coinbasepro", true},
		{"gemini", true},
		{"dogecoin", false},
		{"Kraken", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExchange(tt.tag); got != tt.want {
			t.Errorf("IsSupportedExchange(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
