// Package defaults holds the built-in setting values and the list of exchange
// integrations the application knows about. Everything here is returned by
// value; overrides belong in a separate layer (see internal/config).
package defaults

import (
	"rotki-settings/internal/common"
	"rotki-settings/pkg/models"
)

var optionNames = [...]string{
	"dateDisplayFormat",
	"thousandSeparator",
	"decimalSeparator",
	"currencyLocation",
	"floatingPrecision",
	"rpcEndpoint",
	"balanceSaveFrequencyHours",
	"anonymizedLogs",
	"historicalDataStart",
	"anonymousUsageAnalytics",
	"krakenDefaultAccountType",
}

var exchanges = [...]models.Exchange{
	common.ExchangePoloniex,
	common.ExchangeKraken,
	common.ExchangeBittrex,
	common.ExchangeBitmex,
	common.ExchangeBinance,
	common.ExchangeCoinbase,
	common.ExchangeCoinbasePro,
	common.ExchangeGemini,
}

// Settings returns the default settings record.
func Settings() models.Settings {
	return models.Settings{
		DateDisplayFormat:         common.DefaultDateDisplayFormat,
		ThousandSeparator:         common.DefaultThousandSeparator,
		DecimalSeparator:          common.DefaultDecimalSeparator,
		CurrencyLocation:          common.DefaultCurrencyLocation,
		FloatingPrecision:         common.DefaultFloatingPrecision,
		RPCEndpoint:               common.DefaultRPCEndpoint,
		BalanceSaveFrequencyHours: common.DefaultBalanceSaveFrequencyHours,
		AnonymizedLogs:            common.DefaultAnonymizedLogs,
		HistoricalDataStart:       common.DefaultHistoricalDataStart,
		AnonymousUsageAnalytics:   common.DefaultAnonymousUsageAnalytics,
		KrakenDefaultAccountType:  common.DefaultKrakenAccountType,
	}
}

// OptionNames lists the recognized option names in display order.
func OptionNames() []string {
	names := make([]string, len(optionNames))
	copy(names, optionNames[:])
	return names
}

// Value looks up a default by option name.
func Value(name string) (interface{}, bool) {
	v, ok := Settings().Map()[name]
	return v, ok
}

// Exchanges returns the supported exchange tags in their fixed order.
func Exchanges() []models.Exchange {
	out := make([]models.Exchange, len(exchanges))
	copy(out, exchanges[:])
	return out
}

// IsSupportedExchange reports whether tag is an exact match for a supported
// exchange. Callers normalize user input first.
func IsSupportedExchange(tag string) bool {
	for _, e := range exchanges {
		if string(e) == tag {
			return true
		}
	}
	return false
}
