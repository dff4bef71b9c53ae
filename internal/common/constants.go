package common

const (
	DefaultConfigPath = "./configs/config.yml"
	DefaultListenHost = "127.0.0.1"
	DefaultListenPort = 4243
	DefaultLogLevel   = "info"

	DefaultDateDisplayFormat         = "%d/%m/%Y %H:%M:%S %Z"
	DefaultThousandSeparator         = ","
	DefaultDecimalSeparator          = "."
	DefaultCurrencyLocation          = "after"
	DefaultFloatingPrecision         = 2
	DefaultRPCEndpoint               = "http://localhost:8545"
	DefaultBalanceSaveFrequencyHours = 24
	DefaultAnonymizedLogs            = false
	DefaultHistoricalDataStart       = "01/08/2015"
	DefaultAnonymousUsageAnalytics   = true
	DefaultKrakenAccountType         = "starter"

	// Layout of HistoricalDataStart (DD/MM/YYYY).
	HistoricalDataStartLayout = "02/01/2006"
	MaxFloatingPrecision      = 9

	ExchangePoloniex    = "poloniex"
	ExchangeKraken      = "kraken"
	ExchangeBittrex     = "bittrex"
	ExchangeBitmex      = "bitmex"
	ExchangeBinance     = "binance"
	ExchangeCoinbase    = "coinbase"
	ExchangeCoinbasePro = "coinbasepro"
	ExchangeGemini      = "gemini"

	MaxGRPCMessageSize = 1024 * 1024 // 1MB
)
