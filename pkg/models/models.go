package models

// CurrencyLocation is where a currency symbol goes relative to an amount.
type CurrencyLocation string

const (
	CurrencyBefore CurrencyLocation = "before"
	CurrencyAfter  CurrencyLocation = "after"
)

func (c CurrencyLocation) Valid() bool {
	return c == CurrencyBefore || c == CurrencyAfter
}

func (c CurrencyLocation) String() string {
	return string(c)
}

// Exchange is the tag of an exchange integration, e.g. "kraken".
type Exchange string

func (e Exchange) String() string {
	return string(e)
}

// Settings is the full set of user-facing options. Field tags carry the
// option names used by the frontend and the config file.
type Settings struct {
	DateDisplayFormat         string           `yaml:"dateDisplayFormat" json:"dateDisplayFormat"`
	ThousandSeparator         string           `yaml:"thousandSeparator" json:"thousandSeparator"`
	DecimalSeparator          string           `yaml:"decimalSeparator" json:"decimalSeparator"`
	CurrencyLocation          CurrencyLocation `yaml:"currencyLocation" json:"currencyLocation"`
	FloatingPrecision         int              `yaml:"floatingPrecision" json:"floatingPrecision"`
	RPCEndpoint               string           `yaml:"rpcEndpoint" json:"rpcEndpoint"`
	BalanceSaveFrequencyHours int              `yaml:"balanceSaveFrequencyHours" json:"balanceSaveFrequencyHours"`
	AnonymizedLogs            bool             `yaml:"anonymizedLogs" json:"anonymizedLogs"`
	HistoricalDataStart       string           `yaml:"historicalDataStart" json:"historicalDataStart"`
	AnonymousUsageAnalytics   bool             `yaml:"anonymousUsageAnalytics" json:"anonymousUsageAnalytics"`
	KrakenDefaultAccountType  string           `yaml:"krakenDefaultAccountType" json:"krakenDefaultAccountType"`
}

// Map returns the settings keyed by option name.
func (s Settings) Map() map[string]interface{} {
	return map[string]interface{}{
		"dateDisplayFormat":         s.DateDisplayFormat,
		"thousandSeparator":         s.ThousandSeparator,
		"decimalSeparator":          s.DecimalSeparator,
		"currencyLocation":          s.CurrencyLocation.String(),
		"floatingPrecision":         s.FloatingPrecision,
		"rpcEndpoint":               s.RPCEndpoint,
		"balanceSaveFrequencyHours": s.BalanceSaveFrequencyHours,
		"anonymizedLogs":            s.AnonymizedLogs,
		"historicalDataStart":       s.HistoricalDataStart,
		"anonymousUsageAnalytics":   s.AnonymousUsageAnalytics,
		"krakenDefaultAccountType":  s.KrakenDefaultAccountType,
	}
}
