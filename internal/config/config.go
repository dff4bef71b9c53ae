package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
	"rotki-settings/internal/common"
	"rotki-settings/internal/defaults"
	"rotki-settings/pkg/models"
)

var ErrInvalidConfig = errors.New("invalid config")

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// Overrides is the user layer on top of the defaults. A nil field keeps the
// default value.
type Overrides struct {
	DateDisplayFormat         *string                  `yaml:"dateDisplayFormat"`
	ThousandSeparator         *string                  `yaml:"thousandSeparator"`
	DecimalSeparator          *string                  `yaml:"decimalSeparator"`
	CurrencyLocation          *models.CurrencyLocation `yaml:"currencyLocation"`
	FloatingPrecision         *int                     `yaml:"floatingPrecision"`
	RPCEndpoint               *string                  `yaml:"rpcEndpoint"`
	BalanceSaveFrequencyHours *int                     `yaml:"balanceSaveFrequencyHours"`
	AnonymizedLogs            *bool                    `yaml:"anonymizedLogs"`
	HistoricalDataStart       *string                  `yaml:"historicalDataStart"`
	AnonymousUsageAnalytics   *bool                    `yaml:"anonymousUsageAnalytics"`
	KrakenDefaultAccountType  *string                  `yaml:"krakenDefaultAccountType"`
}

type Config struct {
	Server    ServerConfig `yaml:"server"`
	LogLevel  string       `yaml:"log_level"`
	Overrides Overrides    `yaml:"settings"`
	Exchanges []string     `yaml:"exchanges"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{
		LogLevel: common.DefaultLogLevel,
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.KnownFields(true)
	if err := d.Decode(config); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Settings returns the defaults with every configured override applied.
func (c *Config) Settings() models.Settings {
	s := defaults.Settings()
	o := c.Overrides

	if o.DateDisplayFormat != nil {
		s.DateDisplayFormat = *o.DateDisplayFormat
	}
	if o.ThousandSeparator != nil {
		s.ThousandSeparator = *o.ThousandSeparator
	}
	if o.DecimalSeparator != nil {
		s.DecimalSeparator = *o.DecimalSeparator
	}
	if o.CurrencyLocation != nil {
		s.CurrencyLocation = *o.CurrencyLocation
	}
	if o.FloatingPrecision != nil {
		s.FloatingPrecision = *o.FloatingPrecision
	}
	if o.RPCEndpoint != nil {
		s.RPCEndpoint = *o.RPCEndpoint
	}
	if o.BalanceSaveFrequencyHours != nil {
		s.BalanceSaveFrequencyHours = *o.BalanceSaveFrequencyHours
	}
	if o.AnonymizedLogs != nil {
		s.AnonymizedLogs = *o.AnonymizedLogs
	}
	if o.HistoricalDataStart != nil {
		s.HistoricalDataStart = *o.HistoricalDataStart
	}
	if o.AnonymousUsageAnalytics != nil {
		s.AnonymousUsageAnalytics = *o.AnonymousUsageAnalytics
	}
	if o.KrakenDefaultAccountType != nil {
		s.KrakenDefaultAccountType = *o.KrakenDefaultAccountType
	}
	return s
}

// EnabledExchanges returns the configured exchanges in the supported order,
// or every supported exchange when none are configured.
func (c *Config) EnabledExchanges() []models.Exchange {
	all := defaults.Exchanges()
	if len(c.Exchanges) == 0 {
		return all
	}

	want := make(map[string]bool, len(c.Exchanges))
	for _, e := range c.Exchanges {
		want[e] = true
	}
	enabled := make([]models.Exchange, 0, len(want))
	for _, e := range all {
		if want[string(e)] {
			enabled = append(enabled, e)
		}
	}
	return enabled
}

func (c *Config) GetListenAddr() string {
	host := c.Server.Host
	if host == "" {
		host = common.DefaultListenHost
	}
	port := c.Server.Port
	if port <= 0 {
		port = common.DefaultListenPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	for _, e := range c.Exchanges {
		if !defaults.IsSupportedExchange(e) {
			return fmt.Errorf("%w: unsupported exchange %q", ErrInvalidConfig, e)
		}
	}

	return ValidateSettings(c.Settings())
}

// ValidateSettings checks a resolved settings record.
func ValidateSettings(s models.Settings) error {
	if !s.CurrencyLocation.Valid() {
		return fmt.Errorf("%w: currencyLocation %q, use before or after", ErrInvalidConfig, s.CurrencyLocation)
	}
	if s.FloatingPrecision < 0 || s.FloatingPrecision > common.MaxFloatingPrecision {
		return fmt.Errorf("%w: floatingPrecision %d out of range [0, %d]", ErrInvalidConfig, s.FloatingPrecision, common.MaxFloatingPrecision)
	}
	if s.BalanceSaveFrequencyHours <= 0 {
		return fmt.Errorf("%w: balanceSaveFrequencyHours must be positive, got %d", ErrInvalidConfig, s.BalanceSaveFrequencyHours)
	}
	if err := validSeparator("thousandSeparator", s.ThousandSeparator); err != nil {
		return err
	}
	if err := validSeparator("decimalSeparator", s.DecimalSeparator); err != nil {
		return err
	}
	if s.ThousandSeparator == s.DecimalSeparator {
		return fmt.Errorf("%w: thousand and decimal separators are both %q", ErrInvalidConfig, s.DecimalSeparator)
	}
	if s.DateDisplayFormat == "" {
		return fmt.Errorf("%w: dateDisplayFormat is empty", ErrInvalidConfig)
	}
	if _, err := time.Parse(common.HistoricalDataStartLayout, s.HistoricalDataStart); err != nil {
		return fmt.Errorf("%w: historicalDataStart %q is not DD/MM/YYYY", ErrInvalidConfig, s.HistoricalDataStart)
	}

	u, err := url.Parse(s.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("%w: rpcEndpoint: %v", ErrInvalidConfig, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: rpcEndpoint scheme %q", ErrInvalidConfig, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: rpcEndpoint %q has no host", ErrInvalidConfig, s.RPCEndpoint)
	}
	return nil
}

func validSeparator(name, sep string) error {
	if utf8.RuneCountInString(sep) != 1 {
		return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, name, sep)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	if r == '#' || r == '+' || (r >= '0' && r <= '9') {
		return fmt.Errorf("%w: %s %q is reserved", ErrInvalidConfig, name, sep)
	}
	return nil
}
