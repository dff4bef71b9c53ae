package util

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"rotki-settings/pkg/models"
)

// Formatter renders timestamps and amounts the way the settings ask for.
// Settings must have passed config.ValidateSettings.
type Formatter struct {
	settings     models.Settings
	numberFormat string
}

func NewFormatter(s models.Settings) *Formatter {
	// humanize reads separators and precision from a pattern like "#,###.##"
	numberFormat := "#" + s.ThousandSeparator + "###" + s.DecimalSeparator + strings.Repeat("#", s.FloatingPrecision)
	return &Formatter{
		settings:     s,
		numberFormat: numberFormat,
	}
}

func (f *Formatter) FormatTimestamp(t time.Time) string {
	return strftime.Format(f.settings.DateDisplayFormat, t)
}

// FormatAmount rounds the float64 value to FloatingPrecision digits, so
// values without an exact binary form (2.675) may round down.
func (f *Formatter) FormatAmount(v float64) string {
	var out string
	if math.Abs(v) >= math.MaxInt64 {
		// FormatFloat goes through int64 for the whole part.
		out = f.formatLarge(v)
	} else {
		out = humanize.FormatFloat(f.numberFormat, v)
	}

	if strings.HasPrefix(out, "-") && !strings.ContainsAny(out, "123456789") {
		return out[1:]
	}
	return out
}

func (f *Formatter) formatLarge(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole, frac, _ := strings.Cut(strconv.FormatFloat(v, 'f', f.settings.FloatingPrecision, 64), ".")
	n, _ := new(big.Int).SetString(whole, 10)
	out := sign + strings.ReplaceAll(humanize.BigComma(n), ",", f.settings.ThousandSeparator)
	if frac != "" {
		out += f.settings.DecimalSeparator + frac
	}
	return out
}

// FormatMoney places symbol before or after the amount per CurrencyLocation.
func (f *Formatter) FormatMoney(v float64, symbol string) string {
	amount := f.FormatAmount(v)
	if f.settings.CurrencyLocation == models.CurrencyBefore {
		return symbol + " " + amount
	}
	return amount + " " + symbol
}
