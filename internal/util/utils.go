package util

import (
	"strings"
	"time"

	"rotki-settings/internal/common"
	"rotki-settings/pkg/models"
)

// NormalizeExchange turns user input like " Kraken " into an exchange tag.
func NormalizeExchange(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// HistoricalStart parses HistoricalDataStart as a UTC date.
func HistoricalStart(s models.Settings) (time.Time, error) {
	return time.Parse(common.HistoricalDataStartLayout, s.HistoricalDataStart)
}

func BalanceSaveInterval(s models.Settings) time.Duration {
	return time.Duration(s.BalanceSaveFrequencyHours) * time.Hour
}
