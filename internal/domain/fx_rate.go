package domain

import "time"

// FXRateData is one conversion-rate entry. Unlike the other collections it is
// keyed by currency code, not by an opaque id; the repository enforces
// uniqueness per currency on write.
type FXRateData struct {
	Currency         Currency  `json:"currency"`
	ToUSDRate        float64   `json:"to_usd_rate"`
	ToILSRate        float64   `json:"to_ils_rate"`
	LastUpdated      time.Time `json:"last_updated"`
	Source           string    `json:"source"`
	IsManualOverride bool      `json:"is_manual_override"`
}
