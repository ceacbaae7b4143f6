package domain

import "time"

// SnapshotRate is the per-currency conversion pair frozen inside a snapshot.
// Field names mirror the persisted document layout.
type SnapshotRate struct {
	ToUSD       float64   `json:"to_USD"`
	ToILS       float64   `json:"to_ILS"`
	LastUpdated time.Time `json:"last_updated"`
}

// PortfolioSnapshot captures the full portfolio composition at a point in
// time, including the FX rates in effect so valuations stay reproducible.
type PortfolioSnapshot struct {
	ID                        string                    `json:"id"`
	Name                      string                    `json:"name"`
	Description               string                    `json:"description,omitempty"`
	SnapshotDate              string                    `json:"snapshot_date"`
	Assets                    []Asset                   `json:"assets"`
	FXRates                   map[Currency]SnapshotRate `json:"fx_rates"`
	TotalValueUSD             *float64                  `json:"total_value_usd,omitempty"`
	PrivateEquityValueUSD     *float64                  `json:"private_equity_value_usd,omitempty"`
	LiquidFixedIncomeValueUSD *float64                  `json:"liquid_fixed_income_value_usd,omitempty"`
	RealEstateValueUSD        *float64                  `json:"real_estate_value_usd,omitempty"`
	CreatedAt                 time.Time                 `json:"created_at"`
	UpdatedAt                 time.Time                 `json:"updated_at"`
}

func (s PortfolioSnapshot) RecordID() string { return s.ID }
