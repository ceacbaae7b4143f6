package domain

import "time"

// AssetLiquidationSettings records the planned liquidation year for an asset,
// matched by asset name rather than asset id.
type AssetLiquidationSettings struct {
	ID              string    `json:"id"`
	AssetName       string    `json:"asset_name"`
	LiquidationYear string    `json:"liquidation_year"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s AssetLiquidationSettings) RecordID() string { return s.ID }
