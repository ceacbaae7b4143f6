package domain

import "time"

type AssetClass string

const (
	AssetClassPublicEquity  AssetClass = "Public Equity"
	AssetClassPrivateEquity AssetClass = "Private Equity"
	AssetClassFixedIncome   AssetClass = "Fixed Income"
	AssetClassRealEstate    AssetClass = "Real Estate"
	AssetClassCash          AssetClass = "Cash"
	AssetClassCommodities   AssetClass = "Commodities & more"
)

type SubClass string

const (
	SubClassEquity      SubClass = "Equity"
	SubClassBond        SubClass = "Bond"
	SubClassCash        SubClass = "Cash"
	SubClassRealEstate  SubClass = "Real Estate"
	SubClassCommodities SubClass = "Commodities"
	SubClassOther       SubClass = "Other"
)

type Currency string

const (
	CurrencyILS Currency = "ILS"
	CurrencyUSD Currency = "USD"
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
	CurrencyCAD Currency = "CAD"
	CurrencyHKD Currency = "HKD"
)

// Asset is a single position in the portfolio. Optional numeric fields are
// pointers so that an unset value round-trips as absent rather than zero.
type Asset struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Class               AssetClass `json:"class"`
	SubClass            SubClass   `json:"sub_class"`
	ISIN                string     `json:"ISIN,omitempty"`
	AccountEntity       string     `json:"account_entity"`
	AccountBank         string     `json:"account_bank"`
	Beneficiary         string     `json:"beneficiary"`
	OriginCurrency      Currency   `json:"origin_currency"`
	Quantity            float64    `json:"quantity"`
	Price               *float64   `json:"price,omitempty"`
	Factor              *float64   `json:"factor,omitempty"`
	MaturityDate        string     `json:"maturity_date,omitempty"`
	YTW                 *float64   `json:"ytw,omitempty"`
	PECompanyValue      *float64   `json:"pe_company_value,omitempty"`
	PEHoldingPercentage *float64   `json:"pe_holding_percentage,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (a Asset) RecordID() string { return a.ID }
