package models

import (
	"github.com/shopspring/decimal"
)

// Holding is a single position in the portfolio. Value is always derived from
// the latest qty/current_price pair; it is never accepted from a client.
type Holding struct {
	ID            string           `json:"id"`
	Symbol        string           `json:"symbol"`
	Name          string           `json:"name"`
	Sector        string           `json:"sector"`
	Qty           decimal.Decimal  `json:"qty"`
	AvgPrice      decimal.Decimal  `json:"avg_price"`
	CurrentPrice  decimal.Decimal  `json:"current_price"`
	Value         decimal.Decimal  `json:"value"`
	RSI           *decimal.Decimal `json:"rsi,omitempty"`
	AllocationPct decimal.Decimal  `json:"allocation_pct"`
	Notes         string           `json:"notes,omitempty"`
	UpdatedAt     string           `json:"updated_at"`
}

// RecomputeValue refreshes the derived value from qty and current price.
func (h *Holding) RecomputeValue() {
	h.Value = h.Qty.Mul(h.CurrentPrice)
}
