package models

import (
	"github.com/shopspring/decimal"
)

// MonthlyGrowthEntry is an append-only P&L record. Entries have no identity
// and are never updated or deleted individually; several accounts may report
// the same month.
type MonthlyGrowthEntry struct {
	Month   string          `json:"month"`
	Account string          `json:"account"`
	PNL     decimal.Decimal `json:"pnl"`
}
