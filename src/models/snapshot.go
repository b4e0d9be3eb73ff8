package models

import (
	"github.com/shopspring/decimal"
)

// Snapshot is an immutable point-in-time record of actual vs. target
// allocation for one sector. A snapshot run emits one record per ideal
// sector, all sharing the same date and total value.
type Snapshot struct {
	Date       string          `json:"date"`
	Sector     string          `json:"sector"`
	ActualPct  decimal.Decimal `json:"actual_pct"`
	TargetPct  decimal.Decimal `json:"target_pct"`
	Variance   decimal.Decimal `json:"variance"`
	TotalValue decimal.Decimal `json:"total_value"`
}
