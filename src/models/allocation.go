package models

import (
	"github.com/shopspring/decimal"
)

// IdealAllocation is a target percentage per sector. The set is maintained by
// hand in the spreadsheet; this service only reads it.
type IdealAllocation struct {
	Sector    string          `json:"sector"`
	TargetPct decimal.Decimal `json:"target_pct"`
}
