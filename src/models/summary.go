package models

import (
	"github.com/shopspring/decimal"
)

// Summary holds the derived portfolio KPIs returned by GET /v1/summary.
type Summary struct {
	TotalInvested      decimal.Decimal            `json:"total_invested"`
	CurrentNetWorth    decimal.Decimal            `json:"current_net_worth"`
	UnrealizedGainLoss decimal.Decimal            `json:"unrealized_gain_loss"`
	UnrealizedPct      decimal.Decimal            `json:"unrealized_pct"`
	SectorTotals       map[string]decimal.Decimal `json:"sector_totals"`
	AllocationVariance map[string]decimal.Decimal `json:"allocation_variance"`
	YTDGrowth          decimal.Decimal            `json:"ytd_growth"`
	MonthlyTrend       []MonthlyGrowthEntry       `json:"monthly_trend"`
}
