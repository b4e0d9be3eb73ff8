// Package services holds the derived-value computations: portfolio summary
// KPIs and snapshot batches. Everything here is a pure function of its
// inputs; persistence stays with the callers.
package services

import (
	"sort"
	"strings"
	"time"

	"portfolio-api/src/models"
	"portfolio-api/src/utils"

	"github.com/shopspring/decimal"
)

const trendMonths = 12

var oneHundred = decimal.NewFromInt(100)

type AggregationService struct{}

func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// ComputeSummary derives the portfolio KPIs from the current record sets.
// now fixes the year used for YTD filtering.
func (s *AggregationService) ComputeSummary(holdings []models.Holding, ideals []models.IdealAllocation, growth []models.MonthlyGrowthEntry, now time.Time) *models.Summary {
	totalInvested := decimal.Zero
	netWorth := decimal.Zero
	for _, h := range holdings {
		totalInvested = totalInvested.Add(h.Qty.Mul(h.AvgPrice))
		netWorth = netWorth.Add(h.Value)
	}

	gainLoss := netWorth.Sub(totalInvested)
	// A freshly seeded sheet has nothing invested; report 0% rather than
	// failing the whole summary.
	unrealizedPct := decimal.Zero
	if totalInvested.Sign() > 0 {
		unrealizedPct = gainLoss.Div(totalInvested).Mul(oneHundred)
	}

	sectorTotals := sumBySector(holdings)

	// Keyed by the ideal set only: sectors held but without a target are
	// left out of the variance map.
	variance := make(map[string]decimal.Decimal, len(ideals))
	for _, ideal := range ideals {
		actualPct := percentageOf(sectorTotals[ideal.Sector], netWorth)
		variance[ideal.Sector] = actualPct.Sub(ideal.TargetPct)
	}

	year := now.Format(utils.YearLayout)
	ytd := decimal.Zero
	for _, entry := range growth {
		if strings.HasPrefix(entry.Month, year) {
			ytd = ytd.Add(entry.PNL)
		}
	}

	return &models.Summary{
		TotalInvested:      totalInvested,
		CurrentNetWorth:    netWorth,
		UnrealizedGainLoss: gainLoss,
		UnrealizedPct:      unrealizedPct,
		SectorTotals:       sectorTotals,
		AllocationVariance: variance,
		YTDGrowth:          ytd,
		MonthlyTrend:       monthlyTrend(growth),
	}
}

// BuildSnapshots emits one snapshot per ideal sector, in the order the ideal
// set is stored, all sharing the run date and total portfolio value.
func (s *AggregationService) BuildSnapshots(holdings []models.Holding, ideals []models.IdealAllocation, now time.Time) []models.Snapshot {
	totalValue := decimal.Zero
	for _, h := range holdings {
		totalValue = totalValue.Add(h.Value)
	}
	sectorTotals := sumBySector(holdings)
	date := now.Format(utils.ShortDashDateLayout)

	snapshots := make([]models.Snapshot, 0, len(ideals))
	for _, ideal := range ideals {
		actualPct := percentageOf(sectorTotals[ideal.Sector], totalValue)
		snapshots = append(snapshots, models.Snapshot{
			Date:       date,
			Sector:     ideal.Sector,
			ActualPct:  actualPct,
			TargetPct:  ideal.TargetPct,
			Variance:   actualPct.Sub(ideal.TargetPct),
			TotalValue: totalValue,
		})
	}
	return snapshots
}

func sumBySector(holdings []models.Holding) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, h := range holdings {
		totals[h.Sector] = totals[h.Sector].Add(h.Value)
	}
	return totals
}

func percentageOf(part, total decimal.Decimal) decimal.Decimal {
	if total.Sign() == 0 {
		return decimal.Zero
	}
	return part.Div(total).Mul(oneHundred)
}

// monthlyTrend returns the latest 12 months ascending. It sorts a copy:
// callers hold the shared growth slice and must not see it reordered.
func monthlyTrend(growth []models.MonthlyGrowthEntry) []models.MonthlyGrowthEntry {
	sorted := make([]models.MonthlyGrowthEntry, len(growth))
	copy(sorted, growth)
	// Lexicographic compare is chronological for YYYY-MM strings.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Month > sorted[j].Month
	})
	if len(sorted) > trendMonths {
		sorted = sorted[:trendMonths]
	}
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}
