package controllers

import (
	"context"
	"sort"

	"portfolio-api/src/models"
	"portfolio-api/src/schemas"
)

// GetMonthlyGrowth lists every P&L entry ascending by month.
func (c *Controller) GetMonthlyGrowth(ctx context.Context) ([]models.MonthlyGrowthEntry, error) {
	entries, err := c.Growth.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Month < entries[j].Month
	})
	return entries, nil
}

func (c *Controller) CreateMonthlyGrowth(ctx context.Context, req *schemas.CreateGrowthRequest) (*models.MonthlyGrowthEntry, error) {
	entry := &models.MonthlyGrowthEntry{
		Month:   req.Month,
		Account: req.Account,
		PNL:     req.PNL,
	}
	if err := c.Growth.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
