package controllers

import (
	"context"

	"portfolio-api/src/models"
	"portfolio-api/src/schemas"
	"portfolio-api/src/utils"

	"github.com/google/uuid"
)

func (c *Controller) GetAllHoldings(ctx context.Context) ([]models.Holding, error) {
	return c.Holdings.GetAll(ctx)
}

// CreateHolding assigns a fresh identifier and persists the new position.
// Identity is pseudo-random without a collision check against existing rows;
// acceptable at this write volume.
func (c *Controller) CreateHolding(ctx context.Context, req *schemas.CreateHoldingRequest) (*models.Holding, error) {
	holding := &models.Holding{
		ID:            uuid.NewString(),
		Symbol:        req.Symbol,
		Name:          req.Name,
		Sector:        req.Sector,
		Qty:           req.Qty,
		AvgPrice:      req.AvgPrice,
		CurrentPrice:  req.CurrentPrice,
		RSI:           req.RSI,
		AllocationPct: req.AllocationPct,
		Notes:         req.Notes,
	}
	if err := c.Holdings.Create(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

func (c *Controller) UpdateHolding(ctx context.Context, id string, req *schemas.UpdateHoldingRequest) (*models.Holding, error) {
	if err := validateHoldingID(id); err != nil {
		return nil, err
	}
	return c.Holdings.Update(ctx, id, req)
}

func (c *Controller) DeleteHolding(ctx context.Context, id string) error {
	if err := validateHoldingID(id); err != nil {
		return err
	}
	return c.Holdings.Delete(ctx, id)
}

func validateHoldingID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest("id must be a well-formed identifier")
	}
	return nil
}
