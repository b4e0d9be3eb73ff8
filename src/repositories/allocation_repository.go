package repositories

import (
	"context"

	"portfolio-api/src/models"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils"
)

const (
	idealColSector = iota
	idealColTargetPct
)

// IdealAllocationRepository is read-only: the target set is maintained by
// hand in the spreadsheet.
type IdealAllocationRepository interface {
	GetAll(ctx context.Context) ([]models.IdealAllocation, error)
}

type idealAllocationRepo struct {
	store stores.RowStore
}

func NewIdealAllocationRepository(store stores.RowStore) IdealAllocationRepository {
	return &idealAllocationRepo{store: store}
}

func (r *idealAllocationRepo) GetAll(ctx context.Context) ([]models.IdealAllocation, error) {
	rows, err := r.store.Get(ctx, IdealRange)
	if err != nil {
		return nil, err
	}

	ideals := make([]models.IdealAllocation, 0)
	for _, row := range skipHeader(rows) {
		sector := utils.CellAt(row, idealColSector)
		if sector == "" {
			continue
		}
		ideals = append(ideals, models.IdealAllocation{
			Sector:    sector,
			TargetPct: utils.ParseCellDecimal(utils.CellAt(row, idealColTargetPct)),
		})
	}
	return ideals, nil
}
