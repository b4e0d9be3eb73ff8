package repositories

import (
	"context"

	"portfolio-api/src/models"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils"
)

const (
	growthColMonth = iota
	growthColAccount
	growthColPNL
)

// MonthlyGrowthRepository is append-only; entries carry no identity.
type MonthlyGrowthRepository interface {
	GetAll(ctx context.Context) ([]models.MonthlyGrowthEntry, error)
	Append(ctx context.Context, entry *models.MonthlyGrowthEntry) error
}

type monthlyGrowthRepo struct {
	store stores.RowStore
}

func NewMonthlyGrowthRepository(store stores.RowStore) MonthlyGrowthRepository {
	return &monthlyGrowthRepo{store: store}
}

func (r *monthlyGrowthRepo) GetAll(ctx context.Context) ([]models.MonthlyGrowthEntry, error) {
	rows, err := r.store.Get(ctx, GrowthRange)
	if err != nil {
		return nil, err
	}

	entries := make([]models.MonthlyGrowthEntry, 0)
	for _, row := range skipHeader(rows) {
		month := utils.CellAt(row, growthColMonth)
		if month == "" {
			continue
		}
		entries = append(entries, models.MonthlyGrowthEntry{
			Month:   month,
			Account: utils.CellAt(row, growthColAccount),
			PNL:     utils.ParseCellDecimal(utils.CellAt(row, growthColPNL)),
		})
	}
	return entries, nil
}

func (r *monthlyGrowthRepo) Append(ctx context.Context, entry *models.MonthlyGrowthEntry) error {
	row := []string{entry.Month, entry.Account, entry.PNL.String()}
	return r.store.Append(ctx, GrowthRange, [][]string{row})
}
