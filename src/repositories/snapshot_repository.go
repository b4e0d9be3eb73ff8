package repositories

import (
	"context"

	"portfolio-api/src/models"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils"
)

const (
	snapshotColDate = iota
	snapshotColSector
	snapshotColActualPct
	snapshotColTargetPct
	snapshotColVariance
	snapshotColTotalValue
)

// SnapshotRepository persists immutable snapshot batches. A batch is written
// in one append call: either every sector row lands or the caller sees the
// underlying failure.
type SnapshotRepository interface {
	GetAll(ctx context.Context) ([]models.Snapshot, error)
	AppendBatch(ctx context.Context, snapshots []models.Snapshot) error
}

type snapshotRepo struct {
	store stores.RowStore
}

func NewSnapshotRepository(store stores.RowStore) SnapshotRepository {
	return &snapshotRepo{store: store}
}

func (r *snapshotRepo) GetAll(ctx context.Context) ([]models.Snapshot, error) {
	rows, err := r.store.Get(ctx, SnapshotsRange)
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.Snapshot, 0)
	for _, row := range skipHeader(rows) {
		date := utils.CellAt(row, snapshotColDate)
		if date == "" {
			continue
		}
		snapshots = append(snapshots, models.Snapshot{
			Date:       date,
			Sector:     utils.CellAt(row, snapshotColSector),
			ActualPct:  utils.ParseCellDecimal(utils.CellAt(row, snapshotColActualPct)),
			TargetPct:  utils.ParseCellDecimal(utils.CellAt(row, snapshotColTargetPct)),
			Variance:   utils.ParseCellDecimal(utils.CellAt(row, snapshotColVariance)),
			TotalValue: utils.ParseCellDecimal(utils.CellAt(row, snapshotColTotalValue)),
		})
	}
	return snapshots, nil
}

func (r *snapshotRepo) AppendBatch(ctx context.Context, snapshots []models.Snapshot) error {
	rows := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []string{
			s.Date,
			s.Sector,
			s.ActualPct.String(),
			s.TargetPct.String(),
			s.Variance.String(),
			s.TotalValue.String(),
		})
	}
	return r.store.Append(ctx, SnapshotsRange, rows)
}
