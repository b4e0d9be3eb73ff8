package controllers

import (
	"context"
	"sort"

	"portfolio-api/src/models"
)

func (c *Controller) GetIdealAllocations(ctx context.Context) ([]models.IdealAllocation, error) {
	return c.Ideals.GetAll(ctx)
}

// RunSnapshot reads the current holdings and targets, derives one snapshot
// per ideal sector and appends the whole batch in a single write.
func (c *Controller) RunSnapshot(ctx context.Context) ([]models.Snapshot, error) {
	holdings, err := c.Holdings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	ideals, err := c.Ideals.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	batch := c.Aggregator.BuildSnapshots(holdings, ideals, c.Now())
	if err := c.Snapshots.AppendBatch(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetSnapshots lists persisted snapshots, newest date first.
func (c *Controller) GetSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	snapshots, err := c.Snapshots.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Date > snapshots[j].Date
	})
	return snapshots, nil
}

func (c *Controller) GetSummary(ctx context.Context) (*models.Summary, error) {
	holdings, err := c.Holdings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	ideals, err := c.Ideals.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	growth, err := c.Growth.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.Aggregator.ComputeSummary(holdings, ideals, growth, c.Now()), nil
}
