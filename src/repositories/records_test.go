package repositories_test

import (
	"context"
	"testing"

	"portfolio-api/src/models"
	"portfolio-api/src/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdealAllocationRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := repositories.NewIdealAllocationRepository(store)

	require.NoError(t, store.Append(ctx, repositories.IdealRange, [][]string{
		{"tech", "60"},
		{"bonds", "40"},
		{"", "10"}, // blank sector rows are skipped
	}))

	ideals, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, ideals, 2)
	assert.Equal(t, "tech", ideals[0].Sector)
	assert.True(t, ideals[0].TargetPct.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "bonds", ideals[1].Sector)
}

func TestMonthlyGrowthRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := repositories.NewMonthlyGrowthRepository(store)

	require.NoError(t, repo.Append(ctx, &models.MonthlyGrowthEntry{
		Month:   "2025-03",
		Account: "broker",
		PNL:     decimal.NewFromInt(-120),
	}))
	require.NoError(t, repo.Append(ctx, &models.MonthlyGrowthEntry{
		Month:   "2025-04",
		Account: "ira",
		PNL:     decimal.NewFromFloat(90.5),
	}))

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-03", entries[0].Month)
	assert.True(t, entries[0].PNL.Equal(decimal.NewFromInt(-120)))
	assert.Equal(t, "ira", entries[1].Account)
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := repositories.NewSnapshotRepository(store)

	batch := []models.Snapshot{
		{Date: "2025-08-25", Sector: "tech", ActualPct: decimal.NewFromFloat(66.67), TargetPct: decimal.NewFromInt(60), Variance: decimal.NewFromFloat(6.67), TotalValue: decimal.NewFromInt(900)},
		{Date: "2025-08-25", Sector: "bonds", ActualPct: decimal.NewFromFloat(33.33), TargetPct: decimal.NewFromInt(40), Variance: decimal.NewFromFloat(-6.67), TotalValue: decimal.NewFromInt(900)},
	}
	require.NoError(t, repo.AppendBatch(ctx, batch))

	snapshots, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "tech", snapshots[0].Sector)
	assert.True(t, snapshots[0].TotalValue.Equal(decimal.NewFromInt(900)))
	assert.True(t, snapshots[1].Variance.Equal(decimal.NewFromFloat(-6.67)))
}
