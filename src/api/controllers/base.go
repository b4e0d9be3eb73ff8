package controllers

import (
	"context"
	"time"

	"portfolio-api/src/models"
	"portfolio-api/src/repositories"
	"portfolio-api/src/schemas"
	"portfolio-api/src/services"
	"portfolio-api/src/stores"
)

type IController interface {
	GetAllHoldings(ctx context.Context) ([]models.Holding, error)
	CreateHolding(ctx context.Context, req *schemas.CreateHoldingRequest) (*models.Holding, error)
	UpdateHolding(ctx context.Context, id string, req *schemas.UpdateHoldingRequest) (*models.Holding, error)
	DeleteHolding(ctx context.Context, id string) error
	GetIdealAllocations(ctx context.Context) ([]models.IdealAllocation, error)
	GetMonthlyGrowth(ctx context.Context) ([]models.MonthlyGrowthEntry, error)
	CreateMonthlyGrowth(ctx context.Context, req *schemas.CreateGrowthRequest) (*models.MonthlyGrowthEntry, error)
	RunSnapshot(ctx context.Context) ([]models.Snapshot, error)
	GetSnapshots(ctx context.Context) ([]models.Snapshot, error)
	GetSummary(ctx context.Context) (*models.Summary, error)
}

type Controller struct {
	Holdings   repositories.HoldingRepository
	Ideals     repositories.IdealAllocationRepository
	Growth     repositories.MonthlyGrowthRepository
	Snapshots  repositories.SnapshotRepository
	Aggregator *services.AggregationService
	Now        func() time.Time
}

func NewController(store stores.RowStore) *Controller {
	return &Controller{
		Holdings:   repositories.NewHoldingRepository(store),
		Ideals:     repositories.NewIdealAllocationRepository(store),
		Growth:     repositories.NewMonthlyGrowthRepository(store),
		Snapshots:  repositories.NewSnapshotRepository(store),
		Aggregator: services.NewAggregationService(),
		Now:        time.Now,
	}
}
