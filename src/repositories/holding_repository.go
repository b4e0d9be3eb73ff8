package repositories

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/src/models"
	"portfolio-api/src/schemas"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils"
)

// Column order of the holdings range.
const (
	holdingColID = iota
	holdingColSymbol
	holdingColName
	holdingColSector
	holdingColQty
	holdingColAvgPrice
	holdingColCurrentPrice
	holdingColValue
	holdingColRSI
	holdingColAllocationPct
	holdingColNotes
	holdingColUpdatedAt
)

type HoldingRepository interface {
	GetAll(ctx context.Context) ([]models.Holding, error)
	Create(ctx context.Context, h *models.Holding) error
	Update(ctx context.Context, id string, patch *schemas.UpdateHoldingRequest) (*models.Holding, error)
	Delete(ctx context.Context, id string) error
}

type holdingRepo struct {
	store stores.RowStore
	index *RowIndex
	now   func() time.Time
}

func NewHoldingRepository(store stores.RowStore) HoldingRepository {
	return &holdingRepo{
		store: store,
		index: NewRowIndex(),
		now:   time.Now,
	}
}

// GetAll reads the full holdings range and rebuilds the row index as a side
// effect; it is the single rebuild path for update/delete misses.
func (r *holdingRepo) GetAll(ctx context.Context) ([]models.Holding, error) {
	rows, err := r.store.Get(ctx, HoldingsRange)
	if err != nil {
		return nil, err
	}

	holdings := make([]models.Holding, 0)
	positions := make(map[string]int)
	for i, row := range skipHeader(rows) {
		id := utils.CellAt(row, holdingColID)
		if id == "" {
			continue
		}
		holdings = append(holdings, holdingFromRow(row))
		// +2: positions are 1-indexed and the header occupies row 1.
		positions[id] = i + 2
	}
	r.index.Replace(positions)
	return holdings, nil
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding) error {
	h.RecomputeValue()
	h.UpdatedAt = r.now().UTC().Format(time.RFC3339)
	return r.store.Append(ctx, HoldingsRange, [][]string{holdingToRow(*h)})
}

// Update applies a partial patch. A patch with no recognized fields is a
// no-op that still bumps updated_at.
func (r *holdingRepo) Update(ctx context.Context, id string, patch *schemas.UpdateHoldingRequest) (*models.Holding, error) {
	holdings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var holding *models.Holding
	for i := range holdings {
		if holdings[i].ID == id {
			holding = &holdings[i]
			break
		}
	}
	if holding == nil {
		return nil, utils.NotFound(fmt.Sprintf("holding %s not found", id))
	}
	pos, ok := r.index.Lookup(id)
	if !ok {
		return nil, utils.NotFound(fmt.Sprintf("holding %s not found", id))
	}

	applyHoldingPatch(holding, patch)
	holding.RecomputeValue()
	holding.UpdatedAt = r.now().UTC().Format(time.RFC3339)

	ref := stores.RowRef{Table: HoldingsRange, Row: pos}
	if err := r.store.Update(ctx, ref, holdingToRow(*holding)); err != nil {
		return nil, err
	}
	return holding, nil
}

// Delete removes the row at the cached position, rebuilding the index at most
// once when the id is unknown. Rows below the deleted one shift up, so the
// whole index is dropped afterwards.
func (r *holdingRepo) Delete(ctx context.Context, id string) error {
	pos, ok := r.index.Lookup(id)
	if !ok {
		if _, err := r.GetAll(ctx); err != nil {
			return err
		}
		pos, ok = r.index.Lookup(id)
		if !ok {
			return utils.NotFound(fmt.Sprintf("holding %s not found", id))
		}
	}

	ref := stores.RowRef{Table: HoldingsRange, Row: pos}
	if err := r.store.BatchDelete(ctx, ref); err != nil {
		return err
	}
	r.index.Invalidate()
	return nil
}

func applyHoldingPatch(h *models.Holding, patch *schemas.UpdateHoldingRequest) {
	if patch.Symbol != nil {
		h.Symbol = *patch.Symbol
	}
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Sector != nil {
		h.Sector = *patch.Sector
	}
	if patch.Qty != nil {
		h.Qty = *patch.Qty
	}
	if patch.AvgPrice != nil {
		h.AvgPrice = *patch.AvgPrice
	}
	if patch.CurrentPrice != nil {
		h.CurrentPrice = *patch.CurrentPrice
	}
	if patch.RSI != nil {
		rsi := *patch.RSI
		h.RSI = &rsi
	}
	if patch.AllocationPct != nil {
		h.AllocationPct = *patch.AllocationPct
	}
	if patch.Notes != nil {
		h.Notes = *patch.Notes
	}
}

func holdingFromRow(row []string) models.Holding {
	h := models.Holding{
		ID:            utils.CellAt(row, holdingColID),
		Symbol:        utils.CellAt(row, holdingColSymbol),
		Name:          utils.CellAt(row, holdingColName),
		Sector:        utils.CellAt(row, holdingColSector),
		Qty:           utils.ParseCellDecimal(utils.CellAt(row, holdingColQty)),
		AvgPrice:      utils.ParseCellDecimal(utils.CellAt(row, holdingColAvgPrice)),
		CurrentPrice:  utils.ParseCellDecimal(utils.CellAt(row, holdingColCurrentPrice)),
		AllocationPct: utils.ParseCellDecimal(utils.CellAt(row, holdingColAllocationPct)),
		Notes:         utils.CellAt(row, holdingColNotes),
		UpdatedAt:     utils.CellAt(row, holdingColUpdatedAt),
	}
	if cell := utils.CellAt(row, holdingColRSI); cell != "" {
		rsi := utils.ParseCellDecimal(cell)
		h.RSI = &rsi
	}
	// The stored value cell may lag a manual price edit; the derived value
	// wins at read time.
	h.RecomputeValue()
	return h
}

func holdingToRow(h models.Holding) []string {
	rsi := ""
	if h.RSI != nil {
		rsi = h.RSI.String()
	}
	return []string{
		h.ID,
		h.Symbol,
		h.Name,
		h.Sector,
		h.Qty.String(),
		h.AvgPrice.String(),
		h.CurrentPrice.String(),
		h.Value.String(),
		rsi,
		h.AllocationPct.String(),
		h.Notes,
		h.UpdatedAt,
	}
}

func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}
