package schemas

import (
	"fmt"

	"portfolio-api/src/utils"

	"github.com/shopspring/decimal"
)

const (
	maxSymbolLen = 12
	maxNameLen   = 120
	maxSectorLen = 64
	maxNotesLen  = 500
)

// CreateHoldingRequest is the payload for POST /v1/holdings. Value and id are
// never accepted from the client.
type CreateHoldingRequest struct {
	Symbol        string           `json:"symbol"`
	Name          string           `json:"name"`
	Sector        string           `json:"sector"`
	Qty           decimal.Decimal  `json:"qty"`
	AvgPrice      decimal.Decimal  `json:"avg_price"`
	CurrentPrice  decimal.Decimal  `json:"current_price"`
	RSI           *decimal.Decimal `json:"rsi,omitempty"`
	AllocationPct decimal.Decimal  `json:"allocation_pct"`
	Notes         string           `json:"notes,omitempty"`
}

func (r *CreateHoldingRequest) Validate() error {
	if err := requireBoundedString("symbol", r.Symbol, maxSymbolLen); err != nil {
		return err
	}
	if err := requireBoundedString("name", r.Name, maxNameLen); err != nil {
		return err
	}
	if err := requireBoundedString("sector", r.Sector, maxSectorLen); err != nil {
		return err
	}
	if err := requirePositive("qty", r.Qty); err != nil {
		return err
	}
	if err := requirePositive("avg_price", r.AvgPrice); err != nil {
		return err
	}
	if err := requirePositive("current_price", r.CurrentPrice); err != nil {
		return err
	}
	if r.RSI != nil {
		if err := requirePercentage("rsi", *r.RSI); err != nil {
			return err
		}
	}
	if err := requirePercentage("allocation_pct", r.AllocationPct); err != nil {
		return err
	}
	if len(r.Notes) > maxNotesLen {
		return utils.BadRequest(fmt.Sprintf("notes must be at most %d characters", maxNotesLen))
	}
	return nil
}

// UpdateHoldingRequest is the payload for PUT /v1/holdings/{id}. Every field
// is optional; a payload with no recognized fields is a valid no-op.
type UpdateHoldingRequest struct {
	Symbol        *string          `json:"symbol,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Sector        *string          `json:"sector,omitempty"`
	Qty           *decimal.Decimal `json:"qty,omitempty"`
	AvgPrice      *decimal.Decimal `json:"avg_price,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price,omitempty"`
	RSI           *decimal.Decimal `json:"rsi,omitempty"`
	AllocationPct *decimal.Decimal `json:"allocation_pct,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r *UpdateHoldingRequest) Validate() error {
	if r.Symbol != nil {
		if err := requireBoundedString("symbol", *r.Symbol, maxSymbolLen); err != nil {
			return err
		}
	}
	if r.Name != nil {
		if err := requireBoundedString("name", *r.Name, maxNameLen); err != nil {
			return err
		}
	}
	if r.Sector != nil {
		if err := requireBoundedString("sector", *r.Sector, maxSectorLen); err != nil {
			return err
		}
	}
	if r.Qty != nil {
		if err := requirePositive("qty", *r.Qty); err != nil {
			return err
		}
	}
	if r.AvgPrice != nil {
		if err := requirePositive("avg_price", *r.AvgPrice); err != nil {
			return err
		}
	}
	if r.CurrentPrice != nil {
		if err := requirePositive("current_price", *r.CurrentPrice); err != nil {
			return err
		}
	}
	if r.RSI != nil {
		if err := requirePercentage("rsi", *r.RSI); err != nil {
			return err
		}
	}
	if r.AllocationPct != nil {
		if err := requirePercentage("allocation_pct", *r.AllocationPct); err != nil {
			return err
		}
	}
	if r.Notes != nil && len(*r.Notes) > maxNotesLen {
		return utils.BadRequest(fmt.Sprintf("notes must be at most %d characters", maxNotesLen))
	}
	return nil
}

func requireBoundedString(field, value string, max int) error {
	if value == "" {
		return utils.BadRequest(fmt.Sprintf("%s must not be empty", field))
	}
	if len(value) > max {
		return utils.BadRequest(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

func requirePositive(field string, value decimal.Decimal) error {
	if value.Sign() <= 0 {
		return utils.BadRequest(fmt.Sprintf("%s must be strictly positive", field))
	}
	return nil
}

func requirePercentage(field string, value decimal.Decimal) error {
	if value.Sign() < 0 || value.GreaterThan(decimal.NewFromInt(100)) {
		return utils.BadRequest(fmt.Sprintf("%s must be between 0 and 100", field))
	}
	return nil
}
