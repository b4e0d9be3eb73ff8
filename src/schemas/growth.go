package schemas

import (
	"regexp"

	"portfolio-api/src/utils"

	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// CreateGrowthRequest is the payload for POST /v1/monthly-growth. PNL may be
// negative; entries are append-only.
type CreateGrowthRequest struct {
	Month   string          `json:"month"`
	Account string          `json:"account"`
	PNL     decimal.Decimal `json:"pnl"`
}

func (r *CreateGrowthRequest) Validate() error {
	if !monthPattern.MatchString(r.Month) {
		return utils.BadRequest("month must match YYYY-MM")
	}
	if err := requireBoundedString("account", r.Account, maxSectorLen); err != nil {
		return err
	}
	return nil
}
