package repositories

// Named ranges in the backing spreadsheet. Row 1 of each is the header.
const (
	HoldingsRange  = "holdings"
	IdealRange     = "ideal_allocation"
	GrowthRange    = "monthly_growth"
	SnapshotsRange = "snapshots"
)

// TableHeaders lists the header row of every named range, in column order.
// The local workbook backend uses it to bootstrap missing sheets.
func TableHeaders() map[string][]string {
	return map[string][]string{
		HoldingsRange:  {"id", "symbol", "name", "sector", "qty", "avg_price", "current_price", "value", "rsi", "allocation_pct", "notes", "updated_at"},
		IdealRange:     {"sector", "target_pct"},
		GrowthRange:    {"month", "account", "pnl"},
		SnapshotsRange: {"date", "sector", "actual_pct", "target_pct", "variance", "total_value"},
	}
}
