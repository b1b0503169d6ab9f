package worksheet

import (
	"github.com/shopspring/decimal"

	"github.com/powertrack/powertrack/internal/api"
)

// parseMoney converts a text-input amount to a decimal. Empty or
// unparseable input counts as zero.
func parseMoney(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LiveTotal derives the running total from the draft: the sum of the
// selected services' prices at the current vehicle category, minus the
// discount, plus the fee, floored at zero. A service with no price entry
// for the category contributes zero.
//
// This is a pure function of the draft and the loaded service list; it is
// recomputed on every render, which is fine at O(selected services).
func LiveTotal(draft *Draft, services []api.Service) decimal.Decimal {
	base := decimal.Zero
	for _, id := range draft.SelectedServiceIDs {
		for _, svc := range services {
			if svc.ServiceID == id {
				base = base.Add(svc.PriceFor(draft.VehicleCategoryID))
				break
			}
		}
	}

	total := base.Sub(parseMoney(draft.Discount)).Add(parseMoney(draft.Fee))
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// LiveTotalString renders the live total with two decimal places for
// display, e.g. "22.00".
func LiveTotalString(draft *Draft, services []api.Service) string {
	return LiveTotal(draft, services).StringFixed(2)
}
