package queries

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrOrderSummaryQueryIsNotConstructed is returned when an OrderSummaryQuery was
// not created through NewOrderSummaryQuery.
var ErrOrderSummaryQueryIsNotConstructed = errors.New(
	"OrderSummaryQuery must be created via NewOrderSummaryQuery constructor",
)

// OrderSummaryQuery aggregates orders placed within [start, end].
type OrderSummaryQuery struct {
	actor principal.Principal
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewOrderSummaryQuery validates the report range. Both bounds are required and
// inclusive, and start must not be after end. Admin rights are checked when the
// query is handled.
//
// Example:
//
//	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
//	query, err := NewOrderSummaryQuery(admin, start, start.AddDate(0, 3, 0))
func NewOrderSummaryQuery(actor principal.Principal, start, end time.Time) (OrderSummaryQuery, error) {
	if err := errors.Join(actor.Validate(), requireTime("start", start), requireTime("end", end)); err != nil {
		return OrderSummaryQuery{}, err
	}
	if start.After(end) {
		return OrderSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause("start",
			fmt.Errorf("%s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	return OrderSummaryQuery{
		actor: actor,
		start: start.UTC(),
		end:   end.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through NewOrderSummaryQuery.
func (q OrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrOrderSummaryQueryIsNotConstructed)
}

// Actor returns the principal requesting the report.
func (q OrderSummaryQuery) Actor() principal.Principal {
	return q.actor
}

// Start returns the inclusive range start in UTC.
func (q OrderSummaryQuery) Start() time.Time {
	return q.start
}

// End returns the inclusive range end in UTC.
func (q OrderSummaryQuery) End() time.Time {
	return q.end
}

// OrderSummaryRow is one (vendor, status) group of the report. TotalAmount is
// rounded to float64 for the wire; the database sum is exact.
type OrderSummaryRow struct {
	VendorID    string  `json:"vendor_id"`
	Status      string  `json:"status"`
	TotalOrders int64   `json:"total_orders"`
	TotalAmount float64 `json:"total_amount"`
}
