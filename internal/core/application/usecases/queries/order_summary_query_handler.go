package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummaryQueryHandler aggregates the orders table in SQL. It bypasses the
// order repository because no aggregate is needed to build the report.
//
// Example:
//
//	handler := NewOrderSummaryQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
//	for _, row := range rows {
//	    fmt.Println(row.VendorID, row.Status, row.TotalOrders, row.TotalAmount)
//	}
type OrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewOrderSummaryQueryHandler creates the report handler on db.
func NewOrderSummaryQueryHandler(db *gorm.DB) OrderSummaryQueryHandler {
	return OrderSummaryQueryHandler{db: db}
}

// Handle groups orders by vendor and status. Admins only. Rows without a
// stored total count as zero.
func (h OrderSummaryQueryHandler) Handle(ctx context.Context, query OrderSummaryQuery) ([]OrderSummaryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().RequireAdmin(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			vendor_id,
			status,
			COUNT(*),
			COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE order_date >= ? AND order_date <= ?
		GROUP BY vendor_id, status
		ORDER BY vendor_id, status
	`, query.Start(), query.End()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]OrderSummaryRow, 0)
	for rows.Next() {
		var row OrderSummaryRow
		var vendorID uuid.UUID
		var total decimal.Decimal

		if err = rows.Scan(&vendorID, &row.Status, &row.TotalOrders, &total); err != nil {
			return nil, err
		}

		row.VendorID = vendorID.String()
		row.TotalAmount = total.InexactFloat64()
		summary = append(summary, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
