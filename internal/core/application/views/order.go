// Package views shapes domain objects into the representations returned to
// API clients. Every function here is pure.
package views

import (
	"time"

	"procurement/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// TimestampLayout is RFC 3339 with optional fractional seconds, always in UTC.
const TimestampLayout = time.RFC3339Nano

// OrderItem is the wire form of one order line.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is the wire form of an order. Identifiers are strings, timestamps use
// TimestampLayout, and an absent due date or instruction is null.
//
// Example:
//
//	{
//	  "id": "7d444840-9dc0-11d1-b245-5ffdce74fad2",
//	  "vendor_id": "...", "user_id": "...",
//	  "order_date": "2025-03-01T10:00:00Z",
//	  "items": [{"product_name": "paper", "quantity": 2, "price": 4.5}],
//	  "status": "pending", "total_amount": 9,
//	  "special_instructions": null, "due_at": null
//	}
type Order struct {
	ID                  string      `json:"id"`
	VendorID            string      `json:"vendor_id"`
	UserID              string      `json:"user_id"`
	OrderDate           string      `json:"order_date"`
	Items               []OrderItem `json:"items"`
	Status              string      `json:"status"`
	TotalAmount         float64     `json:"total_amount"`
	SpecialInstructions *string     `json:"special_instructions"`
	DueAt               *string     `json:"due_at"`
}

// SerializeOrder maps an order to its wire form. A nil order serializes to the
// zero Order with an empty item list.
func SerializeOrder(o *order.Order) Order {
	if o == nil {
		return Order{Items: []OrderItem{}}
	}

	return Order{
		ID:                  o.ID().String(),
		VendorID:            o.VendorID().String(),
		UserID:              o.UserID().String(),
		OrderDate:           FormatTimestamp(o.OrderDate()),
		Items:               lo.Map(o.Items(), func(item order.Item, _ int) OrderItem { return serializeItem(item) }),
		Status:              o.Status().String(),
		TotalAmount:         o.TotalAmount().InexactFloat64(),
		SpecialInstructions: o.SpecialInstructions(),
		DueAt:               lo.EmptyableToPtr(formatOptionalTimestamp(o.DueAt())),
	}
}

// SerializeOrders maps orders in order. A nil slice yields an empty one.
func SerializeOrders(orders []*order.Order) []Order {
	return lo.Map(orders, func(o *order.Order, _ int) Order { return SerializeOrder(o) })
}

// FormatTimestamp renders t in UTC with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func formatOptionalTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTimestamp(*t)
}

func serializeItem(item order.Item) OrderItem {
	return OrderItem{
		ProductName: item.ProductName(),
		Quantity:    item.Quantity(),
		Price:       item.Price().InexactFloat64(),
	}
}
