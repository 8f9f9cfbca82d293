// Package events delivers order events to Kafka, NATS or the log. All
// transports carry the same JSON payload.
package events

import (
	"encoding/json"
	"strings"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Payload is the JSON shape every broker receives for an order event.
// Ids are canonical UUID strings and timestamps use the API timestamp format.
type Payload struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	VendorID    string          `json:"vendor_id"`
	UserID      string          `json:"user_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	DueAt       *string         `json:"due_at"`
	OccurredAt  string          `json:"occurred_at"`
}

// NewPayload flattens event into its wire form. DueAt stays null when the
// order has no due date.
func NewPayload(event order.Event) Payload {
	p := Payload{
		EventID:     event.ID.String(),
		Type:        string(event.Type),
		OrderID:     event.OrderID.String(),
		VendorID:    event.VendorID.String(),
		UserID:      event.UserID.String(),
		Status:      event.Status.String(),
		TotalAmount: event.TotalAmount,
		OccurredAt:  views.FormatTimestamp(event.OccurredAt),
	}
	if event.DueAt != nil {
		due := views.FormatTimestamp(*event.DueAt)
		p.DueAt = &due
	}
	return p
}

// encode marshals the payload of event.
func encode(event order.Event) ([]byte, error) {
	return json.Marshal(NewPayload(event))
}

// SplitList turns a comma-separated setting into its non-blank entries.
func SplitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
