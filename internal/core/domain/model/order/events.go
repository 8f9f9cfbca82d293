package order

import (
	"time"

	"procurement/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// EventType names what happened to an order. Values are dotted and double as
// the routing suffix on the event transports.
type EventType string

const (
	EventCreated     EventType = "order.created"
	EventUpdated     EventType = "order.updated"
	EventDeleted     EventType = "order.deleted"
	EventRescheduled EventType = "order.rescheduled"
	EventDueSoon     EventType = "order.due_soon"
)

// Event is a snapshot of an order taken when something happened to it.
// Events carry copies, so later mutations of the order do not leak into
// events already recorded.
type Event struct {
	ID          kernel.UUID
	Type        EventType
	OrderID     kernel.UUID
	VendorID    kernel.UUID
	UserID      kernel.UUID
	Status      Status
	TotalAmount decimal.Decimal
	DueAt       *time.Time
	OccurredAt  time.Time
}

func newEvent(eventType EventType, o *Order) Event {
	return Event{
		ID:          kernel.NewUUID(),
		Type:        eventType,
		OrderID:     o.id,
		VendorID:    o.vendorID,
		UserID:      o.userID,
		Status:      o.status,
		TotalAmount: o.totalAmount,
		DueAt:       copyTime(o.dueAt),
		OccurredAt:  time.Now().UTC(),
	}
}

// storedTime normalizes t to UTC at microsecond precision, the resolution the
// order table keeps.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func copyStoredTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := storedTime(*t)
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
