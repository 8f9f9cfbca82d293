package order

import (
	"errors"
	"slices"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. Zero-value orders never reach a repository.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order would be left without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a purchase order placed by a principal against a vendor. It is
// the aggregate root for line items, status and due date.
//
// Order follows these invariants:
//   - Must have valid order, vendor and owner identifiers
//   - Must carry at least one item
//   - TotalAmount always equals the sum of the item subtotals
//   - Owner and order date are fixed at creation
//
// Timestamps are kept at microsecond precision, the resolution of the store,
// so a freshly created order serializes exactly like its reloaded copy.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// vendorID references the vendor the order is placed with
	vendorID kernel.UUID

	// userID is the owner, the principal that placed the order
	userID kernel.UUID

	// orderDate is the creation time, never changed afterwards
	orderDate time.Time

	// items are the order lines; totalAmount is derived from them
	items       []Item
	status      Status
	totalAmount decimal.Decimal

	specialInstructions *string

	// dueAt is the optional date the order is expected by
	dueAt *time.Time

	// events are recorded by mutations and drained by the unit of work
	events []Event

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// Draft holds the client-controlled fields of a new order. Identity, owner and
// order date are supplied by the caller of NewOrder, never by the client.
//
// Example:
//
//	draft := order.Draft{
//	    Items:  []order.Item{item},
//	    Status: order.StatusConfirmed,
//	}
type Draft struct {
	Items               []Item
	Status              Status
	SpecialInstructions *string
	DueAt               *time.Time
}

// NewOrder places an order owned by userID. The order date is the current time,
// the total is computed from the items, and an empty status becomes
// StatusPending.
//
// Parameters:
//   - id: Identifier of the new order
//   - vendorID: Vendor the order is placed with (existence is checked by the caller)
//   - userID: Owner of the order, the principal id
//   - draft: Client-supplied items, status, instructions and due date
//
// Returns:
//   - *Order: The created order with an EventCreated recorded
//   - error: Joined validation errors for every invalid field
//
// Example:
//
//	item, _ := order.NewItem("widget", 2, decimal.NewFromInt(10))
//	o, err := order.NewOrder(kernel.NewUUID(), vendorID, principal.ID(), order.Draft{
//	    Items: []order.Item{item},
//	})
//	// o.TotalAmount() == 20, o.Status() == order.StatusPending
func NewOrder(id, vendorID, userID kernel.UUID, draft Draft) (*Order, error) {
	o := &Order{
		orderDate:     storedTime(time.Now()),
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setUserID(userID),
		o.setItems(draft.Items),
		o.setStatusIfPresent(draft.Status),
	); err != nil {
		return nil, err
	}

	o.specialInstructions = copyString(draft.SpecialInstructions)
	o.dueAt = copyStoredTime(draft.DueAt)
	o.record(EventCreated)

	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total is taken as is;
// a row without a total (written before totals were persisted) restores with a
// zero total.
//
// Items are trusted as stored: use RestoreItem for them, so a legacy line that
// NewItem would reject still loads. No events are recorded.
func RestoreOrder(
	id, vendorID, userID kernel.UUID,
	orderDate time.Time,
	items []Item,
	status Status,
	totalAmount decimal.NullDecimal,
	specialInstructions *string,
	dueAt *time.Time,
) (*Order, error) {
	o := &Order{
		orderDate:           orderDate.UTC(),
		items:               slices.Clone(items),
		totalAmount:         decimal.Zero,
		specialInstructions: copyString(specialInstructions),
		dueAt:               copyTime(dueAt),
		isConstructed:       true,
	}
	if totalAmount.Valid {
		o.totalAmount = totalAmount.Decimal
	}
	if o.items == nil {
		o.items = []Item{}
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setUserID(userID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for nil or zero-value orders
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Returns false if other is nil.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the identifier of the vendor the order is placed with.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// UserID is the ownership key of the principal that placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// OrderDate returns the creation time in UTC.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of price × quantity over the items.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// SpecialInstructions returns the free-form note, or nil if none was given.
func (o *Order) SpecialInstructions() *string {
	return copyString(o.specialInstructions)
}

// DueAt returns the due date.
// Returns nil if the order has no due date.
func (o *Order) DueAt() *time.Time {
	return copyTime(o.dueAt)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// Amendment is a partial update. Nil fields are left untouched.
//
// Example:
//
//	note := "deliver to dock 4"
//	a := order.Amendment{SpecialInstructions: &note}
type Amendment struct {
	VendorID            *kernel.UUID
	Items               []Item
	Status              *Status
	SpecialInstructions *string
	DueAt               *time.Time
}

// IsEmpty reports whether the amendment changes nothing.
func (a Amendment) IsEmpty() bool {
	return a.VendorID == nil && a.Items == nil && a.Status == nil &&
		a.SpecialInstructions == nil && a.DueAt == nil
}

// Amend applies a partial update. New items recompute the total and put the
// order back to StatusPending; that reset wins over a status carried by the
// same amendment. Owner and order date never change.
//
// Returns:
//   - nil on success, with an EventUpdated recorded
//   - nil without an event when the amendment is empty
//   - error if a present field is invalid; the order is left unchanged
//
// Example:
//
//	confirmed := order.StatusConfirmed
//	err := o.Amend(order.Amendment{Status: &confirmed})
func (o *Order) Amend(a Amendment) error {
	if a.IsEmpty() {
		return nil
	}

	if a.VendorID != nil {
		if err := a.VendorID.Validate(); err != nil {
			return err
		}
	}
	if a.Items != nil && len(a.Items) == 0 {
		return ErrItemsAreRequired
	}
	if a.Status != nil && *a.Status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	if a.VendorID != nil {
		o.vendorID = *a.VendorID
	}
	if a.SpecialInstructions != nil {
		o.specialInstructions = copyString(a.SpecialInstructions)
	}
	if a.DueAt != nil {
		o.dueAt = copyStoredTime(a.DueAt)
	}

	switch {
	case a.Items != nil:
		o.items = slices.Clone(a.Items)
		o.totalAmount = Total(o.items)
		o.status = StatusPending
	case a.Status != nil:
		o.status = *a.Status
	}

	o.record(EventUpdated)
	return nil
}

// Reschedule sets or, with nil, clears the due date. Status and total are
// untouched. An EventRescheduled is recorded either way.
//
// Example:
//
//	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
//	o.Reschedule(&due)
//	o.Reschedule(nil) // clears it again
func (o *Order) Reschedule(dueAt *time.Time) {
	o.dueAt = copyStoredTime(dueAt)
	o.record(EventRescheduled)
}

// MarkDeleted records the deletion; removing the row is up to the repository.
func (o *Order) MarkDeleted() {
	o.record(EventDeleted)
}

// DueSoonEvent builds a reminder event without recording it on the aggregate.
// Reminders are published directly by the reminder job and never stored.
func (o *Order) DueSoonEvent() Event {
	return newEvent(EventDueSoon, o)
}

// DomainEvents returns the events recorded since the last ClearDomainEvents,
// oldest first.
func (o *Order) DomainEvents() []Event {
	return slices.Clone(o.events)
}

// ClearDomainEvents forgets the recorded events. The unit of work calls it once
// the events have been handed to the publisher.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(eventType EventType) {
	o.events = append(o.events, newEvent(eventType, o))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor_id", err)
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = slices.Clone(items)
	o.totalAmount = Total(o.items)
	return nil
}

func (o *Order) setStatusIfPresent(status Status) error {
	if status == "" {
		return nil
	}
	return o.setStatus(status)
}

func (o *Order) setStatus(status Status) error {
	s, err := NewStatus(string(status))
	if err != nil {
		return err
	}
	o.status = s
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
