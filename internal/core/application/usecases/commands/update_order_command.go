package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand was
// not created through NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPatch carries the fields a client sent. Nil means "not sent"; a non-nil
// empty Items is an attempt to clear the items and is rejected.
type OrderPatch struct {
	VendorID            *string
	Items               []ItemInput
	Status              *string
	SpecialInstructions *string
	DueAt               *time.Time
}

// UpdateOrderCommand applies a partial update to one order. Only the fields
// present in the patch are changed.
//
// Example:
//
//	status := "confirmed"
//	cmd, err := NewUpdateOrderCommand(actor, orderID, OrderPatch{Status: &status})
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor     principal.Principal
	orderID   kernel.UUID
	amendment order.Amendment

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the present fields of patch and turns them
// into an order.Amendment. An empty patch is valid and changes nothing.
//
// Returns:
//   - UpdateOrderCommand: A valid command
//   - error: Joined validation errors; order.ErrItemsAreRequired for an empty item list
func NewUpdateOrderCommand(actor principal.Principal, orderID string, patch OrderPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		amendment: order.Amendment{
			SpecialInstructions: patch.SpecialInstructions,
			DueAt:               patch.DueAt,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setOrderID(&cmd.orderID, orderID),
		cmd.setVendorID(patch.VendorID),
		cmd.setItems(patch.Items),
		cmd.setStatus(patch.Status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewUpdateOrderCommand.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the principal requesting the update.
func (c UpdateOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amendment returns the validated partial update.
func (c UpdateOrderCommand) Amendment() order.Amendment {
	return c.amendment
}

func (c *UpdateOrderCommand) setVendorID(raw *string) error {
	if raw == nil {
		return nil
	}
	id, err := kernel.ParseUUID("vendor_id", *raw)
	if err != nil {
		return err
	}
	c.amendment.VendorID = &id
	return nil
}

func (c *UpdateOrderCommand) setItems(inputs []ItemInput) error {
	if inputs != nil && len(inputs) == 0 {
		return order.ErrItemsAreRequired
	}
	items, err := buildItems(inputs)
	if err != nil {
		return err
	}
	c.amendment.Items = items
	return nil
}

func (c *UpdateOrderCommand) setStatus(raw *string) error {
	if raw == nil {
		return nil
	}
	status, err := order.NewStatus(*raw)
	if err != nil {
		return err
	}
	c.amendment.Status = &status
	return nil
}

// setActor rejects the zero principal. Shared by every order command.
func setActor(dst *principal.Principal, actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	*dst = actor
	return nil
}

// setOrderID parses the textual order id. Shared by every order command.
func setOrderID(dst *kernel.UUID, raw string) error {
	id, err := kernel.ParseUUID("order_id", raw)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}
