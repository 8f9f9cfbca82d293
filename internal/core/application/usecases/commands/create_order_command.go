package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand was
// not created through NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order on behalf of actor. Vendor id and items
// are checked for shape here; whether the vendor exists is checked on Handle.
//
//	cmd, err := NewCreateOrderCommand(actor, vendorID, []ItemInput{
//	    {ProductName: "paper", Quantity: 10, Price: decimal.NewFromInt(4)},
//	}, "", nil, nil)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor    principal.Principal
	orderID  kernel.UUID
	vendorID kernel.UUID
	draft    order.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request and assigns the new order id.
//
// Parameters:
//   - actor: The authenticated principal, owner of the new order
//   - vendorID: Textual vendor identifier (must parse as a UUID)
//   - items: At least one line item
//   - status: Optional; empty leaves the default
//   - specialInstructions, dueAt: Optional
//
// Returns:
//   - CreateOrderCommand: A valid command
//   - error: Joined validation errors for every invalid argument
func NewCreateOrderCommand(
	actor principal.Principal,
	vendorID string,
	items []ItemInput,
	status string,
	specialInstructions *string,
	dueAt *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		draft: order.Draft{
			SpecialInstructions: specialInstructions,
			DueAt:               dueAt,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		cmd.setVendorID(vendorID),
		cmd.setItems(items),
		cmd.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewCreateOrderCommand.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the principal placing the order.
func (c CreateOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor the order is placed with.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Draft returns the client-controlled fields of the new order.
func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c *CreateOrderCommand) setVendorID(raw string) error {
	id, err := kernel.ParseUUID("vendor_id", raw)
	if err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return order.ErrItemsAreRequired
	}
	items, err := buildItems(inputs)
	if err != nil {
		return err
	}
	c.draft.Items = items
	return nil
}

// setStatus leaves an empty status for NewOrder to default.
func (c *CreateOrderCommand) setStatus(raw string) error {
	if raw == "" {
		return nil
	}
	status, err := order.NewStatus(raw)
	if err != nil {
		return err
	}
	c.draft.Status = status
	return nil
}
