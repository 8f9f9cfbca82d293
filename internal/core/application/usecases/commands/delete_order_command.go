package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a DeleteOrderCommand was
// not created through NewDeleteOrderCommand.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes one order on behalf of actor.
//
// Example:
//
//	cmd, err := NewDeleteOrderCommand(actor, "7d444840-9dc0-11d1-b245-5ffdce74fad2")
//	if err != nil {
//	    return err // malformed id: errors.Is(err, errs.ErrValueIsInvalid)
//	}
type DeleteOrderCommand struct {
	actor   principal.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the actor and parses orderID.
func NewDeleteOrderCommand(actor principal.Principal, orderID string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setOrderID(&cmd.orderID, orderID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewDeleteOrderCommand.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Actor returns the principal requesting the deletion.
func (c DeleteOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
