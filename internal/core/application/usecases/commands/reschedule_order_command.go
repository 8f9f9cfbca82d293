package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// ErrRescheduleOrderCommandIsNotConstructed is returned when a RescheduleOrderCommand
// was not created through NewRescheduleOrderCommand.
var ErrRescheduleOrderCommandIsNotConstructed = errors.New(
	"RescheduleOrderCommand must be created via NewRescheduleOrderCommand constructor",
)

// RescheduleOrderCommand moves an order on the calendar. A nil due date clears it.
type RescheduleOrderCommand struct {
	actor   principal.Principal
	orderID kernel.UUID
	dueAt   *time.Time

	guard guard.ConstructorGuard
}

// NewRescheduleOrderCommand validates the actor and parses orderID. dueAt is
// taken as is; nil clears the due date.
//
// Example:
//
//	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
//	cmd, err := NewRescheduleOrderCommand(actor, orderID, &due)
func NewRescheduleOrderCommand(
	actor principal.Principal,
	orderID string,
	dueAt *time.Time,
) (RescheduleOrderCommand, error) {
	cmd := RescheduleOrderCommand{
		dueAt: dueAt,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setOrderID(&cmd.orderID, orderID),
	); err != nil {
		return RescheduleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewRescheduleOrderCommand.
func (c RescheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleOrderCommandIsNotConstructed)
}

// Actor returns the principal requesting the change.
func (c RescheduleOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the order to reschedule.
func (c RescheduleOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DueAt returns the new due date, or nil to clear it.
func (c RescheduleOrderCommand) DueAt() *time.Time {
	return c.dueAt
}
