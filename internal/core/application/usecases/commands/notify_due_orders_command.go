package commands

import (
	"errors"
	"time"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrNotifyDueOrdersCommandIsNotConstructed is returned when a NotifyDueOrdersCommand
// was not created through NewNotifyDueOrdersCommand.
var ErrNotifyDueOrdersCommandIsNotConstructed = errors.New(
	"NotifyDueOrdersCommand must be created via NewNotifyDueOrdersCommand constructor",
)

// NotifyDueOrdersCommand selects orders due in [from, from+window).
type NotifyDueOrdersCommand struct {
	from   time.Time
	window time.Duration

	guard guard.ConstructorGuard
}

// NewNotifyDueOrdersCommand builds the window starting at from. It is issued by
// the reminder job, not by a principal.
//
// Parameters:
//   - from: Window start, inclusive (required)
//   - window: Window length (must be positive)
//
// Example:
//
//	cmd, err := NewNotifyDueOrdersCommand(time.Now().Add(24*time.Hour), 15*time.Minute)
func NewNotifyDueOrdersCommand(from time.Time, window time.Duration) (NotifyDueOrdersCommand, error) {
	if from.IsZero() {
		return NotifyDueOrdersCommand{}, errs.NewValueIsRequiredError("from")
	}
	if window <= 0 {
		return NotifyDueOrdersCommand{}, errs.NewValueIsInvalidError("window")
	}

	return NotifyDueOrdersCommand{
		from:   from.UTC(),
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewNotifyDueOrdersCommand.
func (c NotifyDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyDueOrdersCommandIsNotConstructed)
}

// From returns the inclusive window start in UTC.
func (c NotifyDueOrdersCommand) From() time.Time {
	return c.from
}

// To returns the exclusive window end.
func (c NotifyDueOrdersCommand) To() time.Time {
	return c.from.Add(c.window)
}
