package order

import (
	"strings"

	"procurement/internal/pkg/errs"
)

// Status is the review state of an order. The set of values is a business
// convention rather than a closed enum: any non-empty value is accepted, the
// constants below are the ones the service itself assigns or interprets.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// NewStatus trims raw and rejects blank input.
func NewStatus(raw string) (Status, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errs.NewValueIsRequiredError("status")
	}
	return Status(s), nil
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further work is expected on the order.
func (s Status) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusCancelled
}
