package queries

import (
	"errors"
	"strings"
	"time"

	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed guards both list constructors.
var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery or NewListDueOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the orders visible to actor: all of them for admins,
// only their own for everyone else.
type ListOrdersQuery struct {
	actor  principal.Principal
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery narrows the listing by search, a case-insensitive
// substring of vendor name, owner id or username, or order id. Search is
// honoured for admins only; other principals already see only their own orders.
func NewListOrdersQuery(actor principal.Principal, search string) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if actor.IsAdmin() {
		q.filter.Search = strings.TrimSpace(search)
	} else {
		id := actor.ID()
		q.filter.OwnerID = &id
	}

	return q, nil
}

// NewListDueOrdersQuery lists the visible orders due within [start, end]. Both
// bounds are required and inclusive; orders without a due date never match.
//
// Example:
//
//	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
//	query, err := NewListDueOrdersQuery(actor, start, start.AddDate(0, 1, 0))
func NewListDueOrdersQuery(actor principal.Principal, start, end time.Time) (ListOrdersQuery, error) {
	q, err := NewListOrdersQuery(actor, "")
	if err != nil {
		return ListOrdersQuery{}, err
	}

	if err = errors.Join(requireTime("start", start), requireTime("end", end)); err != nil {
		return ListOrdersQuery{}, err
	}

	start, end = start.UTC(), end.UTC()
	q.filter.DueFrom = &start
	q.filter.DueTo = &end
	if err = q.filter.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through one of its constructors.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the principal listing orders.
func (q ListOrdersQuery) Actor() principal.Principal {
	return q.actor
}

// Filter returns the store filter, already scoped to the actor.
func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

// requireTime rejects the zero time, which is what an absent bound parses to.
func requireTime(paramName string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
