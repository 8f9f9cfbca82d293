package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created through NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of actor.
//
// Example:
//
//	query, err := NewGetOrderQuery(actor, "7d444840-9dc0-11d1-b245-5ffdce74fad2")
//	if err != nil {
//	    return err // malformed id: errors.Is(err, errs.ErrValueIsInvalid)
//	}
type GetOrderQuery struct {
	actor   principal.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates the actor and parses orderID.
func NewGetOrderQuery(actor principal.Principal, orderID string) (GetOrderQuery, error) {
	id, idErr := kernel.ParseUUID("order_id", orderID)
	if err := errors.Join(actor.Validate(), idErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through NewGetOrderQuery.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the principal reading the order.
func (q GetOrderQuery) Actor() principal.Principal {
	return q.actor
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
