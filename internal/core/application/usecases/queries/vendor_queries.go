package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// Constructor guards for the vendor queries.
var (
	ErrGetVendorQueryIsNotConstructed = errors.New(
		"GetVendorQuery must be created via NewGetVendorQuery constructor",
	)
	ErrListVendorsQueryIsNotConstructed = errors.New(
		"ListVendorsQuery must be created via NewListVendorsQuery constructor",
	)
)

// GetVendorQuery reads one vendor. Any active principal may issue it.
type GetVendorQuery struct {
	actor    principal.Principal
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorQuery validates the actor and parses vendorID.
func NewGetVendorQuery(actor principal.Principal, vendorID string) (GetVendorQuery, error) {
	id, idErr := kernel.ParseUUID("vendor_id", vendorID)
	if err := errors.Join(actor.Validate(), idErr); err != nil {
		return GetVendorQuery{}, err
	}

	return GetVendorQuery{actor: actor, vendorID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewGetVendorQuery.
func (q GetVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorQueryIsNotConstructed)
}

// Actor returns the principal reading the vendor.
func (q GetVendorQuery) Actor() principal.Principal {
	return q.actor
}

// VendorID returns the vendor to read.
func (q GetVendorQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// ListVendorsQuery lists every vendor. Any active principal may issue it.
type ListVendorsQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewListVendorsQuery validates the actor.
func NewListVendorsQuery(actor principal.Principal) (ListVendorsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListVendorsQuery{}, err
	}
	return ListVendorsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewListVendorsQuery.
func (q ListVendorsQuery) Validate() error {
	return q.guard.Validate(ErrListVendorsQueryIsNotConstructed)
}

// Actor returns the principal listing vendors.
func (q ListVendorsQuery) Actor() principal.Principal {
	return q.actor
}
