package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/domain/model/vendor"
	"procurement/internal/pkg/guard"
)

// Constructor guards for the vendor commands.
var (
	ErrCreateVendorCommandIsNotConstructed = errors.New(
		"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
	)
	ErrUpdateVendorCommandIsNotConstructed = errors.New(
		"UpdateVendorCommand must be created via NewUpdateVendorCommand constructor",
	)
	ErrDeleteVendorCommandIsNotConstructed = errors.New(
		"DeleteVendorCommand must be created via NewDeleteVendorCommand constructor",
	)
)

// CreateVendorCommand registers a vendor. Contact fields are validated by the
// vendor aggregate when the command is handled.
//
// Example:
//
//	cmd, err := NewCreateVendorCommand(admin, vendor.Contact{
//	    Name: "Acme Supplies", Email: "sales@acme.test", Phone: "+1 555 0100", Address: "1 Main St",
//	})
type CreateVendorCommand struct {
	actor    principal.Principal
	vendorID kernel.UUID
	contact  vendor.Contact

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand validates the actor and assigns the vendor id.
func NewCreateVendorCommand(actor principal.Principal, contact vendor.Contact) (CreateVendorCommand, error) {
	cmd := CreateVendorCommand{
		vendorID: kernel.NewUUID(),
		contact:  contact,
		guard:    guard.NewConstructorGuard(),
	}
	if err := setActor(&cmd.actor, actor); err != nil {
		return CreateVendorCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through NewCreateVendorCommand.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// Actor returns the principal creating the vendor.
func (c CreateVendorCommand) Actor() principal.Principal {
	return c.actor
}

// VendorID returns the identifier assigned to the new vendor.
func (c CreateVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Contact returns the submitted contact details, not yet validated.
func (c CreateVendorCommand) Contact() vendor.Contact {
	return c.contact
}

// UpdateVendorCommand replaces a vendor's contact details.
type UpdateVendorCommand struct {
	actor    principal.Principal
	vendorID kernel.UUID
	contact  vendor.Contact

	guard guard.ConstructorGuard
}

// NewUpdateVendorCommand validates the actor and parses vendorID.
func NewUpdateVendorCommand(
	actor principal.Principal,
	vendorID string,
	contact vendor.Contact,
) (UpdateVendorCommand, error) {
	cmd := UpdateVendorCommand{
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setVendorID(&cmd.vendorID, vendorID),
	); err != nil {
		return UpdateVendorCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through NewUpdateVendorCommand.
func (c UpdateVendorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorCommandIsNotConstructed)
}

// Actor returns the principal making the change.
func (c UpdateVendorCommand) Actor() principal.Principal {
	return c.actor
}

// VendorID returns the vendor to change.
func (c UpdateVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Contact returns the replacement contact details.
func (c UpdateVendorCommand) Contact() vendor.Contact {
	return c.contact
}

// DeleteVendorCommand removes a vendor. Orders referencing it are kept.
type DeleteVendorCommand struct {
	actor    principal.Principal
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVendorCommand validates the actor and parses vendorID.
func NewDeleteVendorCommand(actor principal.Principal, vendorID string) (DeleteVendorCommand, error) {
	cmd := DeleteVendorCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setVendorID(&cmd.vendorID, vendorID),
	); err != nil {
		return DeleteVendorCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through NewDeleteVendorCommand.
func (c DeleteVendorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVendorCommandIsNotConstructed)
}

// Actor returns the principal requesting the deletion.
func (c DeleteVendorCommand) Actor() principal.Principal {
	return c.actor
}

// VendorID returns the vendor to delete.
func (c DeleteVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// setVendorID parses the textual vendor id.
func setVendorID(dst *kernel.UUID, raw string) error {
	id, err := kernel.ParseUUID("vendor_id", raw)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}
