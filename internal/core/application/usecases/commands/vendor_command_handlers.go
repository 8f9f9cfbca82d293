package commands

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/vendor"
)

// VendorCommandHandler serves the admin-only vendor writes. Each method runs in
// its own transaction.
type VendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewVendorCommandHandler creates the vendor handler.
// Requires a VendorUoWFactory for transactional persistence.
func NewVendorCommandHandler(uowFactory VendorUoWFactory) VendorCommandHandler {
	return VendorCommandHandler{uowFactory: uowFactory}
}

// Create validates the contact details and stores a new vendor.
//
// Returns:
//   - views.Vendor: The stored vendor
//   - AccessDeniedError if the actor is not an active admin
//   - validation errors for the contact fields; nothing is stored
//
// Example:
//
//	created, err := handler.Create(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(created.ID)
func (h VendorCommandHandler) Create(ctx context.Context, cmd CreateVendorCommand) (views.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return views.Vendor{}, err
	}
	if err := cmd.Actor().RequireAdmin(); err != nil {
		return views.Vendor{}, err
	}

	created, err := vendor.NewVendor(cmd.VendorID(), cmd.Contact())
	if err != nil {
		return views.Vendor{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return views.Vendor{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VendorRepository().Add(ctx, created); err != nil {
		return views.Vendor{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Vendor{}, err
	}

	return views.SerializeVendor(created), nil
}

// Update replaces the contact details of an existing vendor. The creation time
// is kept.
//
// Returns:
//   - views.Vendor: The vendor as stored after the change
//   - ObjectNotFoundError if the vendor does not exist
//   - AccessDeniedError if the actor is not an active admin
func (h VendorCommandHandler) Update(ctx context.Context, cmd UpdateVendorCommand) (views.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return views.Vendor{}, err
	}
	if err := cmd.Actor().RequireAdmin(); err != nil {
		return views.Vendor{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.Vendor{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	existing, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return views.Vendor{}, err
	}

	if err = existing.ChangeContact(cmd.Contact()); err != nil {
		return views.Vendor{}, err
	}

	if err = vendorRepo.Update(ctx, existing); err != nil {
		return views.Vendor{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Vendor{}, err
	}

	return views.SerializeVendor(existing), nil
}

// Delete removes the vendor only; orders keep their vendor_id.
func (h VendorCommandHandler) Delete(ctx context.Context, cmd DeleteVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().RequireAdmin(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.VendorRepository().Delete(ctx, cmd.VendorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
