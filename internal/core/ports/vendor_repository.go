package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendors. Vendor writes
// record no events.
type VendorRepository interface {
	// Add persists a new vendor.
	Add(ctx context.Context, v *vendor.Vendor) error

	// Update overwrites the contact details. Missing rows yield errs.ErrObjectNotFound.
	Update(ctx context.Context, v *vendor.Vendor) error

	// Delete removes the vendor. Missing rows yield errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a vendor by id. Missing rows yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// List returns all vendors ordered by name.
	List(ctx context.Context) ([]*vendor.Vendor, error)
}
