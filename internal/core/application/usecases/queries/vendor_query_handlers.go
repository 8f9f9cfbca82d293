package queries

import (
	"context"
	"time"

	"procurement/internal/core/application/views"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// vendorColumns selects the columns scan expects, in order.
const vendorColumns = `
		SELECT
			id,
			name,
			email,
			phone,
			address,
			created_at
		FROM vendors`

// VendorQueryHandler reads vendors straight from the vendors table.
type VendorQueryHandler struct {
	db *gorm.DB
}

// NewVendorQueryHandler creates the vendor read handler on db.
func NewVendorQueryHandler(db *gorm.DB) VendorQueryHandler {
	return VendorQueryHandler{db: db}
}

// Get reads one vendor.
//
// Returns:
//   - views.Vendor: The serialized vendor
//   - ObjectNotFoundError if no vendor has the id
//   - AccessDeniedError if the actor is disabled
func (h VendorQueryHandler) Get(ctx context.Context, query GetVendorQuery) (views.Vendor, error) {
	if err := query.Validate(); err != nil {
		return views.Vendor{}, err
	}
	if err := query.Actor().CheckActive(); err != nil {
		return views.Vendor{}, err
	}

	vendors, err := h.scan(ctx, vendorColumns+` WHERE id = ?`, query.VendorID().Bytes())
	if err != nil {
		return views.Vendor{}, err
	}
	if len(vendors) == 0 {
		return views.Vendor{}, errs.NewObjectNotFoundError("vendor", query.VendorID().String())
	}

	return vendors[0], nil
}

// List returns every vendor ordered by name; an empty table is an empty slice.
func (h VendorQueryHandler) List(ctx context.Context, query ListVendorsQuery) ([]views.Vendor, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().CheckActive(); err != nil {
		return nil, err
	}

	return h.scan(ctx, vendorColumns+` ORDER BY name, id`)
}

// scan runs sql and maps every row to a views.Vendor.
func (h VendorQueryHandler) scan(ctx context.Context, sql string, args ...any) ([]views.Vendor, error) {
	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]views.Vendor, 0)
	for rows.Next() {
		var v views.Vendor
		var id uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(&id, &v.Name, &v.Email, &v.Phone, &v.Address, &createdAt); err != nil {
			return nil, err
		}

		v.ID = id.String()
		v.CreatedAt = views.FormatTimestamp(createdAt)
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}
