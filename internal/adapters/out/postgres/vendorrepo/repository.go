package vendorrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements ports.VendorRepository with GORM.
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository binds the repository to db.
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// Add validates and inserts a new vendor row.
func (r *GormVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites the contact columns. Missing rows yield ObjectNotFoundError.
func (r *GormVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	result := r.db.WithContext(ctx).
		Model(&VendorDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "email", "phone", "address").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendor", v.ID().String())
	}
	return nil
}

// Delete removes the vendor row. Orders that reference it are untouched.
// Missing rows yield ObjectNotFoundError.
func (r *GormVendorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VendorDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendor", id.String())
	}
	return nil
}

// Get loads one vendor by id. Missing rows yield ObjectNotFoundError.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every vendor ordered by name, then id.
func (r *GormVendorRepository) List(ctx context.Context) ([]*vendor.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vendors := make([]*vendor.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	return vendors, nil
}
