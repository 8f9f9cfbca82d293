package vendorrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO is the row shape of the vendors table.
type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:200;not null;index"`
	Email     string    `gorm:"size:320;not null"`
	Phone     string    `gorm:"size:320;not null"`
	Address   string    `gorm:"size:320;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides the GORM table name.
func (VendorDTO) TableName() string {
	return "vendors"
}

func fromDomain(v *vendor.Vendor) VendorDTO {
	c := v.Contact()
	return VendorDTO{
		ID:        v.ID().Bytes(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: v.CreatedAt(),
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, vendor.Contact{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Address: dto.Address,
	}, dto.CreatedAt)
}
