package userrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// UserDTO is the row shape of the users table. Username is unique.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"size:64;not null;uniqueIndex"`
	Role      string    `gorm:"size:32;not null"`
	Disabled  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName overrides the GORM table name.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(p principal.Principal) UserDTO {
	return UserDTO{
		ID:       p.ID().Bytes(),
		Username: p.Username(),
		Role:     string(p.Role()),
		Disabled: p.IsDisabled(),
	}
}

func toDomain(dto UserDTO) (principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return principal.Principal{}, err
	}
	return principal.NewPrincipal(id, dto.Username, principal.Role(dto.Role), dto.Disabled)
}
