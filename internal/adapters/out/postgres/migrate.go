package postgres

import (
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/adapters/out/postgres/vendorrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, in truncation order.
var Tables = []string{"orders", "vendors", "users"}

// Migrate creates or alters the vendors, users and orders tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&vendorrepo.VendorDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
	)
}
