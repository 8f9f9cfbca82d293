package views

import (
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/domain/model/vendor"

	"github.com/samber/lo"
)

// Vendor is the wire form of a vendor.
type Vendor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

// SerializeVendor maps a vendor to its wire form.
func SerializeVendor(v *vendor.Vendor) Vendor {
	c := v.Contact()
	return Vendor{
		ID:        v.ID().String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: FormatTimestamp(v.CreatedAt()),
	}
}

// SerializeVendors maps vendors in order.
func SerializeVendors(vendors []*vendor.Vendor) []Vendor {
	return lo.Map(vendors, func(v *vendor.Vendor, _ int) Vendor { return SerializeVendor(v) })
}

// User is the wire form of an account. Credentials are never part of it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Disabled bool   `json:"disabled"`
}

// SerializeUser maps a principal to its wire form.
func SerializeUser(p principal.Principal) User {
	return User{
		ID:       p.ID().String(),
		Username: p.Username(),
		Role:     string(p.Role()),
		Disabled: p.IsDisabled(),
	}
}
