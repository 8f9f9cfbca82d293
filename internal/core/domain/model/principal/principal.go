// Package principal describes the authenticated actor behind a request.
package principal

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned for the zero Principal, which is what
// a handler sees when authentication never ran.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal")

const maxUsernameLength = 64

// Role is the authorization role of a principal. Only RoleAdmin is interpreted;
// every other value, known or not, is treated as a regular customer.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole trims and lowercases raw. Blank input yields RoleCustomer; any
// other value is kept and simply grants no admin rights.
func ParseRole(raw string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if r == "" {
		return RoleCustomer
	}
	return r
}

// Principal is immutable. Changing role or disabled flag yields a copy.
type Principal struct {
	id       kernel.UUID
	username string
	role     Role
	disabled bool

	isConstructed bool
}

// NewPrincipal builds a principal from a stored user. An empty role becomes
// RoleCustomer.
//
// Parameters:
//   - id: User identifier, also the ownership key on orders
//   - username: Trimmed; required and at most 64 characters
//   - role: Authorization role
//   - disabled: Disabled principals fail CheckActive
//
// Example:
//
//	p, err := principal.NewPrincipal(kernel.NewUUID(), "alice", principal.RoleCustomer, false)
func NewPrincipal(id kernel.UUID, username string, role Role, disabled bool) (Principal, error) {
	name, nameErr := kernel.RequiredText("username", username, maxUsernameLength)
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return Principal{}, err
	}
	if role == "" {
		role = RoleCustomer
	}

	return Principal{
		id:            id,
		username:      name,
		role:          role,
		disabled:      disabled,
		isConstructed: true,
	}, nil
}

// Validate ensures the principal was created through NewPrincipal.
// Returns ErrPrincipalIsNotConstructed otherwise.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID is also the ownership key stamped on orders.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Username returns the unique login name.
func (p Principal) Username() string {
	return p.username
}

// Role returns the authorization role.
func (p Principal) Role() Role {
	return p.role
}

// IsDisabled reports whether the account was switched off by an admin.
func (p Principal) IsDisabled() bool {
	return p.disabled
}

// IsAdmin reports whether the principal holds RoleAdmin.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// CheckActive fails for zero-value and disabled principals.
func (p Principal) CheckActive() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.disabled {
		return errs.NewAccessDeniedError("inactive user")
	}
	return nil
}

// RequireAdmin is CheckActive plus the admin role.
func (p Principal) RequireAdmin() error {
	if err := p.CheckActive(); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return errs.NewAccessDeniedError("admin access required")
	}
	return nil
}

// WithRole returns a copy with role replaced.
//
// Example:
//
//	promoted := p.WithRole(principal.RoleAdmin)
func (p Principal) WithRole(role Role) Principal {
	p.role = role
	return p
}

// WithDisabled returns a copy with the disabled flag replaced.
func (p Principal) WithDisabled(disabled bool) Principal {
	p.disabled = disabled
	return p
}
