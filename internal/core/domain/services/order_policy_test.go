package services_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrincipal(t *testing.T, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), "user-"+string(role), role, false)
	require.NoError(t, err)
	return p
}

func newOrderOwnedBy(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("widget", 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), owner, order.Draft{Items: []order.Item{item}})
	require.NoError(t, err)
	return o
}

func TestOrderPolicy_Authorize(t *testing.T) {
	policy := services.NewOrderPolicy()
	actions := []services.Action{services.ActionRead, services.ActionUpdate, services.ActionDelete}

	owner := newPrincipal(t, principal.RoleCustomer)
	stranger := newPrincipal(t, principal.RoleCustomer)
	admin := newPrincipal(t, principal.RoleAdmin)
	unknownRole := newPrincipal(t, principal.Role("auditor"))
	o := newOrderOwnedBy(t, owner.ID())

	for _, action := range actions {
		t.Run(string(action), func(t *testing.T) {
			require.NoError(t, policy.Authorize(owner, o, action))
			require.NoError(t, policy.Authorize(admin, o, action))

			err := policy.Authorize(stranger, o, action)
			require.ErrorIs(t, err, errs.ErrAccessDenied)
			assert.Equal(t, "access denied: not authorized", err.Error())

			require.ErrorIs(t, policy.Authorize(unknownRole, o, action), errs.ErrAccessDenied)
		})
	}
}

func TestOrderPolicy_DisabledPrincipal(t *testing.T) {
	policy := services.NewOrderPolicy()
	admin := newPrincipal(t, principal.RoleAdmin)
	owner := newPrincipal(t, principal.RoleCustomer)
	o := newOrderOwnedBy(t, owner.ID())

	require.ErrorIs(t, policy.Authorize(owner.WithDisabled(true), o, services.ActionRead), errs.ErrAccessDenied)
	require.ErrorIs(t, policy.Authorize(admin.WithDisabled(true), o, services.ActionDelete), errs.ErrAccessDenied)
}

func TestOrderPolicy_RejectsUnconstructedOrder(t *testing.T) {
	policy := services.NewOrderPolicy()

	err := policy.Authorize(newPrincipal(t, principal.RoleAdmin), &order.Order{}, services.ActionRead)

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}
