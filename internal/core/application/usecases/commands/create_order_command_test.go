package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	actor := newActor(t, "alice", principal.RoleCustomer)
	vendorID := newVendor(t).ID().String()

	testCases := []struct {
		name        string
		vendorID    string
		items       []commands.ItemInput
		status      string
		expectedErr error
	}{
		{name: "valid", vendorID: vendorID, items: items(2, "3.5")},
		{name: "explicit status", vendorID: vendorID, items: items(1, "0"), status: "confirmed"},
		{name: "malformed vendor id", vendorID: "not-a-uuid", items: items(1, "1"), expectedErr: errs.ErrValueIsInvalid},
		{name: "no items", vendorID: vendorID, items: nil, expectedErr: errs.ErrValueIsRequired},
		{name: "zero quantity", vendorID: vendorID, items: items(0, "1"), expectedErr: errs.ErrValueIsOutOfRange},
		{name: "negative price", vendorID: vendorID, items: items(1, "-1"), expectedErr: errs.ErrValueIsInvalid},
		{name: "blank status", vendorID: vendorID, items: items(1, "1"), status: "  ", expectedErr: errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand(actor, tc.vendorID, tc.items, tc.status, nil, nil)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
				return
			}

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, tc.vendorID, cmd.VendorID().String())
			assert.True(t, actor.ID().IsEqual(cmd.Actor().ID()))
			assert.Len(t, cmd.Draft().Items, len(tc.items))
			assert.Equal(t, order.Status(tc.status), cmd.Draft().Status)
		})
	}
}

func TestNewCreateOrderCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(principal.Principal{}, "bad", items(0, "1"), "", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, principal.ErrPrincipalIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "items[0]")
}
