package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_MalformedID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(newActor(t, "alice", principal.RoleCustomer), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
