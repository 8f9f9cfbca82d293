package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyDueOrdersCommand(t *testing.T) {
	_, err := commands.NewNotifyDueOrdersCommand(time.Time{}, time.Minute)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewNotifyDueOrdersCommand(time.Now(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	from := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewNotifyDueOrdersCommand(from, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, from, cmd.From())
	assert.Equal(t, from.Add(15*time.Minute), cmd.To())
}
