package queries_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Scoping(t *testing.T) {
	customer := newActor(t, "alice", principal.RoleCustomer)
	admin := newActor(t, "root", principal.RoleAdmin)

	q, err := queries.NewListOrdersQuery(customer, "acme")
	require.NoError(t, err)
	require.NotNil(t, q.Filter().OwnerID)
	assert.True(t, customer.ID().IsEqual(*q.Filter().OwnerID))
	assert.Empty(t, q.Filter().Search)

	q, err = queries.NewListOrdersQuery(admin, "  acme ")
	require.NoError(t, err)
	assert.Nil(t, q.Filter().OwnerID)
	assert.Equal(t, "acme", q.Filter().Search)
}

func TestNewListDueOrdersQuery(t *testing.T) {
	actor := newActor(t, "alice", principal.RoleCustomer)
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	q, err := queries.NewListDueOrdersQuery(actor, start, end)
	require.NoError(t, err)
	assert.Equal(t, start, *q.Filter().DueFrom)
	assert.Equal(t, end, *q.Filter().DueTo)
	assert.NotNil(t, q.Filter().OwnerID)

	_, err = queries.NewListDueOrdersQuery(actor, end, start)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewListDueOrdersQuery(actor, time.Time{}, end)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
