package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	actor := newActor(t, "alice", principal.RoleCustomer)

	_, err := queries.NewGetOrderQuery(actor, "zzz")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetOrderQuery(principal.Principal{}, newOrder(t, actor).ID().String())
	require.ErrorIs(t, err, principal.ErrPrincipalIsNotConstructed)

	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
