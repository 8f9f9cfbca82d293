package guard_test

import (
	"errors"
	"testing"

	"procurement/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("entity not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type discount struct {
		percent int
		guard   guard.ConstructorGuard
	}
	errDiscountNotConstructed := errors.New("discount must be created via newDiscount")

	newDiscount := func(percent int) (discount, error) {
		if percent < 0 || percent > 100 {
			return discount{}, errors.New("percent out of range")
		}
		return discount{percent: percent, guard: guard.NewConstructorGuard()}, nil
	}

	d, err := newDiscount(15)
	require.NoError(t, err)
	require.NoError(t, d.guard.Validate(errDiscountNotConstructed))

	var literal discount
	require.ErrorIs(t, literal.guard.Validate(errDiscountNotConstructed), errDiscountNotConstructed)

	_, err = newDiscount(150)
	require.Error(t, err)
}
