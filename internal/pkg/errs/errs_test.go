package errs_test

import (
	"errors"
	"testing"

	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "6f1c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "6f1c", err.ID)
		assert.Equal(t, "object not found: 6f1c", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("vendor", "42", cause)

		assert.Equal(t,
			"object not found: param is: vendor, ID is: 42 (cause: connection reset)",
			err.Error())
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("username", "alice")

	assert.Equal(t, "object already exists: username is: alice", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("vendor_id")

		assert.Equal(t, "value is invalid: vendor_id", err.Error())
		require.NoError(t, err.Cause)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("vendor_id", errors.New("invalid UUID length: 3"))

		assert.Equal(t, "value is invalid: vendor_id (cause: invalid UUID length: 3)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 100", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 10, errors.New("negative"))

		assert.Equal(t,
			"value is invalid: -5 is price, min value is 0, max value is 10 (cause: negative)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("items")
	assert.Equal(t, "value is required: items", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("items", errors.New("empty list"))
	assert.Equal(t, "value is required: items (cause: empty list)", withCause.Error())
}

func TestPreconditionFailedError(t *testing.T) {
	err := errs.NewPreconditionFailedError("vendor does not exist")

	assert.Equal(t, "precondition failed: vendor does not exist", err.Error())
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)

	cause := errs.NewObjectNotFoundError("vendor", "v1")
	wrapped := errs.NewPreconditionFailedErrorWithCause("vendor does not exist", cause)
	assert.Contains(t, wrapped.Error(), "(cause: object not found: v1)")
	assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)
}

func TestAccessDeniedError(t *testing.T) {
	err := errs.NewAccessDeniedError("not authorized")

	assert.Equal(t, "access denied: not authorized", err.Error())
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestUnauthenticatedError(t *testing.T) {
	err := errs.NewUnauthenticatedError("could not validate credentials", errors.New("token is expired"))

	assert.Equal(t, "unauthenticated: could not validate credentials", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestErrorsAreDistinguishableThroughJoin(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("items"),
		errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10),
	)

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, joined, errs.ErrObjectNotFound)
}
