package kernel

import (
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero UUID and for the
// nil UUID loaded from storage.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, ParseUUID, or UUIDFromBytes")

// UUID identifies orders, vendors and users. The zero value is invalid so a
// forgotten assignment is caught by Validate instead of being persisted as
// 00000000-0000-0000-0000-000000000000.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	fmt.Println(orderID.String()) // "7d444840-9dc0-11d1-b245-5ffdce74fad2"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID parses the textual form of an identifier received from a client.
// paramName names the offending field in the returned ValueIsInvalidError.
//
//	vendorID, err := kernel.ParseUUID("vendor_id", req.VendorID)
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrValueIsInvalid)
//	}
func ParseUUID(paramName, s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if id == uuid.Nil {
		return UUID{}, errs.NewValueIsInvalidError(paramName)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte form, as read from a
// uuid column. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// MustParseUUID is meant for constants and tests.
func MustParseUUID(s string) UUID {
	id, err := ParseUUID("uuid", s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical 36-character form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying google/uuid value for storage adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails for the zero value.
//
// Returns:
//   - nil for identifiers built by a constructor
//   - ErrUUIDIsNotConstructed otherwise
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
