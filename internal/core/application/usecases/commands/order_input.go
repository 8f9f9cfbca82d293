package commands

import (
	"context"
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrVendorDoesNotExist is returned when an order names a vendor that is not
// stored. It is a failed precondition, not a missing order.
var ErrVendorDoesNotExist = errs.NewPreconditionFailedError("vendor does not exist")

// ItemInput is a line item as submitted by a client.
type ItemInput struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// buildItems keeps nil as nil so callers can tell "absent" from "empty".
func buildItems(inputs []ItemInput) ([]order.Item, error) {
	if inputs == nil {
		return nil, nil
	}

	items := make([]order.Item, 0, len(inputs))
	var errList []error
	for i, in := range inputs {
		item, err := order.NewItem(in.ProductName, in.Quantity, in.Price)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}

// ensureVendorExists maps a missing vendor to ErrVendorDoesNotExist.
func ensureVendorExists(ctx context.Context, repo ports.VendorRepository, vendorID kernel.UUID) error {
	if _, err := repo.Get(ctx, vendorID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrVendorDoesNotExist
		}
		return err
	}
	return nil
}
