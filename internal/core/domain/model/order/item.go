package order

import (
	"errors"
	"fmt"
	"math"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxProductNameLength = 200

// Item is a single order line. Items are values: two items with the same
// fields are interchangeable.
type Item struct {
	productName string
	quantity    int
	price       decimal.Decimal
}

// NewItem validates and creates an order line.
//
// Parameters:
//   - productName: Trimmed; required and at most 200 characters
//   - quantity: Between 1 and math.MaxInt32
//   - price: Unit price, zero or more
//
// Returns:
//   - Item: The created line
//   - error: Joined validation errors for every invalid argument
//
// Example:
//
//	item, err := order.NewItem("widget", 2, decimal.RequireFromString("10.00"))
func NewItem(productName string, quantity int, price decimal.Decimal) (Item, error) {
	name, nameErr := kernel.RequiredText("product_name", productName, maxProductNameLength)

	var quantityErr error
	if quantity <= 0 || quantity > math.MaxInt32 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}

	var priceErr error
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is less than 0", price))
	}

	if err := errors.Join(nameErr, quantityErr, priceErr); err != nil {
		return Item{}, err
	}

	return Item{productName: name, quantity: quantity, price: price}, nil
}

// RestoreItem rebuilds a line from storage without validation. Rows written
// before the current rules applied (a zero quantity, say) must still load.
func RestoreItem(productName string, quantity int, price decimal.Decimal) Item {
	return Item{productName: productName, quantity: quantity, price: price}
}

// ProductName returns the product the line orders.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal is price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Total sums the subtotals of items. An empty slice totals zero.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
