package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row shape of the orders table. Items live in a JSONB column;
// a NULL total marks rows written before totals were persisted.
type OrderDTO struct {
	ID                  uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	VendorID            uuid.UUID                     `gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID                     `gorm:"type:uuid;not null;index"`
	OrderDate           time.Time                     `gorm:"not null;index"`
	Items               datatypes.JSONType[[]ItemDTO] `gorm:"not null"`
	Status              string                        `gorm:"size:64;not null;index"`
	TotalAmount         decimal.NullDecimal           `gorm:"type:numeric"`
	SpecialInstructions *string
	DueAt               *time.Time `gorm:"index"`
}

// TableName overrides the gorm default of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the JSON shape of one element of orders.items.
type ItemDTO struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// fromDomain maps the aggregate to a row. Recorded events are not persisted.
func fromDomain(o *order.Order) OrderDTO {
	items := lo.Map(o.Items(), func(item order.Item, _ int) ItemDTO {
		return ItemDTO{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		}
	})

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		VendorID:            o.VendorID().Bytes(),
		UserID:              o.UserID().Bytes(),
		OrderDate:           o.OrderDate(),
		Items:               datatypes.NewJSONType(items),
		Status:              o.Status().String(),
		TotalAmount:         decimal.NewNullDecimal(o.TotalAmount()),
		SpecialInstructions: o.SpecialInstructions(),
		DueAt:               o.DueAt(),
	}
}

// toDomain restores the aggregate from a row. Stored items are not
// re-validated, so a legacy line never hides the rest of a listing.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := lo.Map(dto.Items.Data(), func(it ItemDTO, _ int) order.Item {
		return order.RestoreItem(it.ProductName, it.Quantity, it.Price)
	})

	return order.RestoreOrder(
		id,
		vendorID,
		userID,
		dto.OrderDate,
		items,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.SpecialInstructions,
		dto.DueAt,
	)
}
