package orderrepo

import (
	"context"
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

var terminalStatuses = []string{order.StatusFulfilled.String(), order.StatusCancelled.String()}

// immutableColumns are never written by Update.
var immutableColumns = []string{"id", "user_id", "order_date"}

// GormOrderRepository implements ports.OrderRepository with GORM.
// Every successful write registers the aggregate with the tracker so the unit
// of work can publish its events after commit.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is the part of the unit of work the repository reports to.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository binds the repository to db, which is either the
// transaction of a unit of work or the plain pool.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add validates and inserts a new order row.
// The aggregate is tracked only when the insert succeeds.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every mutable column of the order row. id, user_id and
// order_date are never rewritten. Missing rows yield ObjectNotFoundError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(immutableColumns...).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the order row and tracks the aggregate so its deleted event
// is published. Missing rows yield ObjectNotFoundError.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads one order by id. Missing rows yield ObjectNotFoundError.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Find lists orders matching filter, newest first. Search matches the vendor
// name, owner username and the order or owner id, case-insensitively.
//
// Example:
//
//	orders, err := repo.Find(ctx, ports.OrderFilter{
//	    OwnerID: &ownerID,
//	    Search:  "acme",
//	})
func (r *GormOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&OrderDTO{}).Select("orders.*")

	if filter.OwnerID != nil {
		query = query.Where("orders.user_id = ?", filter.OwnerID.Bytes())
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.
			Joins("LEFT JOIN vendors ON vendors.id = orders.vendor_id").
			Joins("LEFT JOIN users ON users.id = orders.user_id").
			Where(`(LOWER(vendors.name) LIKE ?
				OR CAST(orders.user_id AS TEXT) LIKE ?
				OR LOWER(users.username) LIKE ?
				OR CAST(orders.id AS TEXT) LIKE ?)`,
				pattern, pattern, pattern, pattern)
	}

	if filter.DueFrom != nil {
		query = query.Where("orders.due_at >= ?", filter.DueFrom.UTC())
	}
	if filter.DueTo != nil {
		query = query.Where("orders.due_at <= ?", filter.DueTo.UTC())
	}
	if filter.DueBefore != nil {
		query = query.Where("orders.due_at < ?", filter.DueBefore.UTC())
	}

	if filter.ExcludeTerminal {
		query = query.Where("orders.status NOT IN ?", terminalStatuses)
	}

	var dtos []OrderDTO
	if err := query.Order("orders.order_date DESC").Order("orders.id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
