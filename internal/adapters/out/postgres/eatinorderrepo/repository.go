package eatinorderrepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEatInOrderRepository implements ports.EatInOrderRepository using GORM.
type GormEatInOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEatInOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormEatInOrderRepository {
	return &GormEatInOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items.
func (r *GormEatInOrderRepository) Add(ctx context.Context, aggregate *eatinorder.EatInOrder) error {
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

// Update saves the status of an order loaded at aggregate.Version() and bumps the
// stored version. Line items never change after creation.
//
// Returns:
//   - errs.ObjectNotFoundError when the order does not exist
//   - errs.VersionIsInvalidError when the order was changed concurrently
func (r *GormEatInOrderRepository) Update(ctx context.Context, aggregate *eatinorder.EatInOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&EatInOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":  dto.Status,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&EatInOrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("eat in order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("eat_in_order.version")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items.
func (r *GormEatInOrderRepository) Get(ctx context.Context, id kernel.UUID) (*eatinorder.EatInOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EatInOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("OrderLineItems", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("eat in order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountUncompletedByOrderTable counts the orders on the table that are not Completed.
func (r *GormEatInOrderRepository) CountUncompletedByOrderTable(ctx context.Context, orderTableID kernel.UUID) (int64, error) {
	if err := orderTableID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&EatInOrderDTO{}).
		Where("order_table_id = ? AND status <> ?", orderTableID.Bytes(), int(eatinorder.Completed)).
		Count(&count).Error
	return count, err
}
