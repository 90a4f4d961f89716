// Package ordertablerepo persists order tables.
package ordertablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfGuests int       `gorm:"type:int;not null"`
	Occupied       bool      `gorm:"not null"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

// GormOrderTableRepository implements ports.OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db *gorm.DB
}

func NewGormOrderTableRepository(db *gorm.DB) *GormOrderTableRepository {
	return &GormOrderTableRepository{db: db}
}

func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *ordertable.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the occupancy and guest count of an existing table.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *ordertable.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderTableDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"number_of_guests": dto.NumberOfGuests,
			"occupied":         dto.Occupied,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", aggregate.ID().String())
	}
	return nil
}

func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(t *ordertable.OrderTable) OrderTableDTO {
	return OrderTableDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name().Value(),
		NumberOfGuests: t.NumberOfGuests().Value(),
		Occupied:       t.IsOccupied(),
	}
}

func toDomain(dto OrderTableDTO) (*ordertable.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	name, err := kernel.NewName(kernel.SubjectOrderTable, dto.Name)
	if err != nil {
		return nil, err
	}

	guests, err := ordertable.NewNumberOfGuests(dto.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	return ordertable.RestoreOrderTable(id, name, guests, dto.Occupied)
}
