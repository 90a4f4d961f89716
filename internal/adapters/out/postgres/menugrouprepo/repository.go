// Package menugrouprepo persists menu groups.
package menugrouprepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

// GormMenuGroupRepository implements ports.MenuGroupRepository using GORM.
type GormMenuGroupRepository struct {
	db *gorm.DB
}

func NewGormMenuGroupRepository(db *gorm.DB) *GormMenuGroupRepository {
	return &GormMenuGroupRepository{db: db}
}

func (r *GormMenuGroupRepository) Add(ctx context.Context, aggregate *menugroup.MenuGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := MenuGroupDTO{ID: aggregate.ID().Bytes(), Name: aggregate.Name().Value()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu group", id.String())
		}
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewName(kernel.SubjectMenuGroup, dto.Name)
	if err != nil {
		return nil, err
	}

	return menugroup.RestoreMenuGroup(groupID, name)
}
