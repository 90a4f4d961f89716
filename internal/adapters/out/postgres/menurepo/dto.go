// Package menurepo maps menu aggregates and their menu products to the menus and
// menu_products tables.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO represents the database structure for persisting menu aggregates.
type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:decimal(19,2);not null"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Displayed    bool             `gorm:"not null"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO is one product line of a menu. ProductPrice is the product price the
// menu was last checked against.
type MenuProductDTO struct {
	Seq          int64           `gorm:"primaryKey;autoIncrement"`
	MenuID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Quantity     int64           `gorm:"not null"`
}

func (MenuProductDTO) TableName() string {
	return "menu_products"
}

func fromDomain(m *menu.Menu) MenuDTO {
	menuID := m.ID().Bytes()
	items := m.MenuProducts().Items()
	products := make([]MenuProductDTO, 0, len(items))

	for _, mp := range items {
		products = append(products, MenuProductDTO{
			MenuID:       menuID,
			ProductID:    mp.ProductID().Bytes(),
			ProductPrice: mp.ProductPrice().Value(),
			Quantity:     mp.Quantity().Value(),
		})
	}

	return MenuDTO{
		ID:           menuID,
		Name:         m.Name().Value(),
		Price:        m.Price().Value(),
		MenuGroupID:  m.MenuGroupID().Bytes(),
		Displayed:    m.IsDisplayed(),
		MenuProducts: products,
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	name, err := kernel.NewName(kernel.SubjectMenu, dto.Name)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(kernel.SubjectMenu, dto.Price)
	if err != nil {
		return nil, err
	}

	items := make([]menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDto := range dto.MenuProducts {
		mp, mpErr := menuProductToDomain(mpDto)
		if mpErr != nil {
			return nil, mpErr
		}
		items = append(items, mp)
	}

	products, err := menu.NewMenuProducts(items...)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenu(id, name, price, groupID, dto.Displayed, products)
}

func menuProductToDomain(dto MenuProductDTO) (menu.MenuProduct, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return menu.MenuProduct{}, err
	}

	price, err := kernel.NewPrice(kernel.SubjectProduct, dto.ProductPrice)
	if err != nil {
		return menu.MenuProduct{}, err
	}

	quantity, err := kernel.NewQuantity(kernel.SubjectMenuProduct, dto.Quantity)
	if err != nil {
		return menu.MenuProduct{}, err
	}

	return menu.NewMenuProduct(productID, price, quantity)
}
