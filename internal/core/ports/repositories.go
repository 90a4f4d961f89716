// Package ports defines the contracts between the kitchenpos core and its infrastructure:
// repositories, the unit of work, and the outbound services the application layer calls.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns errs.ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs returns the products that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}

// MenuGroupRepository defines the persistence contract for menu groups.
type MenuGroupRepository interface {
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)
}

// MenuRepository defines the persistence contract for menu aggregates, including their menu products.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error
	Update(ctx context.Context, aggregate *menu.Menu) error
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetByIDs returns the menus that exist among ids. Missing ids are skipped, so the
	// caller can report them as not found.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAllByProductID returns every menu containing the product.
	GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error)
}

// OrderTableRepository defines the persistence contract for order tables.
type OrderTableRepository interface {
	Add(ctx context.Context, aggregate *ordertable.OrderTable) error
	Update(ctx context.Context, aggregate *ordertable.OrderTable) error
	Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error)
}

// EatInOrderRepository defines the persistence contract for eat-in orders.
type EatInOrderRepository interface {
	Add(ctx context.Context, aggregate *eatinorder.EatInOrder) error

	// Update saves the order if its stored version still equals aggregate.Version(),
	// and fails with errs.VersionIsInvalidError otherwise.
	Update(ctx context.Context, aggregate *eatinorder.EatInOrder) error

	Get(ctx context.Context, id kernel.UUID) (*eatinorder.EatInOrder, error)

	// CountUncompletedByOrderTable counts orders on the table that are not Completed.
	CountUncompletedByOrderTable(ctx context.Context, orderTableID kernel.UUID) (int64, error)
}
