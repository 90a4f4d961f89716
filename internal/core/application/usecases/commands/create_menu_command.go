package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// MenuProductLine is one requested product of a new menu.
type MenuProductLine struct {
	ProductID kernel.UUID
	Quantity  kernel.Quantity
}

// CreateMenuCommand represents a request to compose a new menu out of existing products.
//
// Example:
//
//	qty, _ := kernel.NewQuantity(kernel.SubjectMenuProduct, 2)
//	cmd, err := NewCreateMenuCommand("후라이드+후라이드", price, groupID, true,
//	    []MenuProductLine{{ProductID: friedID, Quantity: qty}})
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	name         string
	price        kernel.Price
	menuGroupID  kernel.UUID
	displayed    bool
	menuProducts []MenuProductLine

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	displayed bool,
	menuProducts []MenuProductLine,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setMenuGroupID(menuGroupID),
		cmd.setMenuProducts(menuProducts),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

func (c CreateMenuCommand) Displayed() bool {
	return c.displayed
}

func (c CreateMenuCommand) MenuProducts() []MenuProductLine {
	out := make([]MenuProductLine, len(c.menuProducts))
	copy(out, c.menuProducts)
	return out
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError(kernel.SubjectMenu.Param("name"))
	}
	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(id kernel.UUID) error {
	if err := id.ValidateAs("menu.menuGroupId"); err != nil {
		return err
	}
	c.menuGroupID = id
	return nil
}

func (c *CreateMenuCommand) setMenuProducts(lines []MenuProductLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("menu.menuProducts")
	}
	for _, line := range lines {
		if err := errors.Join(line.ProductID.ValidateAs("menu_product.productId"), line.Quantity.Validate()); err != nil {
			return err
		}
	}
	c.menuProducts = make([]MenuProductLine, len(lines))
	copy(c.menuProducts, lines)
	return nil
}
