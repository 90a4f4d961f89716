package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrMenuIsNotConstructed is returned when a Menu instance was not created through
	// NewMenu or RestoreMenu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

	// ErrMenuPriceExceedsProducts is the cause reported when a menu would cost more than its products.
	ErrMenuPriceExceedsProducts = errors.New("menu price exceeds the sum of its product prices")
)

// Menu is a named, priced collection of products offered to guests.
//
// Menu follows these invariants:
//   - Must have a valid unique identifier and menu group reference
//   - Name must be present and pass the profanity check at creation time
//   - Price must not exceed Σ(product price × quantity) over its MenuProducts
//   - A displayed menu is orderable, a hidden menu is not
type Menu struct {
	ddd.EventRecorder

	id           kernel.UUID
	name         kernel.Name
	price        kernel.Price
	menuGroupID  kernel.UUID
	displayed    bool
	menuProducts MenuProducts

	isConstructed bool
}

// NewMenu creates a menu.
//
// Parameters:
//   - id: Identifier of the new menu
//   - name: Raw menu name, rejected when missing or profane per checker
//   - price: Menu price, must not exceed the sum of menuProducts
//   - menuGroupID: Group the menu is listed under
//   - displayed: Whether the menu is orderable right away
//   - menuProducts: Non-empty list of products
//   - checker: Profanity checker used for the name
//
// Returns:
//   - *Menu: The created menu if all validations pass
//   - error: InvalidArgument-kind error otherwise
//
// Example:
//
//	mp, _ := menu.NewMenuProduct(friedID, friedPrice, two)
//	products, _ := menu.NewMenuProducts(mp)
//	m, err := menu.NewMenu(kernel.NewUUID(), "후라이드+후라이드", price, groupID, true, products, checker)
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	displayed bool,
	menuProducts MenuProducts,
	checker kernel.ProfanityChecker,
) (*Menu, error) {
	m := &Menu{displayed: displayed, isConstructed: true}
	if err := errors.Join(
		m.setID(id),
		m.setMenuGroupID(menuGroupID),
		m.setMenuProducts(menuProducts),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	menuName, err := kernel.NewCheckedName(kernel.SubjectMenu, name, checker)
	if err != nil {
		return nil, err
	}
	m.name = menuName

	return m, nil
}

// RestoreMenu rebuilds a Menu from persisted state. The price ceiling is not re-checked,
// because captured product prices may have moved since the menu was saved.
func RestoreMenu(
	id kernel.UUID,
	name kernel.Name,
	price kernel.Price,
	menuGroupID kernel.UUID,
	displayed bool,
	menuProducts MenuProducts,
) (*Menu, error) {
	m := &Menu{displayed: displayed, isConstructed: true}
	if err := errors.Join(
		m.setID(id),
		name.Validate(),
		price.Validate(),
		m.setMenuGroupID(menuGroupID),
		m.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}
	m.name = name
	m.price = price
	return m, nil
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// IsEqual compares two menus by their identifiers.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() kernel.Name {
	return m.name
}

func (m *Menu) Price() kernel.Price {
	return m.price
}

func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

func (m *Menu) MenuProducts() MenuProducts {
	return m.menuProducts
}

// IsDisplayed reports whether the menu can be ordered.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

// IsOverpriced reports whether the menu price exceeds the sum of its product prices.
func (m *Menu) IsOverpriced() bool {
	return m.price.IsGreaterThan(m.menuProducts.Sum())
}

// ChangePrice replaces the menu price after re-checking the price ceiling.
//
// Returns:
//   - nil on success
//   - error if the price is missing or exceeds the product sum; the current price is kept
func (m *Menu) ChangePrice(price kernel.Price) error {
	if err := m.setPrice(price); err != nil {
		return err
	}

	m.Record(newChangedEvent(PriceChangedEventName, m))
	return nil
}

// Display makes the menu orderable. A menu priced above its products cannot be displayed.
func (m *Menu) Display() error {
	if m.IsOverpriced() {
		return errs.NewIllegalStateErrorWithCause("menu", ErrMenuPriceExceedsProducts)
	}
	if m.displayed {
		return nil
	}

	m.displayed = true
	m.Record(newChangedEvent(DisplayedEventName, m))
	return nil
}

// Hide makes the menu unorderable.
func (m *Menu) Hide() {
	if !m.displayed {
		return
	}

	m.displayed = false
	m.Record(newChangedEvent(HiddenEventName, m))
}

// ApplyProductPrice updates the captured price of productID and hides the menu when it
// becomes overpriced. It reports whether the menu contained the product.
func (m *Menu) ApplyProductPrice(productID kernel.UUID, price kernel.Price) bool {
	if !m.menuProducts.Contains(productID) {
		return false
	}

	m.menuProducts = m.menuProducts.withProductPrice(productID, price)
	if m.IsOverpriced() {
		m.Hide()
	}
	return true
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.ValidateAs("menu.id"); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setMenuGroupID(id kernel.UUID) error {
	if err := id.ValidateAs("menu.menuGroupId"); err != nil {
		return err
	}
	m.menuGroupID = id
	return nil
}

func (m *Menu) setMenuProducts(products MenuProducts) error {
	if products.Len() == 0 {
		return ErrMenuProductsAreEmpty
	}
	m.menuProducts = products
	return nil
}

// setPrice must run after setMenuProducts.
func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if sum := m.menuProducts.Sum(); price.IsGreaterThan(sum) {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu.price",
			fmt.Errorf("%w: %s > %s", ErrMenuPriceExceedsProducts, price.String(), sum.String()),
		)
	}
	m.price = price
	return nil
}
