package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created through
	// NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is a sellable item. Menus are composed of products and capture their price.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be present and pass the profanity check at creation time
//   - Price must be present and non-negative
type Product struct {
	ddd.EventRecorder

	id    kernel.UUID
	name  kernel.Name
	price kernel.Price

	isConstructed bool
}

// NewProduct creates a Product with a freshly generated identifier.
//
// Parameters:
//   - name: Raw product name, rejected when missing or when checker reports profanity
//   - price: Product price (a zero Price is treated as missing)
//   - checker: Profanity checker used for the name
//
// Returns:
//   - *Product: The created product if all validations pass
//   - error: InvalidArgument-kind error otherwise
//
// Example:
//
//	price, _ := kernel.NewPrice(kernel.SubjectProduct, decimal.NewFromInt(16000))
//	p, err := product.NewProduct("후라이드", price, checker)
func NewProduct(name string, price kernel.Price, checker kernel.ProfanityChecker) (*Product, error) {
	productName, err := kernel.NewCheckedName(kernel.SubjectProduct, name, checker)
	if err != nil {
		return nil, err
	}

	p := &Product{isConstructed: true}
	if err = errors.Join(
		p.setID(kernel.NewUUID()),
		p.setName(productName),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a Product from persisted state without re-running the profanity check.
func RestoreProduct(id kernel.UUID, name kernel.Name, price kernel.Price) (*Product, error) {
	p := &Product{isConstructed: true}
	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() kernel.Name {
	return p.name
}

func (p *Product) Price() kernel.Price {
	return p.price
}

// ChangePrice replaces the product price and records a PriceChanged event.
// Menus containing the product are adjusted by the caller (see services.MenuPricePolicy).
//
// Returns:
//   - nil on success
//   - error if the new price is missing; the current price is kept
func (p *Product) ChangePrice(price kernel.Price) error {
	if err := p.setPrice(price); err != nil {
		return err
	}

	p.Record(NewPriceChangedEvent(p.id, price))
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.ValidateAs("product.id"); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
