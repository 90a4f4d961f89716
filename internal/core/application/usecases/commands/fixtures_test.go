package commands_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, subject kernel.Subject, value int64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(subject, decimal.NewFromInt(value))
	require.NoError(t, err)
	return p
}

func quantity(t *testing.T, value int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(kernel.SubjectMenuProduct, value)
	require.NoError(t, err)
	return q
}

func fried(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), name(t, kernel.SubjectProduct, "후라이드"), price(t, kernel.SubjectProduct, 16000))
	require.NoError(t, err)
	return p
}

func name(t *testing.T, subject kernel.Subject, value string) kernel.Name {
	t.Helper()
	n, err := kernel.NewName(subject, value)
	require.NoError(t, err)
	return n
}

func menuOf(t *testing.T, p *product.Product, menuPrice int64, displayed bool) *menu.Menu {
	t.Helper()
	mp, err := menu.NewMenuProduct(p.ID(), p.Price(), quantity(t, 1))
	require.NoError(t, err)
	products, err := menu.NewMenuProducts(mp)
	require.NoError(t, err)
	m, err := menu.RestoreMenu(
		kernel.NewUUID(),
		name(t, kernel.SubjectMenu, "후라이드치킨"),
		price(t, kernel.SubjectMenu, menuPrice),
		kernel.NewUUID(),
		displayed,
		products,
	)
	require.NoError(t, err)
	return m
}

func table(t *testing.T, occupied bool) *ordertable.OrderTable {
	t.Helper()
	guests, err := ordertable.NewNumberOfGuests(0)
	require.NoError(t, err)
	tbl, err := ordertable.RestoreOrderTable(kernel.NewUUID(), name(t, kernel.SubjectOrderTable, "1번"), guests, occupied)
	require.NoError(t, err)
	return tbl
}

func orderIn(t *testing.T, tableID kernel.UUID, status eatinorder.Status) *eatinorder.EatInOrder {
	t.Helper()
	item, err := eatinorder.NewOrderLineItem(1, kernel.NewUUID(), price(t, kernel.SubjectOrderLineItem, 16000))
	require.NoError(t, err)
	o, err := eatinorder.RestoreEatInOrder(kernel.NewUUID(), tableID, status, []eatinorder.OrderLineItem{item}, time.Now().UTC(), 1)
	require.NoError(t, err)
	return o
}
