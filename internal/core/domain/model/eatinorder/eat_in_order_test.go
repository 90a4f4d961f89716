package eatinorder_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(kernel.SubjectMenu, decimal.NewFromInt(amount))
	require.NoError(t, err)
	return p
}

func newMenu(t *testing.T, menuPrice int64, displayed bool) *menu.Menu {
	t.Helper()
	qty, err := kernel.NewQuantity(kernel.SubjectMenuProduct, 1)
	require.NoError(t, err)
	mp, err := menu.NewMenuProduct(kernel.NewUUID(), price(t, 18000), qty)
	require.NoError(t, err)
	products, err := menu.NewMenuProducts(mp)
	require.NoError(t, err)
	m, err := menu.NewMenu(kernel.NewUUID(), "후라이드+후라이드", price(t, menuPrice), kernel.NewUUID(), displayed, products,
		kernel.ProfanityCheckerFunc(func(string) bool { return false }))
	require.NoError(t, err)
	return m
}

func newTable(t *testing.T, occupied bool) *ordertable.OrderTable {
	t.Helper()
	table, err := ordertable.NewOrderTable("1번")
	require.NoError(t, err)
	if occupied {
		table.Sit()
	}
	return table
}

func lineItem(t *testing.T, quantity int64, m *menu.Menu, submitted int64) eatinorder.OrderLineItem {
	t.Helper()
	item, err := eatinorder.NewOrderLineItem(quantity, m.ID(), price(t, submitted))
	require.NoError(t, err)
	return item
}

func placeOrder(t *testing.T) *eatinorder.EatInOrder {
	t.Helper()
	m := newMenu(t, 18000, true)
	order, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
		[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, newTable(t, true))
	require.NoError(t, err)
	return order
}

func TestNewOrderLineItem(t *testing.T) {
	t.Run("allows negative quantity", func(t *testing.T) {
		item, err := eatinorder.NewOrderLineItem(-1, kernel.NewUUID(), price(t, 18000))

		require.NoError(t, err)
		assert.Equal(t, int64(-1), item.Quantity())
	})

	t.Run("requires menu id and price", func(t *testing.T) {
		_, err := eatinorder.NewOrderLineItem(1, kernel.UUID{}, kernel.Price{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order_line_item.menuId")
	})
}

func TestNewEatInOrder(t *testing.T) {
	t.Run("places order in waiting status", func(t *testing.T) {
		m := newMenu(t, 18000, true)
		table := newTable(t, true)

		order, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
			[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, table)

		require.NoError(t, err)
		require.NoError(t, order.Validate())
		assert.Equal(t, eatinorder.Waiting, order.Status())
		assert.True(t, table.ID().IsEqual(order.OrderTableID()))
		require.Len(t, order.OrderLineItems(), 1)
		assert.Equal(t, "18000", order.OrderLineItems()[0].Price().String())
		assert.WithinDuration(t, time.Now(), order.OrderDateTime(), time.Minute)
		require.Len(t, order.DomainEvents(), 1)
		assert.Equal(t, eatinorder.CreatedEventName, order.DomainEvents()[0].EventName())
	})

	t.Run("accepts negative line item quantity", func(t *testing.T) {
		m := newMenu(t, 18000, true)

		order, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
			[]eatinorder.OrderLineItem{lineItem(t, -1, m, 18000)}, newTable(t, true))

		require.NoError(t, err)
		assert.Equal(t, int64(-1), order.OrderLineItems()[0].Quantity())
	})

	t.Run("unknown menu is not found", func(t *testing.T) {
		m := newMenu(t, 18000, true)
		other := newMenu(t, 18000, true)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(other),
			[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, newTable(t, true))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("nil menu is not found", func(t *testing.T) {
		m := newMenu(t, 18000, true)
		items := []eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}

		_, err := eatinorder.NewEatInOrder(eatinorder.Menus{m.ID(): (*menu.Menu)(nil)}, items, newTable(t, true))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		menus := eatinorder.NewMenus(m, (*menu.Menu)(nil))
		assert.Len(t, menus, 1)
	})

	t.Run("hidden menu is an illegal state", func(t *testing.T) {
		m := newMenu(t, 18000, false)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
			[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, newTable(t, true))

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Contains(t, err.Error(), eatinorder.ErrMenuIsHidden.Error())
	})

	t.Run("price mismatch is an invalid argument", func(t *testing.T) {
		m := newMenu(t, 17000, true)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
			[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, newTable(t, true))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("unoccupied table is an illegal state", func(t *testing.T) {
		m := newMenu(t, 18000, true)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
			[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, newTable(t, false))

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Contains(t, err.Error(), eatinorder.ErrOrderTableIsNotOccupied.Error())
	})

	t.Run("missing menu wins over hidden menu and price mismatch", func(t *testing.T) {
		hidden := newMenu(t, 17000, false)
		missing := newMenu(t, 18000, true)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(hidden),
			[]eatinorder.OrderLineItem{lineItem(t, 1, hidden, 18000), lineItem(t, 1, missing, 18000)},
			newTable(t, false))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("hidden menu wins over price mismatch and table", func(t *testing.T) {
		hidden := newMenu(t, 18000, false)
		cheaper := newMenu(t, 17000, true)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(hidden, cheaper),
			[]eatinorder.OrderLineItem{lineItem(t, 1, cheaper, 18000), lineItem(t, 1, hidden, 18000)},
			newTable(t, false))

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Contains(t, err.Error(), eatinorder.ErrMenuIsHidden.Error())
	})

	t.Run("requires line items", func(t *testing.T) {
		_, err := eatinorder.NewEatInOrder(eatinorder.Menus{}, nil, newTable(t, true))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires table", func(t *testing.T) {
		m := newMenu(t, 18000, true)

		_, err := eatinorder.NewEatInOrder(eatinorder.NewMenus(m),
			[]eatinorder.OrderLineItem{lineItem(t, 1, m, 18000)}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEatInOrder_Lifecycle(t *testing.T) {
	t.Run("follows the single forward path", func(t *testing.T) {
		order := placeOrder(t)

		require.NoError(t, order.Accept())
		assert.Equal(t, eatinorder.Accepted, order.Status())
		require.NoError(t, order.Serve())
		assert.Equal(t, eatinorder.Served, order.Status())
		require.NoError(t, order.Complete())
		assert.Equal(t, eatinorder.Completed, order.Status())
		assert.Len(t, order.DomainEvents(), 4)
	})

	t.Run("accepting twice fails without change", func(t *testing.T) {
		order := placeOrder(t)
		require.NoError(t, order.Accept())
		order.ClearDomainEvents()

		err := order.Accept()

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Equal(t, eatinorder.Accepted, order.Status())
		assert.Empty(t, order.DomainEvents())
	})

	t.Run("serve before accept fails", func(t *testing.T) {
		order := placeOrder(t)

		require.ErrorIs(t, order.Serve(), errs.ErrIllegalState)
		assert.Equal(t, eatinorder.Waiting, order.Status())
	})

	t.Run("complete before serve fails", func(t *testing.T) {
		order := placeOrder(t)
		require.NoError(t, order.Accept())

		require.ErrorIs(t, order.Complete(), errs.ErrIllegalState)
		assert.Equal(t, eatinorder.Accepted, order.Status())
	})

	t.Run("completed order accepts no further transition", func(t *testing.T) {
		order := placeOrder(t)
		require.NoError(t, order.Accept())
		require.NoError(t, order.Serve())
		require.NoError(t, order.Complete())

		require.ErrorIs(t, order.Accept(), errs.ErrIllegalState)
		require.ErrorIs(t, order.Serve(), errs.ErrIllegalState)
		require.ErrorIs(t, order.Complete(), errs.ErrIllegalState)
	})
}

func TestRestoreEatInOrder(t *testing.T) {
	item, err := eatinorder.NewOrderLineItem(2, kernel.NewUUID(), price(t, 18000))
	require.NoError(t, err)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	order, err := eatinorder.RestoreEatInOrder(kernel.NewUUID(), kernel.NewUUID(), eatinorder.Served,
		[]eatinorder.OrderLineItem{item}, at, 3)

	require.NoError(t, err)
	assert.Equal(t, eatinorder.Served, order.Status())
	assert.Equal(t, int64(3), order.Version())
	assert.Equal(t, at, order.OrderDateTime())
	assert.Empty(t, order.DomainEvents())

	_, err = eatinorder.RestoreEatInOrder(kernel.NewUUID(), kernel.NewUUID(), eatinorder.Unknown,
		[]eatinorder.OrderLineItem{item}, at, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = eatinorder.RestoreEatInOrder(kernel.NewUUID(), kernel.NewUUID(), eatinorder.Waiting, nil, at, 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
