package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type createFunc[C any] func(ctx context.Context, cmd C) (kernel.UUID, error)

func (f createFunc[C]) Handle(ctx context.Context, cmd C) (kernel.UUID, error) { return f(ctx, cmd) }

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error { return f(ctx, cmd) }

type queryFunc[Q any, R any] func(ctx context.Context, query Q) ([]R, error)

func (f queryFunc[Q, R]) Handle(ctx context.Context, query Q) ([]R, error) { return f(ctx, query) }

type qrFunc func(content string) ([]byte, error)

func (f qrFunc) Generate(content string) ([]byte, error) { return f(content) }

func newTestRouter(t *testing.T, handlers Handlers, qr qrFunc) *echo.Echo {
	t.Helper()

	contract, err := LoadContract(t.Context())
	require.NoError(t, err)

	e, err := NewRouter(NewServer(handlers, qr, "https://pos.example.com/", zap.NewNop()), contract, log.OFF)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoadContract(t *testing.T) {
	contract, err := LoadContract(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, contract.Paths.Find("/eat-in-orders/{id}/complete"))
	assert.NotNil(t, contract.Paths.Find("/products"))
}

func TestHealthAndContract(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = do(e, http.MethodGet, "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestCreateProduct(t *testing.T) {
	id := kernel.NewUUID()
	var received commands.CreateProductCommand
	e := newTestRouter(t, Handlers{
		CreateProduct: createFunc[commands.CreateProductCommand](
			func(_ context.Context, cmd commands.CreateProductCommand) (kernel.UUID, error) {
				received = cmd
				return id, nil
			}),
	}, nil)

	rec := do(e, http.MethodPost, "/api/products", `{"name":"Fried chicken","price":16000}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/products/"+id.String(), rec.Header().Get(echo.HeaderLocation))
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, rec.Body.String())
	assert.Equal(t, "Fried chicken", received.Name())
	assert.Equal(t, "16000", received.Price().String())
}

func TestCreateProduct_MissingPrice(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPost, "/api/products", `{"name":"Fried chicken"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPost, "/api/products", `{"name":"Fried chicken","price":"-1000"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPost, "/api/products", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid argument", errs.NewValueIsInvalidError("product.name"), http.StatusBadRequest, ""},
		{"not found", errs.NewObjectNotFoundError("menu", "x"), http.StatusNotFound, ""},
		{"illegal state", errs.NewIllegalStateError("eat_in_order.status"), http.StatusConflict, ""},
		{"stale version", errs.NewVersionIsInvalidError("eat_in_order.version"), http.StatusConflict, ""},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(t, Handlers{
				ChangeEatInOrderStatus: commandFunc[commands.ChangeEatInOrderStatusCommand](
					func(context.Context, commands.ChangeEatInOrderStatusCommand) error { return tt.err }),
			}, nil)

			rec := do(e, http.MethodPut, "/api/eat-in-orders/"+kernel.NewUUID().String()+"/accept", "")

			require.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}

func TestChangeEatInOrderStatus_Targets(t *testing.T) {
	id := kernel.NewUUID()
	var targets []eatinorder.Status
	e := newTestRouter(t, Handlers{
		ChangeEatInOrderStatus: commandFunc[commands.ChangeEatInOrderStatusCommand](
			func(_ context.Context, cmd commands.ChangeEatInOrderStatusCommand) error {
				assert.True(t, cmd.OrderID().IsEqual(id))
				targets = append(targets, cmd.Target())
				return nil
			}),
	}, nil)

	for _, action := range []string{"accept", "serve", "complete"} {
		rec := do(e, http.MethodPut, "/api/eat-in-orders/"+id.String()+"/"+action, "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Equal(t, []eatinorder.Status{eatinorder.Accepted, eatinorder.Served, eatinorder.Completed}, targets)
}

func TestInvalidPathID(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPut, "/api/menus/not-a-uuid/display", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEatInOrder(t *testing.T) {
	tableID, menuID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	var received commands.CreateEatInOrderCommand
	e := newTestRouter(t, Handlers{
		CreateEatInOrder: createFunc[commands.CreateEatInOrderCommand](
			func(_ context.Context, cmd commands.CreateEatInOrderCommand) (kernel.UUID, error) {
				received = cmd
				return orderID, nil
			}),
	}, nil)

	rec := do(e, http.MethodPost, "/api/eat-in-orders", `{
		"orderTableId": "`+tableID.String()+`",
		"orderLineItems": [{"menuId": "`+menuID.String()+`", "quantity": -1, "price": "19000"}]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, received.OrderTableID().IsEqual(tableID))
	require.Len(t, received.Lines(), 1)
	assert.Equal(t, int64(-1), received.Lines()[0].Quantity)
	assert.True(t, received.Lines()[0].MenuID.IsEqual(menuID))
}

func TestCreateEatInOrder_NoLineItems(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPost, "/api/eat-in-orders", `{"orderTableId":"`+kernel.NewUUID().String()+`","orderLineItems":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEatInOrder_MissingTable(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPost, "/api/eat-in-orders",
		`{"orderLineItems":[{"menuId":"`+kernel.NewUUID().String()+`","quantity":1,"price":1000}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMenu(t *testing.T) {
	groupID, productID, menuID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	var received commands.CreateMenuCommand
	e := newTestRouter(t, Handlers{
		CreateMenu: createFunc[commands.CreateMenuCommand](
			func(_ context.Context, cmd commands.CreateMenuCommand) (kernel.UUID, error) {
				received = cmd
				return menuID, nil
			}),
	}, nil)

	rec := do(e, http.MethodPost, "/api/menus", `{
		"name": "Two fried chickens",
		"price": 19000,
		"menuGroupId": "`+groupID.String()+`",
		"displayed": true,
		"menuProducts": [{"productId": "`+productID.String()+`", "quantity": 2}]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Two fried chickens", received.Name())
	assert.True(t, received.Displayed())
	assert.True(t, received.MenuGroupID().IsEqual(groupID))
	require.Len(t, received.MenuProducts(), 1)
	assert.Equal(t, int64(2), received.MenuProducts()[0].Quantity.Value())
}

func TestCreateMenu_NegativeQuantity(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	rec := do(e, http.MethodPost, "/api/menus", `{
		"name": "Two fried chickens",
		"price": 19000,
		"menuGroupId": "`+kernel.NewUUID().String()+`",
		"menuProducts": [{"productId": "`+kernel.NewUUID().String()+`", "quantity": -1}]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMenus_DisplayedFilter(t *testing.T) {
	menuID, groupID, productID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	var displayedOnly []bool
	e := newTestRouter(t, Handlers{
		GetMenus: queryFunc[queries.GetMenusQuery, queries.GetMenusQueryResponse](
			func(_ context.Context, q queries.GetMenusQuery) ([]queries.GetMenusQueryResponse, error) {
				displayedOnly = append(displayedOnly, q.DisplayedOnly())
				return []queries.GetMenusQueryResponse{{
					ID:           menuID,
					Name:         "Two fried chickens",
					Price:        decimal.NewFromInt(19000),
					MenuGroupID:  groupID,
					Displayed:    true,
					MenuProducts: []queries.GetMenusQueryMenuProduct{{ProductID: productID, Quantity: 2}},
				}}, nil
			}),
	}, nil)

	rec := do(e, http.MethodGet, "/api/menus?displayed=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodGet, "/api/menus?displayed=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodGet, "/api/menus", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []bool{true, false, false}, displayedOnly)

	var menus []Menu
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menus))
	require.Len(t, menus, 1)
	assert.Equal(t, menuID.Bytes(), menus[0].ID)
	assert.True(t, decimal.NewFromInt(19000).Equal(menus[0].Price))
	assert.Equal(t, productID.Bytes(), menus[0].MenuProducts[0].ProductID)
}

func TestGetMenus_InvalidFilter(t *testing.T) {
	e := newTestRouter(t, Handlers{}, nil)

	for _, filter := range []string{"maybe", "1x"} {
		rec := do(e, http.MethodGet, "/api/menus?displayed="+filter, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, "displayed=%q", filter)

		var body Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusBadRequest, body.Code)
	}
}

func TestGetUncompletedEatInOrders(t *testing.T) {
	orderID, tableID, menuID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	placedAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	e := newTestRouter(t, Handlers{
		GetUncompletedEatInOrders: queryFunc[queries.GetUncompletedEatInOrdersQuery, queries.GetUncompletedEatInOrdersQueryResponse](
			func(context.Context, queries.GetUncompletedEatInOrdersQuery) ([]queries.GetUncompletedEatInOrdersQueryResponse, error) {
				return []queries.GetUncompletedEatInOrdersQueryResponse{{
					ID:            orderID,
					OrderTableID:  tableID,
					Status:        eatinorder.Served,
					OrderDateTime: placedAt,
					OrderLineItems: []queries.GetUncompletedEatInOrdersQueryLineItem{
						{MenuID: menuID, Quantity: 1, Price: decimal.NewFromInt(19000)},
					},
				}}, nil
			}),
	}, nil)

	rec := do(e, http.MethodGet, "/api/eat-in-orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []EatInOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "SERVED", orders[0].Status)
	assert.True(t, placedAt.Equal(orders[0].OrderDateTime))
	assert.Equal(t, tableID.Bytes(), orders[0].OrderTableID)
}

func TestChangeNumberOfGuests(t *testing.T) {
	id := kernel.NewUUID()
	var received commands.ChangeOrderTableCommand
	e := newTestRouter(t, Handlers{
		ChangeOrderTable: commandFunc[commands.ChangeOrderTableCommand](
			func(_ context.Context, cmd commands.ChangeOrderTableCommand) error {
				received = cmd
				return nil
			}),
	}, nil)

	rec := do(e, http.MethodPut, "/api/order-tables/"+id.String()+"/number-of-guests", `{"numberOfGuests":4}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, received.OrderTableID().IsEqual(id))
	assert.Equal(t, 4, received.NumberOfGuests().Value())

	rec = do(e, http.MethodPut, "/api/order-tables/"+id.String()+"/number-of-guests", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPut, "/api/order-tables/"+id.String()+"/number-of-guests", `{"numberOfGuests":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderTableQRCode(t *testing.T) {
	id := kernel.NewUUID()
	var content string
	e := newTestRouter(t, Handlers{}, func(c string) ([]byte, error) {
		content = c
		return []byte("png"), nil
	})

	rec := do(e, http.MethodGet, "/api/order-tables/"+id.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "https://pos.example.com/order-tables/"+id.String(), content)
}
