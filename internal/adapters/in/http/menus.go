package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetMenuGroups handles GET /api/menu-groups.
func (s *Server) GetMenuGroups(ctx echo.Context) error {
	groups, err := s.handlers.GetMenuGroups.Handle(ctx.Request().Context(), queries.NewGetMenuGroupsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]MenuGroup, len(groups))
	for i, g := range groups {
		response[i] = MenuGroup{ID: g.ID.Bytes(), Name: g.Name}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuGroup handles POST /api/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var body NewMenuGroup
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateMenuGroupCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateMenuGroup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.created(ctx, id)
}

// GetMenus handles GET /api/menus?displayed=true.
func (s *Server) GetMenus(ctx echo.Context) error {
	var displayedOnly *bool
	err := runtime.BindQueryParameter("form", true, false, "displayed", ctx.QueryParams(), &displayedOnly)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("displayed", err))
	}

	menus, err := s.handlers.GetMenus.Handle(ctx.Request().Context(), queries.NewGetMenusQuery(displayedOnly != nil && *displayedOnly))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Menu, len(menus))
	for i, m := range menus {
		products := make([]MenuProduct, len(m.MenuProducts))
		for j, mp := range m.MenuProducts {
			products[j] = MenuProduct{ProductID: mp.ProductID.Bytes(), Quantity: mp.Quantity}
		}
		response[i] = Menu{
			ID:           m.ID.Bytes(),
			Name:         m.Name,
			Price:        m.Price,
			MenuGroupID:  m.MenuGroupID.Bytes(),
			Displayed:    m.Displayed,
			MenuProducts: products,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var body NewMenu
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCreateMenuCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.created(ctx, id)
}

func newCreateMenuCommand(body NewMenu) (commands.CreateMenuCommand, error) {
	price, err := kernel.NewPriceFromNullable(kernel.SubjectMenu, body.Price)
	if err != nil {
		return commands.CreateMenuCommand{}, err
	}

	groupID, err := toKernelID(body.MenuGroupID)
	if err != nil {
		return commands.CreateMenuCommand{}, err
	}

	lines := make([]commands.MenuProductLine, 0, len(body.MenuProducts))
	for _, mp := range body.MenuProducts {
		productID, idErr := toKernelID(mp.ProductID)
		if idErr != nil {
			return commands.CreateMenuCommand{}, idErr
		}
		quantity, qErr := kernel.NewQuantity(kernel.SubjectMenuProduct, mp.Quantity)
		if qErr != nil {
			return commands.CreateMenuCommand{}, qErr
		}
		lines = append(lines, commands.MenuProductLine{ProductID: productID, Quantity: quantity})
	}

	return commands.NewCreateMenuCommand(body.Name, price, groupID, body.Displayed, lines)
}

// ChangeMenuPrice handles PUT /api/menus/{id}/price.
func (s *Server) ChangeMenuPrice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body PriceChange
	if err = s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	price, err := kernel.NewPriceFromNullable(kernel.SubjectMenu, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeMenuPriceCommand(id, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeMenuPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DisplayMenu handles PUT /api/menus/{id}/display.
func (s *Server) DisplayMenu(ctx echo.Context) error {
	return s.changeMenuDisplay(ctx, commands.NewDisplayMenuCommand)
}

// HideMenu handles PUT /api/menus/{id}/hide.
func (s *Server) HideMenu(ctx echo.Context) error {
	return s.changeMenuDisplay(ctx, commands.NewHideMenuCommand)
}

func (s *Server) changeMenuDisplay(
	ctx echo.Context,
	newCommand func(kernel.UUID) (commands.ChangeMenuDisplayCommand, error),
) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeMenuDisplay.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
