package http

import (
	"context"
	"net/http"
	"strings"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// CreateHandler executes a command that creates an aggregate and returns its ID.
type CreateHandler[C any] interface {
	Handle(ctx context.Context, cmd C) (kernel.UUID, error)
}

// CommandHandler executes a command that changes an existing aggregate.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler executes a read-only query.
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) ([]R, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateProduct      CreateHandler[commands.CreateProductCommand]
	ChangeProductPrice CommandHandler[commands.ChangeProductPriceCommand]
	GetProducts        QueryHandler[queries.GetProductsQuery, queries.GetProductsQueryResponse]

	CreateMenuGroup CreateHandler[commands.CreateMenuGroupCommand]
	GetMenuGroups   QueryHandler[queries.GetMenuGroupsQuery, queries.GetMenuGroupsQueryResponse]

	CreateMenu        CreateHandler[commands.CreateMenuCommand]
	ChangeMenuPrice   CommandHandler[commands.ChangeMenuPriceCommand]
	ChangeMenuDisplay CommandHandler[commands.ChangeMenuDisplayCommand]
	GetMenus          QueryHandler[queries.GetMenusQuery, queries.GetMenusQueryResponse]

	CreateOrderTable CreateHandler[commands.CreateOrderTableCommand]
	ChangeOrderTable CommandHandler[commands.ChangeOrderTableCommand]
	GetOrderTables   QueryHandler[queries.GetOrderTablesQuery, queries.GetOrderTablesQueryResponse]

	CreateEatInOrder          CreateHandler[commands.CreateEatInOrderCommand]
	ChangeEatInOrderStatus    CommandHandler[commands.ChangeEatInOrderStatusCommand]
	GetUncompletedEatInOrders QueryHandler[queries.GetUncompletedEatInOrdersQuery, queries.GetUncompletedEatInOrdersQueryResponse]
}

// Server handles HTTP requests by translating them into commands and queries.
type Server struct {
	handlers      Handlers
	qrCodes       ports.QRCodeGenerator
	publicBaseURL string
	logger        *zap.Logger
}

// NewServer creates a new HTTP server. publicBaseURL is the address guests reach the
// restaurant at; table QR codes link below it.
func NewServer(handlers Handlers, qrCodes ports.QRCodeGenerator, publicBaseURL string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		handlers:      handlers,
		qrCodes:       qrCodes,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *Server) created(ctx echo.Context, id kernel.UUID) error {
	ctx.Response().Header().Set(echo.HeaderLocation, ctx.Request().URL.Path+"/"+id.String())
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// pathID reads the {id} path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	var id uuid.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return kernel.UUIDFromGoogle(id)
}
