package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the echo instance serving the API, its contract and the swagger UI.
func NewRouter(s *Server, contract *openapi3.T, logLevel log.Lvl) (*echo.Echo, error) {
	if err := registerSwagger(contract); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel)

	e.Use(middleware.Recover())
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{echo.HeaderContentType},
	}).Handler))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openAPISpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id/price", s.ChangeProductPrice)

	api.GET("/menu-groups", s.GetMenuGroups)
	api.POST("/menu-groups", s.CreateMenuGroup)

	api.GET("/menus", s.GetMenus)
	api.POST("/menus", s.CreateMenu)
	api.PUT("/menus/:id/price", s.ChangeMenuPrice)
	api.PUT("/menus/:id/display", s.DisplayMenu)
	api.PUT("/menus/:id/hide", s.HideMenu)

	api.GET("/order-tables", s.GetOrderTables)
	api.POST("/order-tables", s.CreateOrderTable)
	api.PUT("/order-tables/:id/sit", s.SitOrderTable)
	api.PUT("/order-tables/:id/clear", s.ClearOrderTable)
	api.PUT("/order-tables/:id/number-of-guests", s.ChangeNumberOfGuests)
	api.GET("/order-tables/:id/qr", s.GetOrderTableQRCode)

	api.GET("/eat-in-orders", s.GetUncompletedEatInOrders)
	api.POST("/eat-in-orders", s.CreateEatInOrder)
	api.PUT("/eat-in-orders/:id/accept", s.AcceptEatInOrder)
	api.PUT("/eat-in-orders/:id/serve", s.ServeEatInOrder)
	api.PUT("/eat-in-orders/:id/complete", s.CompleteEatInOrder)

	return e, nil
}
