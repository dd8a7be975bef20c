package devserver

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteConfig bundles handler dependencies.
type RouteConfig struct {
	Clients        *ClientsHandler
	Products       *ProductsHandler
	Orders         *OrdersHandler
	AuthMiddleware *AuthMiddleware
}

// RegisterRoutes wires the endpoints the POS client uses.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", Health)
	app.Get("/", Health)

	v1 := app.Group("/v1")

	clients := v1.Group("/client")
	clients.Get("/", cfg.Clients.Login)
	clients.Post("/", cfg.Clients.Register)

	products := v1.Group("/product")
	products.Get("/", cfg.Products.List)
	products.Post("/", cfg.AuthMiddleware.Handle, cfg.Products.Create)

	orders := v1.Group("/order", cfg.AuthMiddleware.Handle)
	orders.Get("/", cfg.Orders.List)
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/client/:id", cfg.Orders.ByClient)
}

// New builds the fiber app over store.
func New(cfg *Config, store *Store, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "posclient-devserver",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logger),
	})
	RegisterMiddlewares(app, logger)

	tokens := NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	RegisterRoutes(app, RouteConfig{
		Clients:        NewClientsHandler(store, tokens, cfg.BcryptCost, logger),
		Products:       NewProductsHandler(store),
		Orders:         NewOrdersHandler(store, logger),
		AuthMiddleware: NewAuthMiddleware(tokens),
	})
	return app
}
