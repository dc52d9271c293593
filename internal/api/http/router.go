package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/api/http/handlers"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/auth"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Stores         *handlers.StoresHandler
	Billboards     *handlers.BillboardsHandler
	Categories     *handlers.CategoriesHandler
	Sizes          *handlers.SizesHandler
	Colors         *handlers.ColorsHandler
	Products       *handlers.ProductsHandler
	Orders         *handlers.OrdersHandler
	Metrics        *handlers.MetricsHandler
	AuthMiddleware *auth.Middleware
	StoreGuard     *auth.StoreGuard
}

// RegisterRoutes wires HTTP routes. Three surfaces share the app: public
// auth endpoints, the unauthenticated storefront, and the guarded store
// admin scope behind bearer auth plus the ownership guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/admin/metrics",
		cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.UserRoleAdmin),
		cfg.Metrics.Overview)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/signin", cfg.Auth.Signin)
	authGroup.Post("/forgot-password", cfg.Auth.ForgotPassword)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)
	authGroup.Post("/verify-email", cfg.Auth.VerifyEmail)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	// the public guard rejects missing and soft-deleted stores up front
	storefront := app.Group("/storefront/:storeId", cfg.StoreGuard.HandlePublic)
	storefront.Get("", cfg.Stores.PublicGet)
	storefront.Get("/billboards", cfg.Billboards.PublicList)
	storefront.Get("/categories", cfg.Categories.PublicList)
	storefront.Get("/sizes", cfg.Sizes.PublicList)
	storefront.Get("/colors", cfg.Colors.PublicList)
	storefront.Get("/products", cfg.Products.PublicList)
	storefront.Get("/products/:id", cfg.Products.PublicGet)
	storefront.Post("/checkout", cfg.Orders.Checkout)

	stores := app.Group("/stores", cfg.AuthMiddleware.Handle)
	stores.Post("", cfg.Stores.Create)
	stores.Get("", cfg.Stores.List)

	// everything below proves ownership of :storeId before the handler runs
	scoped := stores.Group("/:storeId", cfg.StoreGuard.Handle)
	scoped.Get("", cfg.Stores.Get)
	scoped.Patch("", cfg.Stores.Update)
	scoped.Delete("", cfg.Stores.Delete)

	scoped.Get("/billboards", cfg.Billboards.List)
	scoped.Post("/billboards", cfg.Billboards.Create)
	scoped.Patch("/billboards/:id", cfg.Billboards.Update)
	scoped.Delete("/billboards/:id", cfg.Billboards.Delete)

	scoped.Get("/categories", cfg.Categories.List)
	scoped.Post("/categories", cfg.Categories.Create)
	scoped.Patch("/categories/:id", cfg.Categories.Update)
	scoped.Delete("/categories/:id", cfg.Categories.Delete)

	scoped.Get("/sizes", cfg.Sizes.List)
	scoped.Post("/sizes", cfg.Sizes.Create)
	scoped.Patch("/sizes/:id", cfg.Sizes.Update)
	scoped.Delete("/sizes/:id", cfg.Sizes.Delete)

	scoped.Get("/colors", cfg.Colors.List)
	scoped.Post("/colors", cfg.Colors.Create)
	scoped.Patch("/colors/:id", cfg.Colors.Update)
	scoped.Delete("/colors/:id", cfg.Colors.Delete)

	scoped.Get("/products", cfg.Products.List)
	scoped.Post("/products", cfg.Products.Create)
	scoped.Patch("/products/:id", cfg.Products.Update)
	scoped.Delete("/products/:id", cfg.Products.Delete)

	scoped.Get("/orders", cfg.Orders.List)
	scoped.Post("/orders/:id/pay", cfg.Orders.MarkPaid)
}
