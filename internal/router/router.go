package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/dinosaur-museum/internal/catalog"
	"github.com/iliyamo/dinosaur-museum/internal/handler"    // handlers implementing each endpoint
	"github.com/iliyamo/dinosaur-museum/internal/middleware" // JWT, role, cache and rate limit middleware
	"github.com/iliyamo/dinosaur-museum/internal/utils"
)

// RegisterRoutes registers the health and readiness checks.  They bypass cache and rate limit.
func RegisterRoutes(e *echo.Echo, cat *catalog.Catalog) {
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Ready(cat))
}

// RegisterDinosaurs registers the read-only dinosaur queries.  cache wraps
// every route of the group.
func RegisterDinosaurs(e *echo.Echo, d *handler.DinosaurHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/dinosaurs", cache)
	g.GET("", d.List)
	g.GET("/longest", d.Longest)
	// registered before /:id so "alive" is never taken for an id
	g.GET("/alive", d.AliveAt)
	g.GET("/:id/description", d.Describe)
}

// RegisterTickets registers pricing and receipts.  The price list is
// cached like the dinosaur data; POST routes are rate limited instead.
func RegisterTickets(e *echo.Echo, t *handler.TicketHandler, cache, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/tickets")
	g.GET("/prices", t.Prices, cache)
	g.POST("/price", t.Price, limit)
	g.POST("/receipt", t.Receipt, limit)
}

// RegisterAdmin registers the login endpoint and the JWT-protected
// catalog management routes.  loginLimit is the stricter login bucket
// that slows down password guessing.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string, loginLimit echo.MiddlewareFunc) {
	e.POST("/v1/admin/login", a.Login, loginLimit)

	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(utils.RoleAdmin))
	g.POST("/catalog/reload", a.Reload)
}
