package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/store-rating/internal/handler"    // handlers that implement business logic
	"github.com/iliyamo/store-rating/internal/middleware" // middleware for JWT authentication and role enforcement
	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/repository"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this to verify that the
	// service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Signup and login are open; logout revokes the
// presented token and therefore needs no middleware of its own (the
// handler validates the token itself); /me demonstrates a protected
// endpoint open to every authenticated role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, denylist *repository.TokenDenylist) {
	g := e.Group("/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	// Every known role may call /me.  JWTAuth always runs ahead of
	// RequireRole so that requests without a valid token get 401, not 403.
	auth := e.Group("",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleNormalUser, model.RoleStoreOwner, model.RoleSystemAdmin),
	)
	auth.GET("/me", a.Me)
}
