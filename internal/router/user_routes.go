package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/handler"
	"github.com/iliyamo/store-rating/internal/middleware"
	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/repository"
)

// RegisterUsers registers the user-catalog endpoints.  Creating and
// listing users is SYSTEM_ADMIN only; the password change is open to every
// authenticated role since it only ever touches the caller's own account.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string, denylist *repository.TokenDenylist) {
	admin := e.Group(
		"/users",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleSystemAdmin),
	)
	admin.POST("", u.CreateUser)
	admin.GET("", u.ListUsers)

	// PUT /users/password sits under the same prefix but with the broader
	// role set; it gets its own group so the admin gate above does not
	// apply to it.
	self := e.Group(
		"/users/password",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleNormalUser, model.RoleStoreOwner, model.RoleSystemAdmin),
	)
	self.PUT("", u.ChangePassword)
}
