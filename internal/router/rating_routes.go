package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/handler"
	"github.com/iliyamo/store-rating/internal/middleware"
	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/repository"
)

// RegisterRatings registers rating submission and lookup.  Both routes are
// open to every authenticated role; the ledger itself scopes the write to
// the caller's subject, so no further gating is needed.
func RegisterRatings(e *echo.Echo, r *handler.RatingHandler, jwtSecret string, denylist *repository.TokenDenylist) {
	g := e.Group(
		"/ratings",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleNormalUser, model.RoleStoreOwner, model.RoleSystemAdmin),
	)
	g.POST("/:storeId", r.SubmitRating)
	g.GET("/:storeId/user", r.MyRating)
}
