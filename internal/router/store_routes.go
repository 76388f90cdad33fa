package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/store-rating/internal/config"
	"github.com/iliyamo/store-rating/internal/handler"
	"github.com/iliyamo/store-rating/internal/middleware"
	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/repository"
)

// RegisterStores registers the store catalog and the owner dashboard.
// Store creation is SYSTEM_ADMIN only.  The listing is readable by every
// authenticated role and is the hottest read path, so it additionally
// carries the rate limiter and the response cache.  The dashboard role
// gate admits STORE_OWNER and SYSTEM_ADMIN; the handler then matches the
// caller's subject against the path parameter.
func RegisterStores(e *echo.Echo, s *handler.StoreHandler, jwtSecret string, denylist *repository.TokenDenylist,
	rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {

	admin := e.Group(
		"/stores",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleSystemAdmin),
	)
	admin.POST("", s.CreateStore)

	list := e.Group(
		"/stores",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleNormalUser, model.RoleStoreOwner, model.RoleSystemAdmin),
		middleware.RateLimit(rlCfg, rdb),
		middleware.ResponseCache(cacheCfg, rdb),
	)
	list.GET("", s.ListStores)

	owner := e.Group(
		"/stores/owner",
		middleware.JWTAuth(jwtSecret, denylist),
		middleware.RequireRole(model.RoleStoreOwner, model.RoleSystemAdmin),
	)
	owner.GET("/:ownerId/dashboard", s.OwnerDashboard)
}
