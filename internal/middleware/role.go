package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/iliyamo/store-rating/internal/model"
)

// RequireRole returns a middleware function that enforces that the
// authenticated user holds one of the specified roles.  The allowed set is
// expressed in the closed model.Role type, so every gate in the router
// names compile-time-checked constants rather than free-form strings.  If
// the user's role is not in the allowed set, the request is aborted with a
// 403 Forbidden response.  It assumes JWTAuth has already run and stored
// the role claim in the context under "role" — this gate must never be
// registered ahead of it, or unauthenticated requests would see 403 where
// 401 is correct.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    // Build a set of allowed role claim values for constant-time lookups.
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r.String()] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // The claim should have been stored by JWTAuth as a string.
            // If it is absent or of the wrong type, treat it as missing.
            v := c.Get("role")
            role, ok := v.(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
