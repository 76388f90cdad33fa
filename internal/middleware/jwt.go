package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/store-rating/internal/repository"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject and role claims into the request context.
// The provided secret must match the one used when issuing tokens.  The
// denylist is consulted after signature validation so that a logged-out
// token is rejected even before its exp claim lapses; a nil denylist skips
// that check.  This middleware wraps every protected route so handlers can
// read the authenticated identity via c.Get("user_id") and c.Get("role").
// Any failure here is a 401 — the role gate only ever sees requests whose
// identity already checked out.
func JWTAuth(secret string, denylist *repository.TokenDenylist) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header is "Bearer " followed by the JWT.  Anything
            // else means the request carries no usable credential.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse with HS256 enforced.  The callback supplies the signing
            // key and rejects any other algorithm; jwt.Parse also verifies
            // the exp claim, so an expired token fails here.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            // A structurally valid, correctly signed token may still have
            // been revoked by logout.
            if jti, _ := claims["jti"].(string); denylist.IsRevoked(c.Request().Context(), jti) {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token revoked"})
            }

            // Expose subject and role for downstream middleware and
            // handlers.  Type assertions are left to the consumers.
            c.Set("user_id", claims["sub"])
            c.Set("role", claims["role"])
            return next(c)
        }
    }
}
