package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used in getUserID
    "strconv" // strconv converts strings to numeric types

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/iliyamo/store-rating/internal/model"
)

// getUserID extracts the authenticated subject from echo.Context and
// converts it to uint64.  JWT numeric claims decode as float64, but the
// value may also arrive as a string or integer depending on how the token
// was produced, so all the plausible shapes are handled.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// getRole extracts the authenticated role claim from echo.Context.
func getRole(c echo.Context) (model.Role, bool) {
    if s, ok := c.Get("role").(string); ok {
        return model.ParseRole(s)
    }
    return "", false
}

// pageParams reads page/limit query parameters with defaults and caps.
func pageParams(c echo.Context) (page, limit int) {
    page, _ = strconv.Atoi(c.QueryParam("page"))
    if page < 1 {
        page = 1
    }
    limit, _ = strconv.Atoi(c.QueryParam("limit"))
    if limit < 1 {
        limit = 20
    }
    if limit > 100 {
        limit = 100
    }
    return page, limit
}
