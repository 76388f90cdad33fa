package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/utils"
)

const testSecret = "middleware_test_secret"

// newProtectedServer wires a single GET /probe route behind JWTAuth and an
// optional role gate, mirroring how the router composes the two.
func newProtectedServer(roles ...model.Role) *echo.Echo {
	e := echo.New()
	mws := []echo.MiddlewareFunc{JWTAuth(testSecret, nil)}
	if len(roles) > 0 {
		mws = append(mws, RequireRole(roles...))
	}
	g := e.Group("", mws...)
	g.GET("/probe", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	})
	return e
}

func request(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingToken(t *testing.T) {
	e := newProtectedServer()
	if w := request(e, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	e := newProtectedServer()
	if w := request(e, "this.is.garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed token, got %d", w.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("some_other_secret", 1, model.RoleNormalUser, 5)
	if err != nil {
		t.Fatal(err)
	}
	e := newProtectedServer()
	if w := request(e, at.Token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token signed with wrong secret, got %d", w.Code)
	}
}

func TestJWTAuth_ValidTokenSetsIdentity(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 99, model.RoleSystemAdmin, 5)
	if err != nil {
		t.Fatal(err)
	}
	e := newProtectedServer()
	w := request(e, at.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !contains(body, "99") || !contains(body, "SYSTEM_ADMIN") {
		t.Errorf("expected identity in response, got %s", body)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	// A NORMAL_USER token against an admin-only route must yield 403 —
	// the token itself is perfectly valid.
	at, err := utils.NewAccessToken(testSecret, 5, model.RoleNormalUser, 5)
	if err != nil {
		t.Fatal(err)
	}
	e := newProtectedServer(model.RoleSystemAdmin)
	if w := request(e, at.Token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for insufficient role, got %d", w.Code)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 5, model.RoleStoreOwner, 5)
	if err != nil {
		t.Fatal(err)
	}
	e := newProtectedServer(model.RoleStoreOwner, model.RoleSystemAdmin)
	if w := request(e, at.Token); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for allowed role, got %d", w.Code)
	}
}

func TestOrdering_UnauthenticatedIs401Not403(t *testing.T) {
	// Even with a role gate in the chain, a request without a token must
	// fail in JWTAuth with 401 before the gate can answer 403.
	e := newProtectedServer(model.RoleSystemAdmin)
	if w := request(e, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated request, got %d", w.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 1, model.RoleNormalUser, -1)
	if err != nil {
		t.Fatal(err)
	}
	e := newProtectedServer()
	if w := request(e, at.Token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
