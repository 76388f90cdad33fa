package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/config"
)

// newContext builds an echo context around a JSON body for direct handler
// invocation.  Handlers under test here reject input before any repository
// is touched, so nil repositories are safe.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	w := httptest.NewRecorder()
	return e.NewContext(req, w), w
}

func TestHealth(t *testing.T) {
	c, w := newContext(http.MethodGet, "/healthz", "")
	if err := Health(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("expected 200 ok, got %d %q", w.Code, w.Body.String())
	}
}

func TestSignup_RejectsShortNameBeforeStorage(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil, nil) // nil repo: must not be reached
	body := `{"name":"` + strings.Repeat("a", 19) + `","email":"u@example.com","address":"somewhere","password":"Abcd@123"}`
	c, w := newContext(http.MethodPost, "/auth/signup", body)
	if err := h.Signup(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 19-char name, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "name") {
		t.Errorf("expected field-level error naming 'name', got %s", w.Body.String())
	}
}

func TestSignup_CollectsAllFieldErrors(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil, nil)
	body := `{"name":"short","email":"not-an-email","address":"ok","password":"weak"}`
	c, w := newContext(http.MethodPost, "/auth/signup", body)
	if err := h.Signup(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	for _, field := range []string{"name", "email", "password"} {
		if !strings.Contains(w.Body.String(), field) {
			t.Errorf("expected error for field %q, got %s", field, w.Body.String())
		}
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil, nil)
	c, w := newContext(http.MethodPost, "/auth/login", `{"email":"","password":""}`)
	if err := h.Login(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty credentials, got %d", w.Code)
	}
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	h := NewUserHandler(config.Config{}, nil)
	body := `{"name":"` + strings.Repeat("a", 25) + `","email":"u@example.com","address":"x","password":"Abcd@123","role":"SUPERUSER"}`
	c, w := newContext(http.MethodPost, "/users", body)
	if err := h.CreateUser(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "role") {
		t.Errorf("expected error naming 'role', got %s", w.Body.String())
	}
}

func TestChangePassword_RejectsWeakNewPassword(t *testing.T) {
	h := NewUserHandler(config.Config{}, nil)
	c, w := newContext(http.MethodPut, "/users/password", `{"oldPassword":"Old@1234","newPassword":"weak"}`)
	if err := h.ChangePassword(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak new password, got %d", w.Code)
	}
}

func TestSubmitRating_RejectsOutOfRangeValue(t *testing.T) {
	h := NewRatingHandler(nil)
	for _, v := range []string{"0", "6", "-1"} {
		c, w := newContext(http.MethodPost, "/ratings/1", `{"rating":`+v+`}`)
		c.SetParamNames("storeId")
		c.SetParamValues("1")
		if err := h.SubmitRating(c); err != nil {
			t.Fatal(err)
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for rating=%s, got %d", v, w.Code)
		}
	}
}

func TestSubmitRating_RejectsBadStoreID(t *testing.T) {
	h := NewRatingHandler(nil)
	c, w := newContext(http.MethodPost, "/ratings/abc", `{"rating":3}`)
	c.SetParamNames("storeId")
	c.SetParamValues("abc")
	if err := h.SubmitRating(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric store id, got %d", w.Code)
	}
}

func TestOwnerDashboard_SubjectMismatchForbidden(t *testing.T) {
	h := NewStoreHandler(nil, nil) // repos must not be reached on mismatch
	c, w := newContext(http.MethodGet, "/stores/owner/7/dashboard", "")
	c.SetParamNames("ownerId")
	c.SetParamValues("7")
	c.Set("user_id", float64(3)) // token subject != path owner
	c.Set("role", "STORE_OWNER")
	if err := h.OwnerDashboard(c); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for subject mismatch, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPageParams_DefaultsAndCaps(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/stores", "")
	page, limit := pageParams(c)
	if page != 1 || limit != 20 {
		t.Errorf("expected defaults (1,20), got (%d,%d)", page, limit)
	}

	c, _ = newContext(http.MethodGet, "/stores?page=3&limit=500", "")
	page, limit = pageParams(c)
	if page != 3 || limit != 100 {
		t.Errorf("expected (3,100), got (%d,%d)", page, limit)
	}
}

func TestGetUserID_ClaimShapes(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/", "")
	c.Set("user_id", float64(12)) // JWT numbers decode as float64
	if id, err := getUserID(c); err != nil || id != 12 {
		t.Errorf("float64 claim: got (%d,%v)", id, err)
	}
	c.Set("user_id", "34")
	if id, err := getUserID(c); err != nil || id != 34 {
		t.Errorf("string claim: got (%d,%v)", id, err)
	}
	c.Set("user_id", nil)
	if _, err := getUserID(c); err == nil {
		t.Error("expected error for missing claim")
	}
}
