package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/config"
	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/repository"
	"github.com/iliyamo/store-rating/internal/utils"
)

// UserHandler bundles dependencies for user-catalog endpoints: admin user
// creation and listing, plus the self-service password change.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

type changePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateUser lets an administrator create an account with any role.  The
// same account policies apply as on signup; the role must parse to one of
// the known values.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	errs := validateAccount(req.Name, req.Email, req.Address, req.Password)
	role, ok := model.ParseRole(req.Role)
	if !ok {
		errs = append(errs, utils.FieldError{Field: "role", Message: "role must be NORMAL_USER, STORE_OWNER or SYSTEM_ADMIN"})
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, req.Address, role, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": uid})
}

// ListUsers is the admin catalog view: substring filter over name, email,
// address and role, whitelisted sorting, offset pagination with the full
// filtered count, and the owner aggregate inlined for STORE_OWNER rows.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)
	q := repository.UserSearchQuery{
		Filter:    strings.TrimSpace(c.QueryParam("filter")),
		SortKey:   c.QueryParam("sort"),
		SortOrder: c.QueryParam("order"),
		Page:      page,
		PageSize:  limit,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, total, err := h.Users.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"users": rows,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// ChangePassword overwrites the caller's password hash after proof of the
// current one.  The new password must satisfy the complexity policy; the
// repository performs the verify-and-overwrite inside one transaction.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.OldPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "oldPassword required"})
	}
	if e := utils.ValidatePassword(req.NewPassword); e != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": []utils.FieldError{*e}})
	}

	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.ChangePassword(ctx, uid, req.OldPassword, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		switch err {
		case repository.ErrBadOldPassword:
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Incorrect old password"})
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password updated"})
}
