package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/repository"
)

// StoreHandler bundles dependencies for the store catalog and the owner
// dashboard.
type StoreHandler struct {
	Stores  *repository.StoreRepo
	Ratings *repository.RatingRepo
}

func NewStoreHandler(s *repository.StoreRepo, r *repository.RatingRepo) *StoreHandler {
	return &StoreHandler{Stores: s, Ratings: r}
}

type createStoreReq struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	OwnerID *uint64 `json:"owner_id"`
}

// CreateStore lets an administrator add a store to the directory, with an
// optional owner reference.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Stores.Create(ctx, req.Name, req.Email, req.Address, req.OwnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create store failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// ListStores is the directory view every authenticated role can read:
// substring filter over name or address, whitelisted sorting including by
// average rating, offset pagination with the full filtered count.  Each
// row carries the live average and the caller's own rating.
func (h *StoreHandler) ListStores(c echo.Context) error {
	callerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	page, limit := pageParams(c)
	q := repository.StoreSearchQuery{
		Filter:    strings.TrimSpace(c.QueryParam("filter")),
		SortKey:   c.QueryParam("sort"),
		SortOrder: c.QueryParam("order"),
		Page:      page,
		PageSize:  limit,
		CallerID:  callerID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, total, err := h.Stores.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"stores": rows,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// OwnerDashboard returns all stores owned by :ownerId with their live
// averages, the owner's overall average across those stores, and the
// flattened rater list, newest rating first.  The role gate admits
// STORE_OWNER and SYSTEM_ADMIN; on top of that a non-admin caller's
// subject must equal the path parameter: holding the owner role grants
// no view into another owner's stores.
func (h *StoreHandler) OwnerDashboard(c echo.Context) error {
	ownerID, err := strconv.ParseUint(c.Param("ownerId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid owner id"})
	}

	callerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if role, _ := getRole(c); role != model.RoleSystemAdmin && callerID != ownerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stores, err := h.Stores.OwnerStores(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(stores) == 0 {
		return c.JSON(http.StatusOK, echo.Map{
			"stores":         []repository.OwnedStoreRow{},
			"ratings":        []repository.StoreRaterRow{},
			"overall_rating": nil,
		})
	}

	ratings, err := h.Stores.OwnerRatings(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	overall, err := h.Ratings.AverageForOwner(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stores":         stores,
		"ratings":        ratings,
		"overall_rating": overall,
	})
}
