package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/store-rating/internal/queue"
	"github.com/iliyamo/store-rating/internal/repository"
	publisher "github.com/iliyamo/store-rating/internal/service"
)

// RatingHandler bundles dependencies for rating submission and lookup.
type RatingHandler struct {
	Ratings *repository.RatingRepo
}

func NewRatingHandler(r *repository.RatingRepo) *RatingHandler {
	return &RatingHandler{Ratings: r}
}

type submitRatingReq struct {
	Rating int `json:"rating"`
}

// SubmitRating records or overwrites the caller's rating of a store.  The
// write is a single atomic upsert against the (user, store) unique key;
// the response reports whether the rating was created or updated and
// returns the store's fresh average.  A rating.submitted event is
// published best-effort — a broker outage never fails the request.
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("storeId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid store id"})
	}
	var req submitRatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid rating"})
	}

	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	created, err := h.Ratings.Upsert(ctx, userID, storeID, uint8(req.Rating))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save rating failed"})
	}
	avg, err := h.Ratings.AverageFor(ctx, storeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	action := "updated"
	message := "Rating updated"
	if created {
		action = "created"
		message = "Rating submitted"
	}

	_ = publisher.PublishRatingSubmitted(ctx, queue.RatingSubmittedEvent{
		UserID:      userID,
		StoreID:     storeID,
		Rating:      uint8(req.Rating),
		Action:      action,
		AvgRating:   avg,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":    message,
		"action":     action,
		"avg_rating": avg,
	})
}

// MyRating returns the caller's current rating of a store, or null when
// they have not rated it.  Absence is data here, not an error.
func (h *RatingHandler) MyRating(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("storeId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid store id"})
	}
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.Ratings.GetUserRating(ctx, userID, storeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rating": v})
}
