package repository

import (
	"context"
	"database/sql"
)

// RatingRepo enforces the at-most-one-rating-per-(user,store) invariant.
// The invariant lives in the uq_ratings_user_store unique key; the
// repository only ever issues a single atomic insert-or-update, never a
// check-then-write pair, so concurrent submissions from the same user
// cannot produce duplicate rows.
type RatingRepo struct{ DB *sql.DB }

func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{DB: db} }

// Upsert records value as userID's current rating of storeID.  The
// returned flag reports whether a new row was created (first submission)
// as opposed to an existing one being overwritten.  MySQL reports one
// affected row for an insert and two for a duplicate-key update; zero
// means the same value was resubmitted, which counts as an update.
func (r *RatingRepo) Upsert(ctx context.Context, userID, storeID uint64, value uint8) (created bool, err error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO ratings (user_id, store_id, rating)
		 VALUES (?,?,?)
		 ON DUPLICATE KEY UPDATE rating = VALUES(rating), updated_at = NOW()`,
		userID, storeID, value)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// GetUserRating returns the caller's rating of a store, or nil when the
// caller has not rated it.  Absence is not an error.
func (r *RatingRepo) GetUserRating(ctx context.Context, userID, storeID uint64) (*uint8, error) {
	var v uint8
	err := r.DB.QueryRowContext(ctx,
		"SELECT rating FROM ratings WHERE user_id=? AND store_id=? LIMIT 1",
		userID, storeID).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// AverageFor computes the live mean rating of one store rounded to 2
// decimals.  A store with no ratings yields 0, the zero-sentinel — the
// rating domain is [1,5], so 0 can only ever mean "no ratings".
func (r *RatingRepo) AverageFor(ctx context.Context, storeID uint64) (float64, error) {
	var avg float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT IFNULL(ROUND(AVG(rating), 2), 0) FROM ratings WHERE store_id=?",
		storeID).Scan(&avg)
	return avg, err
}

// AverageForOwner computes the mean over the union of ratings across all
// stores owned by ownerID.  Unlike AverageFor it returns nil rather than a
// zero-sentinel when the owner has no stores or none of them is rated.
func (r *RatingRepo) AverageForOwner(ctx context.Context, ownerID uint64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.DB.QueryRowContext(ctx,
		`SELECT ROUND(AVG(r.rating), 2)
		 FROM ratings r
		 JOIN stores s ON s.id = r.store_id
		 WHERE s.owner_id = ?`,
		ownerID).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
