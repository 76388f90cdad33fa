package repository

import (
	"context"
	"database/sql"
)

// StoreRepo provides persistence for the store catalog.  Stores are
// created by administrators and never updated or deleted; everything else
// about them is read-side (search, averages, the owner dashboard).
type StoreRepo struct{ DB *sql.DB }

func NewStoreRepo(db *sql.DB) *StoreRepo { return &StoreRepo{DB: db} }

// Create inserts a store and returns its ID.  ownerID may be nil for a
// store with no assigned owner; a non-nil value is only checked at the
// foreign-key level.
func (r *StoreRepo) Create(ctx context.Context, name, email, address string, ownerID *uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO stores (name, email, address, owner_id) VALUES (?,?,?,?)",
		name, email, address, ownerID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// OwnedStoreRow is one store on the owner dashboard with its live average.
// AvgRating is the zero-sentinel 0.00 when the store has no ratings.
type OwnedStoreRow struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	AvgRating float64 `json:"avg_rating"`
}

// StoreRaterRow is one rating across an owner's stores: who rated which
// store and with what value.
type StoreRaterRow struct {
	UserID  uint64 `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	StoreID uint64 `json:"store_id"`
	Rating  uint8  `json:"rating"`
}

// OwnerStores returns all stores owned by ownerID with their averages
// computed live against the ratings table.
func (r *StoreRepo) OwnerStores(ctx context.Context, ownerID uint64) ([]OwnedStoreRow, error) {
	const q = `SELECT s.id, s.name, s.address,
			IFNULL(ROUND(AVG(r.rating), 2), 0) AS avg_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.owner_id = ?
		GROUP BY s.id`
	rows, err := r.DB.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []OwnedStoreRow{}
	for rows.Next() {
		var d OwnedStoreRow
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.AvgRating); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// OwnerRatings returns the flattened list of ratings across all stores of
// ownerID, newest first, joined with the rating user's name and email.
func (r *StoreRepo) OwnerRatings(ctx context.Context, ownerID uint64) ([]StoreRaterRow, error) {
	const q = `SELECT r.user_id, u.name, u.email, r.store_id, r.rating
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		JOIN stores s ON s.id = r.store_id
		WHERE s.owner_id = ?
		ORDER BY r.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoreRaterRow{}
	for rows.Next() {
		var d StoreRaterRow
		if err := rows.Scan(&d.UserID, &d.Name, &d.Email, &d.StoreID, &d.Rating); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
