package repository

import (
	"context"
	"strings"
)

// StoreSearchQuery defines filter, sort and pagination for the store
// listing.  CallerID is the authenticated user whose own rating is
// resolved per row.
type StoreSearchQuery struct {
	Filter    string
	SortKey   string
	SortOrder string
	Page      int
	PageSize  int
	CallerID  uint64
}

// StoreRow is one row of the store listing.  AvgRating is the live mean of
// all ratings for the store rounded to 2 decimals, with 0 standing in for
// "no ratings yet" (the rating domain starts at 1, so 0 is unambiguous).
// UserRating is the caller's own rating or nil when they have not rated
// the store.
type StoreRow struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	AvgRating  float64 `json:"avg_rating"`
	UserRating *uint8  `json:"user_rating"`
}

// storeSortColumn maps a requested sort key onto a known column
// expression.  Unknown keys silently fall back to the store name so no
// caller-supplied text is ever spliced into the ORDER BY clause.
func storeSortColumn(key string) string {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "address":
		return "s.address"
	case "rating":
		return "avg_rating"
	default:
		return "s.name"
	}
}

// Search lists stores matching the filter together with the full filtered
// count.  The filter is a case-insensitive substring match over name OR
// address.  The average and the caller's own rating are resolved in the
// same query; both are as fresh as the moment the query ran, which is all
// the listing promises.
func (r *StoreRepo) Search(ctx context.Context, q StoreSearchQuery) ([]StoreRow, int64, error) {
	like := "%" + strings.TrimSpace(q.Filter) + "%"

	var total int64
	const countSQL = `SELECT COUNT(*) FROM stores s WHERE s.name LIKE ? OR s.address LIKE ?`
	if err := r.DB.QueryRowContext(ctx, countSQL, like, like).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT
			s.id,
			s.name,
			s.email,
			s.address,
			IFNULL(ROUND(AVG(r.rating), 2), 0) AS avg_rating,
			(SELECT rating FROM ratings WHERE store_id = s.id AND user_id = ? LIMIT 1) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.name LIKE ? OR s.address LIKE ?
		GROUP BY s.id
		ORDER BY ` + storeSortColumn(q.SortKey) + ` ` + sortDirection(q.SortOrder) + `
		LIMIT ? OFFSET ?`

	rows, err := r.DB.QueryContext(ctx, dataSQL, q.CallerID, like, like, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]StoreRow, 0, limit)
	for rows.Next() {
		var d StoreRow
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Address, &d.AvgRating, &d.UserRating); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
