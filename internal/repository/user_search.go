package repository

import (
	"context"
	"strings"
)

// UserSearchQuery defines filter, sort and pagination for the admin user
// listing.  SortKey is checked against an allow-list; anything else falls
// back to name so column names never reach the SQL text unchecked.
type UserSearchQuery struct {
	Filter    string
	SortKey   string
	SortOrder string
	Page      int
	PageSize  int
}

// UserRow is one row of the admin user listing.  OwnerRating is the mean of
// all ratings across the stores owned by this user, rounded to 2 decimals;
// it stays nil for non-owners and for owners whose stores have no ratings.
type UserRow struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Role        string   `json:"role"`
	OwnerRating *float64 `json:"owner_rating"`
}

// userSortColumn maps a requested sort key onto a known column expression.
func userSortColumn(key string) string {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "email":
		return "u.email"
	case "address":
		return "u.address"
	case "role":
		return "u.role"
	default:
		return "u.name"
	}
}

// sortDirection normalizes a requested order to ASC or DESC.
func sortDirection(order string) string {
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return "DESC"
	}
	return "ASC"
}

// Search lists users matching the filter with the full filtered count.
// The filter is a case-insensitive substring match over name, email,
// address and role.  STORE_OWNER rows carry their aggregate rating inline
// so the listing needs no second round trip.
func (r *UserRepo) Search(ctx context.Context, q UserSearchQuery) ([]UserRow, int64, error) {
	like := "%" + strings.TrimSpace(q.Filter) + "%"
	args := []any{like, like, like, like}
	cond := "u.name LIKE ? OR u.email LIKE ? OR u.address LIKE ? OR u.role LIKE ?"

	var total int64
	countSQL := "SELECT COUNT(*) FROM users u WHERE " + cond
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT
			u.id,
			u.name,
			u.email,
			u.address,
			u.role,
			CASE WHEN u.role = 'STORE_OWNER' THEN (
				SELECT ROUND(AVG(r.rating), 2)
				FROM ratings r
				JOIN stores s ON s.id = r.store_id
				WHERE s.owner_id = u.id
			) ELSE NULL END AS owner_rating
		FROM users u
		WHERE ` + cond + `
		ORDER BY ` + userSortColumn(q.SortKey) + ` ` + sortDirection(q.SortOrder) + `
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.DB.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]UserRow, 0, limit)
	for rows.Next() {
		var d UserRow
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Address, &d.Role, &d.OwnerRating); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
