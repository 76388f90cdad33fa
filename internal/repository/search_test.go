package repository

import "testing"

func TestStoreSortColumn_AllowList(t *testing.T) {
	cases := map[string]string{
		"name":    "s.name",
		"address": "s.address",
		"rating":  "avg_rating",
		"RATING":  "avg_rating",
	}
	for in, want := range cases {
		if got := storeSortColumn(in); got != want {
			t.Errorf("storeSortColumn(%q) = %q, want %q", in, got, want)
		}
	}
	// Anything off the allow-list silently falls back to the name column
	// so no caller text ever reaches the ORDER BY clause.
	for _, in := range []string{"", "id", "password_hash", "s.name; DROP TABLE stores", "rating, (SELECT 1)"} {
		if got := storeSortColumn(in); got != "s.name" {
			t.Errorf("storeSortColumn(%q) = %q, want fallback s.name", in, got)
		}
	}
}

func TestUserSortColumn_AllowList(t *testing.T) {
	cases := map[string]string{
		"name":    "u.name",
		"email":   "u.email",
		"address": "u.address",
		"role":    "u.role",
	}
	for in, want := range cases {
		if got := userSortColumn(in); got != want {
			t.Errorf("userSortColumn(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "id", "created_at; --"} {
		if got := userSortColumn(in); got != "u.name" {
			t.Errorf("userSortColumn(%q) = %q, want fallback u.name", in, got)
		}
	}
}

func TestSortDirection(t *testing.T) {
	if got := sortDirection("desc"); got != "DESC" {
		t.Errorf("sortDirection(desc) = %q", got)
	}
	if got := sortDirection(" DESC "); got != "DESC" {
		t.Errorf("sortDirection( DESC ) = %q", got)
	}
	for _, in := range []string{"", "asc", "sideways", "ASC; DROP"} {
		if got := sortDirection(in); got != "ASC" {
			t.Errorf("sortDirection(%q) = %q, want ASC", in, got)
		}
	}
}
