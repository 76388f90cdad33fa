package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/store-rating/internal/model"
	"github.com/iliyamo/store-rating/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user row, returning its ID.
// Email uniqueness is enforced by the unique key on users.email; a
// duplicate surfaces as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, password, address string, role model.Role, cost int) (uint64, error) {
	email = strings.TrimSpace(email)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, address, role) VALUES (?,?,?,?,?)",
		name, email, hash, address, role.String())
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by exact email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,address,role,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,address,role,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// ChangePassword verifies the current password and overwrites the stored
// hash, all inside one transaction.  The row is locked for the duration so
// a concurrent login observes either the old or the new hash, never a torn
// state.  Returns sql.ErrNoRows for an unknown user and ErrBadOldPassword
// when the presented current password does not match.
func (r *UserRepo) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string, cost int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var hash string
	err = tx.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE id=? FOR UPDATE", userID).Scan(&hash)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(hash, oldPassword) {
		return ErrBadOldPassword
	}
	newHash, err := utils.HashPassword(newPassword, cost)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET password_hash=? WHERE id=?", newHash, userID); err != nil {
		return err
	}
	return tx.Commit()
}
