package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lukk-cs/attribo-backend/internal/db"
	"github.com/lukk-cs/attribo-backend/internal/models"
)

type UserRepo struct {
	q db.Querier
}

func NewUserRepo(q db.Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	return r.q.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, u.ID, u.Username, u.PasswordHash).Scan(&u.CreatedAt)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepo) getBy(ctx context.Context, column, value string) (*models.User, error) {
	var u models.User
	err := r.q.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users WHERE `+column+` = $1
	`, value).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", value, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
