package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/tribeworks/loanflow/internal/user"
)

// UserRepository implements the user.Repository interface using PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

var _ user.Repository = (*UserRepository)(nil)

// GetByUsername retrieves a user by their username
func (repo *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT username, display_name, password_hash FROM users WHERE username = $1", username)

	obj := new(user.User)
	if err := row.Scan(&obj.Username, &obj.DisplayName, &obj.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Create creates a new user
func (repo *UserRepository) Create(ctx context.Context, create *user.Create) (*user.User, error) {
	_, err := repo.db.Exec(
		ctx,
		"INSERT INTO users (username, display_name, password_hash) VALUES ($1, $2, $3) ON CONFLICT (username) DO NOTHING",
		create.Username,
		create.DisplayName,
		create.PasswordHash,
	)
	if err != nil {
		return nil, err
	}

	return &user.User{
		Username:     create.Username,
		DisplayName:  create.DisplayName,
		PasswordHash: create.PasswordHash,
	}, nil
}

// Delete deletes a user by their username
func (repo *UserRepository) Delete(ctx context.Context, username string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	return err
}
