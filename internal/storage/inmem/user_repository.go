package inmem

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/tribeworks/loanflow/internal/user"
)

// UserRepository implements the user.Repository interface using hashicorp/go-memdb
type UserRepository struct {
	db *memdb.MemDB
}

var _ user.Repository = (*UserRepository)(nil)

// GetByUsername retrieves a user by their username
func (repo *UserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First("users", "id", username)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*user.User), nil
}

// Create creates a new user
func (repo *UserRepository) Create(_ context.Context, create *user.Create) (*user.User, error) {
	obj := &user.User{
		Username:     create.Username,
		DisplayName:  create.DisplayName,
		PasswordHash: create.PasswordHash,
	}

	txn := repo.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("users", obj); err != nil {
		return nil, err
	}
	txn.Commit()
	return obj, nil
}

// Delete deletes a user by their username
func (repo *UserRepository) Delete(_ context.Context, username string) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("users", "id", username); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
