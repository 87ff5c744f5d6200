package cache

import (
	"context"

	"github.com/tribeworks/loanflow/internal/hashmap"
	"github.com/tribeworks/loanflow/internal/user"
)

// UserRepository wraps the user.Repository interface in order to implement caching
type UserRepository struct {
	repo  user.Repository
	cache *hashmap.ExpiringMap[string, *user.User]
}

var _ user.Repository = (*UserRepository)(nil)

// GetByUsername retrieves a user by their username
func (repo *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	cached, ok := repo.cache.Lookup(username)
	if ok {
		return cached, nil
	}
	obj, err := repo.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.cache.Set(obj.Username, obj)
	}
	return obj, nil
}

// Create creates a new user
func (repo *UserRepository) Create(ctx context.Context, create *user.Create) (*user.User, error) {
	obj, err := repo.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	repo.cache.Set(obj.Username, obj)
	return obj, nil
}

// Delete deletes a user by their username
func (repo *UserRepository) Delete(ctx context.Context, username string) error {
	err := repo.repo.Delete(ctx, username)
	if err != nil {
		return err
	}
	repo.cache.Unset(username)
	return nil
}
