package cache

import (
	"context"

	"github.com/google/uuid"
	"github.com/tribeworks/loanflow/internal/hashmap"
	"github.com/tribeworks/loanflow/internal/loan"
)

// LoanApplicationRepository wraps the loan.Repository interface in order to implement caching
type LoanApplicationRepository struct {
	repo  loan.Repository
	cache *hashmap.ExpiringMap[uuid.UUID, *loan.Application]
}

var _ loan.Repository = (*LoanApplicationRepository)(nil)

// Get retrieves multiple loan applications, newest first
func (repo *LoanApplicationRepository) Get(ctx context.Context, offset, limit uint64) ([]*loan.Application, uint64, error) {
	applications, n, err := repo.repo.Get(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for _, obj := range applications {
		repo.cache.Set(obj.ID, obj)
	}
	return applications, n, nil
}

// GetByID retrieves a loan application by its ID
func (repo *LoanApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*loan.Application, error) {
	cached, ok := repo.cache.Lookup(id)
	if ok {
		return cached, nil
	}
	obj, err := repo.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.cache.Set(obj.ID, obj)
	}
	return obj, nil
}

// Create persists a new loan application
func (repo *LoanApplicationRepository) Create(ctx context.Context, create *loan.Create) (*loan.Application, error) {
	obj, err := repo.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	repo.cache.Set(obj.ID, obj)
	return obj, nil
}

// Delete deletes a loan application by its ID
func (repo *LoanApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	repo.cache.Unset(id)
	return nil
}
