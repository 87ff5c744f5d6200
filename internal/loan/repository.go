package loan

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the loan application repository API
type Repository interface {
	// Get retrieves multiple loan applications, newest first
	Get(ctx context.Context, offset, limit uint64) ([]*Application, uint64, error)

	// GetByID retrieves a loan application by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Application, error)

	// Create persists a new loan application
	Create(ctx context.Context, create *Create) (*Application, error)

	// Delete deletes a loan application by its ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// Create is used to persist a new loan application
type Create struct {
	Applicant          string
	CreditScore        int
	Status             string
	ProcessInstanceKey int64
}
