package inmem

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/tribeworks/loanflow/internal/loan"
)

// applicationRecord is the memdb representation of a loan application.
// memdb indexers cannot address uuid.UUID or time.Time fields directly, so both
// are stored in indexable form.
type applicationRecord struct {
	ID                 string
	Applicant          string
	CreditScore        int
	Status             string
	ProcessInstanceKey int64
	CreatedAtNano      int64
}

func (record *applicationRecord) toApplication() *loan.Application {
	return &loan.Application{
		ID:                 uuid.MustParse(record.ID),
		Applicant:          record.Applicant,
		CreditScore:        record.CreditScore,
		Status:             record.Status,
		ProcessInstanceKey: record.ProcessInstanceKey,
		CreatedAt:          time.Unix(0, record.CreatedAtNano),
	}
}

// LoanApplicationRepository implements the loan.Repository interface using hashicorp/go-memdb
type LoanApplicationRepository struct {
	db *memdb.MemDB
}

var _ loan.Repository = (*LoanApplicationRepository)(nil)

// Get retrieves multiple loan applications, newest first
func (repo *LoanApplicationRepository) Get(_ context.Context, offset, limit uint64) ([]*loan.Application, uint64, error) {
	if limit == 0 {
		limit = 10
	}

	txn := repo.db.Txn(false)
	it, err := txn.GetReverse("loan_applications", "created")
	if err != nil {
		return nil, 0, err
	}

	applications := []*loan.Application{}
	var total, skipped uint64
	for obj := it.Next(); obj != nil; obj = it.Next() {
		total++
		if skipped < offset {
			skipped++
			continue
		}
		if uint64(len(applications)) < limit {
			applications = append(applications, obj.(*applicationRecord).toApplication())
		}
	}

	return applications, total, nil
}

// GetByID retrieves a loan application by its ID
func (repo *LoanApplicationRepository) GetByID(_ context.Context, id uuid.UUID) (*loan.Application, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First("loan_applications", "id", id.String())
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*applicationRecord).toApplication(), nil
}

// Create persists a new loan application
func (repo *LoanApplicationRepository) Create(_ context.Context, create *loan.Create) (*loan.Application, error) {
	record := &applicationRecord{
		ID:                 uuid.New().String(),
		Applicant:          create.Applicant,
		CreditScore:        create.CreditScore,
		Status:             create.Status,
		ProcessInstanceKey: create.ProcessInstanceKey,
		CreatedAtNano:      time.Now().UnixNano(),
	}

	txn := repo.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("loan_applications", record); err != nil {
		return nil, err
	}
	txn.Commit()

	return record.toApplication(), nil
}

// Delete deletes a loan application by its ID
func (repo *LoanApplicationRepository) Delete(_ context.Context, id uuid.UUID) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("loan_applications", "id", id.String()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
