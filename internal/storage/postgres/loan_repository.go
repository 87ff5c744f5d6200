package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/tribeworks/loanflow/internal/loan"
)

// LoanApplicationRepository implements the loan.Repository interface using PostgreSQL
type LoanApplicationRepository struct {
	db *pgxpool.Pool
}

var _ loan.Repository = (*LoanApplicationRepository)(nil)

// Get retrieves multiple loan applications, newest first
func (repo *LoanApplicationRepository) Get(ctx context.Context, offset, limit uint64) ([]*loan.Application, uint64, error) {
	query := squirrel.Select(
		"application_id",
		"applicant",
		"credit_score",
		"status",
		"process_instance_key",
		"created_at",
	).From("loan_applications").OrderBy("created_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	} else {
		query = query.Limit(10)
	}
	sql, vals, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var n uint64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM loan_applications").Scan(&n); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []*loan.Application{}, 0, nil
	}

	rows, err := repo.db.Query(ctx, sql, vals...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*loan.Application{}, n, nil
		}
		return nil, 0, err
	}

	applications := []*loan.Application{}
	for rows.Next() {
		obj := new(loan.Application)
		err = rows.Scan(
			&obj.ID,
			&obj.Applicant,
			&obj.CreditScore,
			&obj.Status,
			&obj.ProcessInstanceKey,
			&obj.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		applications = append(applications, obj)
	}

	return applications, n, nil
}

// GetByID retrieves a loan application by its ID
func (repo *LoanApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*loan.Application, error) {
	row := repo.db.QueryRow(
		ctx,
		"SELECT application_id, applicant, credit_score, status, process_instance_key, created_at FROM loan_applications WHERE application_id = $1",
		id,
	)

	obj := new(loan.Application)
	err := row.Scan(&obj.ID, &obj.Applicant, &obj.CreditScore, &obj.Status, &obj.ProcessInstanceKey, &obj.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Create persists a new loan application
func (repo *LoanApplicationRepository) Create(ctx context.Context, create *loan.Create) (*loan.Application, error) {
	obj := &loan.Application{
		ID:                 uuid.New(),
		Applicant:          create.Applicant,
		CreditScore:        create.CreditScore,
		Status:             create.Status,
		ProcessInstanceKey: create.ProcessInstanceKey,
		CreatedAt:          time.Now(),
	}

	_, err := repo.db.Exec(
		ctx,
		"INSERT INTO loan_applications (application_id, applicant, credit_score, status, process_instance_key, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		obj.ID,
		obj.Applicant,
		obj.CreditScore,
		obj.Status,
		obj.ProcessInstanceKey,
		obj.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Delete deletes a loan application by its ID
func (repo *LoanApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM loan_applications WHERE application_id = $1", id)
	return err
}
