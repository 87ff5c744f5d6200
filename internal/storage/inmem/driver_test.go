package inmem

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribeworks/loanflow/internal/loan"
	"github.com/tribeworks/loanflow/internal/user"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	driver := New()
	require.NoError(t, driver.Initialize(context.Background()))
	t.Cleanup(driver.Close)
	return driver
}

func TestUserRepository(t *testing.T) {
	driver := newTestDriver(t)
	ctx := context.Background()

	created, err := driver.Users().Create(ctx, &user.Create{
		Username:     "testuser",
		DisplayName:  "Test User",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "testuser", created.Username)

	found, err := driver.Users().GetByUsername(ctx, "testuser")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Test User", found.DisplayName)

	missing, err := driver.Users().GetByUsername(ctx, "nosuchuser")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, driver.Users().Delete(ctx, "testuser"))
	found, err = driver.Users().GetByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestLoanApplicationRepository(t *testing.T) {
	driver := newTestDriver(t)
	ctx := context.Background()

	first, err := driver.LoanApplications().Create(ctx, &loan.Create{
		Applicant:          "testuser",
		CreditScore:        750,
		Status:             loan.StatusAutoApproved,
		ProcessInstanceKey: 1,
	})
	require.NoError(t, err)
	second, err := driver.LoanApplications().Create(ctx, &loan.Create{
		Applicant:          "testuser",
		CreditScore:        650,
		Status:             loan.StatusManualReview,
		ProcessInstanceKey: 2,
	})
	require.NoError(t, err)

	// Newest first
	applications, total, err := driver.LoanApplications().Get(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, applications, 2)
	assert.Equal(t, second.ID, applications[0].ID)
	assert.Equal(t, first.ID, applications[1].ID)

	// Pagination keeps the total intact
	applications, total, err = driver.LoanApplications().Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, applications, 1)
	assert.Equal(t, first.ID, applications[0].ID)

	found, err := driver.LoanApplications().GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 750, found.CreditScore)
	assert.Equal(t, loan.StatusAutoApproved, found.Status)

	missing, err := driver.LoanApplications().GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, driver.LoanApplications().Delete(ctx, first.ID))
	_, total, err = driver.LoanApplications().Get(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
}
