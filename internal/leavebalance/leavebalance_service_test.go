package leavebalance_test

import (
	"context"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/leavebalance"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeLookup struct {
	LookupFn func(ctx context.Context, id string) (employee.Snapshot, error)
}

func (f *fakeEmployeeLookup) Lookup(ctx context.Context, id string) (employee.Snapshot, error) {
	return f.LookupFn(ctx, id)
}

func activeEmployees() *fakeEmployeeLookup {
	return &fakeEmployeeLookup{
		LookupFn: func(_ context.Context, id string) (employee.Snapshot, error) {
			return employee.Snapshot{ID: id, IsActive: true}, nil
		},
	}
}

func setupService(t *testing.T, repo *memoryRepo, lookup leavebalance.EmployeeLookup) (leavebalance.Service, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ledger := leavebalance.NewLedger(repo, clock.Fixed(today), leavebalance.DefaultAllocation())
	return leavebalance.NewService(db, repo, ledger, lookup), mock
}

func intPtr(v int) *int { return &v }

func TestLeaveBalanceService_GetByEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("creates default balance on first read", func(t *testing.T) {
		repo := newMemoryRepo()
		svc, mock := setupService(t, repo, activeEmployees())
		employeeID := uuid.NewString()

		mock.ExpectBegin()
		mock.ExpectCommit()

		res, err := svc.GetByEmployee(ctx, employeeID)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, res.EmployeeID)
		assert.Equal(t, 25, res.RemainingAnnual)
		assert.Equal(t, 10, res.RemainingSick)
		assert.Equal(t, 35, res.TotalRemaining)
		assert.Equal(t, 1, repo.creates)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative - invalid id", func(t *testing.T) {
		svc, _ := setupService(t, newMemoryRepo(), activeEmployees())

		_, err := svc.GetByEmployee(ctx, "nope")
		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative - unknown employee", func(t *testing.T) {
		lookup := &fakeEmployeeLookup{
			LookupFn: func(context.Context, string) (employee.Snapshot, error) {
				return employee.Snapshot{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		svc, mock := setupService(t, newMemoryRepo(), lookup)

		_, err := svc.GetByEmployee(ctx, uuid.NewString())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeaveBalanceService_UpdateAllocation(t *testing.T) {
	ctx := context.Background()

	t.Run("allocation change keeps used days consistent", func(t *testing.T) {
		repo := newMemoryRepo()
		employeeID := uuid.NewString()
		repo.requests = []approvedRequest{
			{employeeID, leavebalance.TypeAnnual, leavebalance.ApprovedStatus, day(2024, 2, 5), 5},
		}
		svc, mock := setupService(t, repo, activeEmployees())

		mock.ExpectBegin()
		mock.ExpectCommit()

		res, err := svc.UpdateAllocation(ctx, employeeID, leavebalance.UpdateAllocationRequest{
			AnnualLeave: intPtr(30),
			SickLeave:   intPtr(12),
		})

		assert.NoError(t, err)
		assert.Equal(t, 30, res.AnnualLeave)
		assert.Equal(t, 5, res.UsedAnnual)
		assert.Equal(t, 25, res.RemainingAnnual)
		assert.Equal(t, 12, res.RemainingSick)
	})

	t.Run("negative - negative allocation", func(t *testing.T) {
		svc, _ := setupService(t, newMemoryRepo(), activeEmployees())

		_, err := svc.UpdateAllocation(ctx, uuid.NewString(), leavebalance.UpdateAllocationRequest{
			AnnualLeave: intPtr(-1),
			SickLeave:   intPtr(10),
		})
		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidAllocation)
	})
}

func TestLeaveBalanceService_RecalculateAll(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()

	okID := uuid.New()
	missingID := uuid.New()
	repo.balances[okID.String()] = &leavebalance.LeaveBalance{ID: uuid.New(), EmployeeID: okID, AnnualLeave: 25, SickLeave: 10, UsedAnnual: 9}
	repo.balances[missingID.String()] = &leavebalance.LeaveBalance{ID: uuid.New(), EmployeeID: missingID, AnnualLeave: 25, SickLeave: 10}
	repo.requests = []approvedRequest{
		{okID.String(), leavebalance.TypeSick, leavebalance.ApprovedStatus, day(2024, 4, 2), 2},
	}

	lookup := &fakeEmployeeLookup{
		LookupFn: func(_ context.Context, id string) (employee.Snapshot, error) {
			if id == missingID.String() {
				return employee.Snapshot{}, employeeerrors.ErrEmployeeNotFound
			}
			return employee.Snapshot{ID: id, IsActive: true}, nil
		},
	}
	svc, mock := setupService(t, repo, lookup)
	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.RecalculateAll(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, 0, repo.balances[okID.String()].UsedAnnual)
	assert.Equal(t, 2, repo.balances[okID.String()].UsedSick)
}
