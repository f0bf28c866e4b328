package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/employee"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeLookup resolves the employee a balance belongs to.
type EmployeeLookup interface {
	Lookup(ctx context.Context, id string) (employee.Snapshot, error)
}

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]LeaveBalanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (LeaveBalanceResponse, error)
	UpdateAllocation(ctx context.Context, employeeID string, req UpdateAllocationRequest) (LeaveBalanceResponse, error)
	Recalculate(ctx context.Context, employeeID string) (LeaveBalanceResponse, error)
	RecalculateAll(ctx context.Context) (RecalculateAllResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	ledger    *Ledger
	employees EmployeeLookup
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger *Ledger, employees EmployeeLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		ledger:    ledger,
		employees: employees,
		logger:    l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]LeaveBalanceResponse, error) {
	s.logger.Debug("get all leave balances requested")
	balances, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leave balances failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

// GetByEmployee returns the balance, creating it with the default allocation if needed.
func (s *service) GetByEmployee(ctx context.Context, employeeID string) (LeaveBalanceResponse, error) {
	return s.withBalance(ctx, "get", employeeID, func(context.Context, *Ledger, *LeaveBalance) error {
		return nil
	})
}

func (s *service) UpdateAllocation(ctx context.Context, employeeID string, req UpdateAllocationRequest) (LeaveBalanceResponse, error) {
	if req.AnnualLeave == nil || req.SickLeave == nil || *req.AnnualLeave < 0 || *req.SickLeave < 0 {
		return LeaveBalanceResponse{}, leavebalanceerrors.ErrInvalidAllocation
	}

	return s.withBalance(ctx, "update allocation", employeeID, func(ctx context.Context, ledger *Ledger, b *LeaveBalance) error {
		b.AnnualLeave = *req.AnnualLeave
		b.SickLeave = *req.SickLeave
		return ledger.RecalculateUsedDays(ctx, b)
	})
}

func (s *service) Recalculate(ctx context.Context, employeeID string) (LeaveBalanceResponse, error) {
	return s.withBalance(ctx, "recalculate", employeeID, func(ctx context.Context, ledger *Ledger, b *LeaveBalance) error {
		return ledger.RecalculateUsedDays(ctx, b)
	})
}

// RecalculateAll recomputes every balance, each in its own transaction.
func (s *service) RecalculateAll(ctx context.Context) (RecalculateAllResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	balances, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("recalculate all list balances failed", zap.Error(err))
		return RecalculateAllResponse{}, err
	}

	var res RecalculateAllResponse
	for _, b := range balances {
		if _, err := s.Recalculate(ctx, b.EmployeeID.String()); err != nil {
			res.FailedCount++
			s.logger.Error("recalculate balance failed",
				zap.String("request_id", rid),
				zap.String("employee_id", b.EmployeeID.String()),
				zap.Error(err),
			)
			continue
		}
		res.UpdatedCount++
	}

	s.logger.Info("recalculate all balances done",
		zap.String("request_id", rid),
		zap.Int("updated", res.UpdatedCount),
		zap.Int("failed", res.FailedCount),
	)
	return res, nil
}

func (s *service) withBalance(
	ctx context.Context,
	op string,
	employeeID string,
	fn func(ctx context.Context, ledger *Ledger, b *LeaveBalance) error,
) (LeaveBalanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug(op+" leave balance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveBalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if _, err := s.employees.Lookup(ctx, employeeID); err != nil {
		s.logger.Warn(op+" leave balance employee lookup failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return LeaveBalanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" leave balance begin tx failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}
	defer tx.Rollback()

	ledger := s.ledger.WithTx(tx)
	b, err := ledger.GetOrCreate(ctx, employeeID)
	if err != nil {
		s.logger.Error(op+" leave balance get or create failed", zap.Error(err))
		return LeaveBalanceResponse{}, mapRepositoryError(err)
	}

	if err := fn(ctx, ledger, b); err != nil {
		s.logger.Error(op+" leave balance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(op+" leave balance commit failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	s.logger.Info(op+" leave balance success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("used_annual", b.UsedAnnual),
		zap.Int("used_sick", b.UsedSick),
	)

	return mapToResponse(*b), nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavebalanceerrors.ErrLeaveBalanceNotFound
	}
	return err
}

func mapToResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:              b.ID.String(),
		EmployeeID:      b.EmployeeID.String(),
		AnnualLeave:     b.AnnualLeave,
		SickLeave:       b.SickLeave,
		UsedAnnual:      b.UsedAnnual,
		UsedSick:        b.UsedSick,
		RemainingAnnual: b.RemainingAnnual(),
		RemainingSick:   b.RemainingSick(),
		TotalRemaining:  b.TotalRemaining(),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
