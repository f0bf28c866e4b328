package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/calendar"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeLookup interface {
	Lookup(ctx context.Context, id string) (employee.Snapshot, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	ApproveByManager(ctx context.Context, actorID, id string) (LeaveResponse, error)
	RejectByManager(ctx context.Context, actorID, id, reason string) (LeaveResponse, error)
	ApproveByRH(ctx context.Context, actorID, id string) (LeaveResponse, error)
	RejectByRH(ctx context.Context, actorID, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Current(ctx context.Context) ([]LeaveResponse, error)
	Upcoming(ctx context.Context) ([]LeaveResponse, error)
	PendingApproval(ctx context.Context) ([]LeaveResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	ledger    *leavebalance.Ledger
	employees EmployeeLookup
	outbox    kafka.OutboxRepository
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger *leavebalance.Ledger,
	employees EmployeeLookup,
	outboxRepo kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:        db,
		repo:      repo,
		ledger:    ledger,
		employees: employees,
		outbox:    outboxRepo,
		clock:     clk,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeID, startDate, endDate, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	emp, err := s.employees.Lookup(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("create leave employee lookup failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !emp.IsActive {
		return LeaveResponse{}, leaveerrors.ErrEmployeeInactive
	}
	if startDate.Before(emp.HireDate) {
		return LeaveResponse{}, leaveerrors.ErrBeforeHireDate
	}

	days := calendar.BusinessDaysBetween(startDate, endDate)
	if req.Days != nil {
		days = *req.Days
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", l.Days),
	)

	return s.mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*l), nil
}

func (s *service) ApproveByManager(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, "approve manager", actorID, id, func(l *LeaveRequest, actor uuid.UUID, now time.Time) error {
		return l.ApproveByManager(actor, now)
	})
}

func (s *service) RejectByManager(ctx context.Context, actorID, id, reason string) (LeaveResponse, error) {
	return s.transition(ctx, "reject manager", actorID, id, func(l *LeaveRequest, _ uuid.UUID, _ time.Time) error {
		return l.RejectByManager(reason)
	})
}

func (s *service) RejectByRH(ctx context.Context, actorID, id, reason string) (LeaveResponse, error) {
	return s.transition(ctx, "reject rh", actorID, id, func(l *LeaveRequest, _ uuid.UUID, _ time.Time) error {
		return l.RejectByRH(reason)
	})
}

// ApproveByRH checks the balance, flips the state and recomputes the ledger in
// one transaction. The balance row stays locked until commit, so two approvals
// for the same employee are serialized.
func (s *service) ApproveByRH(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approve rh requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	actor, err := parseIDs(actorID, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve rh begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.Status != StatusManagerApproved {
		s.logger.Warn("approve rh invalid state", zap.String("leave_id", id), zap.String("status", l.Status))
		return LeaveResponse{}, leaveerrors.ErrNotManagerApproved
	}

	tracked := leavebalance.IsTracked(l.LeaveType)
	ledger := s.ledger.WithTx(tx)

	var balance *leavebalance.LeaveBalance
	if tracked {
		balance, err = ledger.GetOrCreate(ctx, l.EmployeeID.String())
		if err != nil {
			s.logger.Error("approve rh get balance failed", zap.String("employee_id", l.EmployeeID.String()), zap.Error(err))
			return LeaveResponse{}, err
		}
		if err := ledger.EnsureSufficient(balance, l.LeaveType, l.Days); err != nil {
			s.logger.Warn("approve rh insufficient balance",
				zap.String("leave_id", id),
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Error(err),
			)
			_ = tx.Rollback()
			s.publishInsufficientBalance(ctx, l, actorID, err)
			return LeaveResponse{}, err
		}
	}

	if err := l.ApproveByRH(actor, s.clock.Now()); err != nil {
		return LeaveResponse{}, err
	}
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("approve rh persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if tracked {
		if err := ledger.RecalculateUsedDays(ctx, balance); err != nil {
			s.logger.Error("approve rh recalculate failed", zap.String("leave_id", id), zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve rh commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("approve rh success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("employee_id", l.EmployeeID.String()),
	)
	return s.mapToResponse(*l), nil
}

// Cancel recomputes the ledger in the same transaction when an RH-approved request is cancelled.
func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := parseIDs(actorID, id); err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	wasApproved, err := l.Cancel(s.clock.Now())
	if err != nil {
		s.logger.Warn("cancel leave invalid state", zap.String("leave_id", id), zap.String("status", l.Status))
		return LeaveResponse{}, err
	}
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if wasApproved {
		ledger := s.ledger.WithTx(tx)
		balance, err := ledger.GetOrCreate(ctx, l.EmployeeID.String())
		if err != nil {
			s.logger.Error("cancel leave get balance failed", zap.String("employee_id", l.EmployeeID.String()), zap.Error(err))
			return LeaveResponse{}, err
		}
		if err := ledger.RecalculateUsedDays(ctx, balance); err != nil {
			s.logger.Error("cancel leave recalculate failed", zap.String("leave_id", id), zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.Bool("ledger_recomputed", wasApproved),
	)
	return s.mapToResponse(*l), nil
}

func (s *service) Current(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindCurrent(ctx, s.clock.Today())
	if err != nil {
		s.logger.Error("find current leaves failed", zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(leaves), nil
}

func (s *service) Upcoming(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindUpcoming(ctx, s.clock.Today())
	if err != nil {
		s.logger.Error("find upcoming leaves failed", zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(leaves), nil
}

func (s *service) PendingApproval(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindPendingApproval(ctx)
	if err != nil {
		s.logger.Error("find pending leaves failed", zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(leaves), nil
}

func (s *service) transition(
	ctx context.Context,
	op string,
	actorID string,
	id string,
	apply func(l *LeaveRequest, actor uuid.UUID, now time.Time) error,
) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug(op+" leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	actor, err := parseIDs(actorID, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	from := l.Status
	if err := apply(l, actor, s.clock.Now()); err != nil {
		s.logger.Warn(op+" leave invalid state",
			zap.String("leave_id", id),
			zap.String("status", from),
		)
		return LeaveResponse{}, err
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error(op+" leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error(op+" leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info(op+" leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("from_status", from),
		zap.String("to_status", l.Status),
	)
	return s.mapToResponse(*l), nil
}

// publishInsufficientBalance runs after the approval transaction rolled back,
// so a failure here is only logged.
func (s *service) publishInsufficientBalance(ctx context.Context, l *LeaveRequest, actorID string, cause error) {
	if s.outbox == nil {
		return
	}
	var insufficient *leavebalance.InsufficientBalanceError
	if !errors.As(cause, &insufficient) {
		return
	}

	rid := contextutil.GetRequestID(ctx)
	evt, err := kafka.NewOutboxEvent(rid, "leave_request", l.ID.String(),
		events.EventLeaveBalanceInsufficient, events.LeaveBalanceTopic,
		events.LeaveBalanceInsufficientEvent{
			EventType:      events.EventLeaveBalanceInsufficient,
			RequestID:      rid,
			LeaveRequestID: l.ID.String(),
			EmployeeID:     l.EmployeeID.String(),
			LeaveType:      l.LeaveType,
			Available:      insufficient.Available,
			Requested:      insufficient.Requested,
			DeniedBy:       actorID,
			OccurredAt:     s.clock.Now(),
		})
	if err != nil {
		s.logger.Error("marshal insufficient balance event failed", zap.Error(err))
		return
	}
	if err := s.outbox.Create(ctx, evt); err != nil {
		s.logger.Error("insufficient balance outbox persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
	}
}

func validateCreateRequest(req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	if !IsValidType(req.LeaveType) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if req.Days != nil && *req.Days < 1 {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDays
	}
	return employeeID, startDate, endDate, nil
}

func parseIDs(actorID, id string) (uuid.UUID, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return uuid.Nil, leaveerrors.ErrInvalidLeaveID
	}
	return actor, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func (s *service) mapToResponse(l LeaveRequest) LeaveResponse {
	today := s.clock.Today()
	return LeaveResponse{
		ID:                     l.ID.String(),
		EmployeeID:             l.EmployeeID.String(),
		LeaveType:              l.LeaveType,
		StartDate:              calendar.FormatDate(l.StartDate),
		EndDate:                calendar.FormatDate(l.EndDate),
		Days:                   l.Days,
		Reason:                 l.Reason,
		Status:                 l.Status,
		ManagerApprovedBy:      uuidPtrString(l.ManagerApprovedBy),
		ManagerApprovedAt:      formatTimePtr(l.ManagerApprovedAt),
		ManagerRejectionReason: l.ManagerRejectionReason,
		RHApprovedBy:           uuidPtrString(l.RHApprovedBy),
		RHApprovedAt:           formatTimePtr(l.RHApprovedAt),
		RHRejectionReason:      l.RHRejectionReason,
		IsCurrent:              l.IsCurrent(today),
		IsUpcoming:             l.IsUpcoming(today),
		IsPast:                 l.IsPast(today),
		CreatedAt:              l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *service) mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = s.mapToResponse(l)
	}
	return resp
}
