package leavebalance_test

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/leavebalance"

	"gorm.io/gorm"
)

type approvedRequest struct {
	employeeID string
	leaveType  string
	status     string
	startDate  time.Time
	days       int
}

// memoryRepo keeps balances and the approved-request log in memory.
type memoryRepo struct {
	balances  map[string]*leavebalance.LeaveBalance
	requests  []approvedRequest
	sumRanges [][2]time.Time
	creates   int
	updateErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{balances: map[string]*leavebalance.LeaveBalance{}}
}

func (r *memoryRepo) WithTx(*sql.Tx) leavebalance.Repository { return r }

func (r *memoryRepo) FindAll(context.Context) ([]leavebalance.LeaveBalance, error) {
	res := make([]leavebalance.LeaveBalance, 0, len(r.balances))
	for _, b := range r.balances {
		res = append(res, *b)
	}
	return res, nil
}

func (r *memoryRepo) FindByEmployeeID(_ context.Context, employeeID string) (*leavebalance.LeaveBalance, error) {
	b, ok := r.balances[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memoryRepo) FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*leavebalance.LeaveBalance, error) {
	return r.FindByEmployeeID(ctx, employeeID)
}

func (r *memoryRepo) CreateIfAbsent(_ context.Context, b *leavebalance.LeaveBalance) error {
	if _, ok := r.balances[b.EmployeeID.String()]; ok {
		return nil
	}
	r.creates++
	cp := *b
	r.balances[b.EmployeeID.String()] = &cp
	return nil
}

func (r *memoryRepo) Update(_ context.Context, b *leavebalance.LeaveBalance) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *b
	r.balances[b.EmployeeID.String()] = &cp
	return nil
}

func (r *memoryRepo) SumApprovedDays(_ context.Context, employeeID string, from, to time.Time) (map[string]int, error) {
	r.sumRanges = append(r.sumRanges, [2]time.Time{from, to})
	totals := map[string]int{}
	for _, req := range r.requests {
		if req.employeeID != employeeID || req.status != leavebalance.ApprovedStatus {
			continue
		}
		if !leavebalance.IsTracked(req.leaveType) {
			continue
		}
		if req.startDate.Before(from) || req.startDate.After(to) {
			continue
		}
		totals[req.leaveType] += req.days
	}
	return totals, nil
}
