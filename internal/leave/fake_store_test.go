package leave_test

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/leave"
	"go-hrms/internal/leavebalance"

	"gorm.io/gorm"
)

// store backs both fake repositories so the ledger sums the same requests the
// leave service writes.
type store struct {
	leaves   map[string]*leave.LeaveRequest
	balances map[string]*leavebalance.LeaveBalance
}

func newStore() *store {
	return &store{
		leaves:   map[string]*leave.LeaveRequest{},
		balances: map[string]*leavebalance.LeaveBalance{},
	}
}

func (s *store) put(l leave.LeaveRequest) {
	s.leaves[l.ID.String()] = &l
}

type fakeLeaveRepository struct {
	store     *store
	updateErr error
}

func (f *fakeLeaveRepository) WithTx(*sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepository) Create(_ context.Context, l *leave.LeaveRequest) error {
	f.store.put(*l)
	return nil
}

func (f *fakeLeaveRepository) FindAll(_ context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	var res []leave.LeaveRequest
	for _, l := range f.store.leaves {
		if filter.EmployeeID != "" && l.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		res = append(res, *l)
	}
	return res, nil
}

func (f *fakeLeaveRepository) FindByID(_ context.Context, id string) (*leave.LeaveRequest, error) {
	l, ok := f.store.leaves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaveRepository) FindByIDForUpdate(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeLeaveRepository) Update(_ context.Context, l *leave.LeaveRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.store.put(*l)
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(_ context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	for id, l := range f.store.leaves {
		if excludeID != nil && *excludeID == id {
			continue
		}
		if l.EmployeeID.String() != employeeID || l.IsTerminal() {
			continue
		}
		if !(l.EndDate.Before(startDate) || l.StartDate.After(endDate)) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepository) FindCurrent(_ context.Context, today time.Time) ([]leave.LeaveRequest, error) {
	var res []leave.LeaveRequest
	for _, l := range f.store.leaves {
		if l.IsCurrent(today) {
			res = append(res, *l)
		}
	}
	return res, nil
}

func (f *fakeLeaveRepository) FindUpcoming(_ context.Context, today time.Time) ([]leave.LeaveRequest, error) {
	var res []leave.LeaveRequest
	for _, l := range f.store.leaves {
		if l.IsUpcoming(today) {
			res = append(res, *l)
		}
	}
	return res, nil
}

func (f *fakeLeaveRepository) FindPendingApproval(context.Context) ([]leave.LeaveRequest, error) {
	var res []leave.LeaveRequest
	for _, l := range f.store.leaves {
		if l.Status == leave.StatusPending || l.Status == leave.StatusManagerApproved {
			res = append(res, *l)
		}
	}
	return res, nil
}

type fakeBalanceRepository struct {
	store *store
}

func (f *fakeBalanceRepository) WithTx(*sql.Tx) leavebalance.Repository { return f }

func (f *fakeBalanceRepository) FindAll(context.Context) ([]leavebalance.LeaveBalance, error) {
	var res []leavebalance.LeaveBalance
	for _, b := range f.store.balances {
		res = append(res, *b)
	}
	return res, nil
}

func (f *fakeBalanceRepository) FindByEmployeeID(_ context.Context, employeeID string) (*leavebalance.LeaveBalance, error) {
	b, ok := f.store.balances[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBalanceRepository) FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*leavebalance.LeaveBalance, error) {
	return f.FindByEmployeeID(ctx, employeeID)
}

func (f *fakeBalanceRepository) CreateIfAbsent(_ context.Context, b *leavebalance.LeaveBalance) error {
	if _, ok := f.store.balances[b.EmployeeID.String()]; !ok {
		cp := *b
		f.store.balances[b.EmployeeID.String()] = &cp
	}
	return nil
}

func (f *fakeBalanceRepository) Update(_ context.Context, b *leavebalance.LeaveBalance) error {
	cp := *b
	f.store.balances[b.EmployeeID.String()] = &cp
	return nil
}

func (f *fakeBalanceRepository) SumApprovedDays(_ context.Context, employeeID string, from, to time.Time) (map[string]int, error) {
	totals := map[string]int{}
	for _, l := range f.store.leaves {
		if l.EmployeeID.String() != employeeID || l.Status != leavebalance.ApprovedStatus {
			continue
		}
		if !leavebalance.IsTracked(l.LeaveType) || l.StartDate.Before(from) || l.StartDate.After(to) {
			continue
		}
		totals[l.LeaveType] += l.Days
	}
	return totals, nil
}
