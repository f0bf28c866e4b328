package leavebalance

import (
	"context"
	"database/sql"
	"errors"

	"go-hrms/internal/calendar"
	"go-hrms/internal/shared/clock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger holds the balance rules. Bind it to the caller's transaction with
// WithTx so the lock taken by GetOrCreate covers the whole unit of work.
type Ledger struct {
	repo  Repository
	clock clock.Clock
	alloc Allocation
}

func NewLedger(repo Repository, clk clock.Clock, alloc Allocation) *Ledger {
	if clk == nil {
		clk = clock.System()
	}
	return &Ledger{repo: repo, clock: clk, alloc: alloc}
}

func (l *Ledger) WithTx(tx *sql.Tx) *Ledger {
	return &Ledger{repo: l.repo.WithTx(tx), clock: l.clock, alloc: l.alloc}
}

// GetOrCreate returns the employee's balance row locked for update, creating
// it with the default allocation on first use.
func (l *Ledger) GetOrCreate(ctx context.Context, employeeID string) (*LeaveBalance, error) {
	b, err := l.repo.FindByEmployeeIDForUpdate(ctx, employeeID)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, err
	}

	if err := l.repo.CreateIfAbsent(ctx, &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  empID,
		AnnualLeave: l.alloc.Annual,
		SickLeave:   l.alloc.Sick,
	}); err != nil {
		return nil, err
	}

	// a concurrent creator may have won the insert; read whichever row exists
	return l.repo.FindByEmployeeIDForUpdate(ctx, employeeID)
}

// EnsureSufficient returns *InsufficientBalanceError when requested exceeds the remaining days.
func (l *Ledger) EnsureSufficient(b *LeaveBalance, leaveType string, requested int) error {
	if b.CheckSufficient(leaveType, requested) {
		return nil
	}
	available, _ := b.Remaining(leaveType)
	return &InsufficientBalanceError{
		LeaveType: leaveType,
		Available: available,
		Requested: requested,
	}
}

// RecalculateUsedDays rebuilds used_annual and used_sick from the RH-approved
// requests starting in the current calendar year and persists the result.
func (l *Ledger) RecalculateUsedDays(ctx context.Context, b *LeaveBalance) error {
	today := l.clock.Today()

	totals, err := l.repo.SumApprovedDays(ctx, b.EmployeeID.String(), calendar.StartOfYear(today), calendar.EndOfYear(today))
	if err != nil {
		return err
	}

	b.UsedAnnual = totals[TypeAnnual]
	b.UsedSick = totals[TypeSick]

	return l.repo.Update(ctx, b)
}
