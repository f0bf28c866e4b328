package leavebalance

import (
	"time"

	"github.com/google/uuid"
)

// Leave types tracked by the ledger. Every other type is unlimited.
const (
	TypeAnnual = "ANNUAL"
	TypeSick   = "SICK"
)

// ApprovedStatus is the leave request status counted as used days.
const ApprovedStatus = "RH_APPROVED"

type Allocation struct {
	Annual int
	Sick   int
}

func DefaultAllocation() Allocation {
	return Allocation{Annual: 25, Sick: 10}
}

// LeaveBalance caches used days per employee; RecalculateUsedDays is the only writer of the used_* fields.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee"`
	AnnualLeave int       `gorm:"not null"`
	SickLeave   int       `gorm:"not null"`
	UsedAnnual  int       `gorm:"not null;default:0"`
	UsedSick    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b LeaveBalance) RemainingAnnual() int {
	return max(0, b.AnnualLeave-b.UsedAnnual)
}

func (b LeaveBalance) RemainingSick() int {
	return max(0, b.SickLeave-b.UsedSick)
}

func (b LeaveBalance) TotalRemaining() int {
	return b.RemainingAnnual() + b.RemainingSick()
}

// Remaining reports the days left for leaveType and whether that type is tracked.
func (b LeaveBalance) Remaining(leaveType string) (int, bool) {
	switch leaveType {
	case TypeAnnual:
		return b.RemainingAnnual(), true
	case TypeSick:
		return b.RemainingSick(), true
	default:
		return 0, false
	}
}

// CheckSufficient is always true for untracked leave types.
func (b LeaveBalance) CheckSufficient(leaveType string, requested int) bool {
	remaining, tracked := b.Remaining(leaveType)
	if !tracked {
		return true
	}
	return requested <= remaining
}

func IsTracked(leaveType string) bool {
	return leaveType == TypeAnnual || leaveType == TypeSick
}
