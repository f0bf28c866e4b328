package leave

import (
	"time"

	"go-hrms/internal/leavebalance"

	"github.com/google/uuid"
)

const (
	TypeAnnual    = leavebalance.TypeAnnual
	TypeSick      = leavebalance.TypeSick
	TypePersonal  = "PERSONAL"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
	TypeUnpaid    = "UNPAID"
)

const (
	StatusPending         = "PENDING"
	StatusManagerApproved = "MANAGER_APPROVED"
	StatusRHApproved      = leavebalance.ApprovedStatus
	StatusRejected        = "REJECTED"
	StatusCancelled       = "CANCELLED"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`

	LeaveType string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	Days      int       `gorm:"not null"`
	Reason    string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`

	ManagerApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ManagerApprovedAt      *time.Time
	ManagerRejectionReason string     `gorm:"type:text"`
	RHApprovedBy           *uuid.UUID `gorm:"column:rh_approved_by;type:uuid"`
	RHApprovedAt           *time.Time `gorm:"column:rh_approved_at"`
	RHRejectionReason      string     `gorm:"column:rh_rejection_reason;type:text"`
	CancelledAt            *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// IsCurrent reports an RH-approved leave that covers today.
func (l LeaveRequest) IsCurrent(today time.Time) bool {
	return l.Status == StatusRHApproved && !today.Before(l.StartDate) && !today.After(l.EndDate)
}

func (l LeaveRequest) IsUpcoming(today time.Time) bool {
	return l.Status == StatusRHApproved && l.StartDate.After(today)
}

func (l LeaveRequest) IsPast(today time.Time) bool {
	return l.EndDate.Before(today)
}

func (l LeaveRequest) IsTerminal() bool {
	return l.Status == StatusRejected || l.Status == StatusCancelled
}

func IsValidType(t string) bool {
	switch t {
	case TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	}
	return false
}
