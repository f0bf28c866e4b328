package leave

import (
	"time"

	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/google/uuid"
)

// Transitions mutate the request in memory only; callers persist the result.

func (l *LeaveRequest) ApproveByManager(approver uuid.UUID, at time.Time) error {
	if l.Status != StatusPending {
		return leaveerrors.ErrNotPending
	}
	l.Status = StatusManagerApproved
	l.ManagerApprovedBy = &approver
	l.ManagerApprovedAt = &at
	return nil
}

func (l *LeaveRequest) RejectByManager(reason string) error {
	if l.Status != StatusPending {
		return leaveerrors.ErrNotPending
	}
	l.Status = StatusRejected
	l.ManagerRejectionReason = reason
	return nil
}

// ApproveByRH only flips the state; the balance gate is enforced by the service
// inside the same transaction.
func (l *LeaveRequest) ApproveByRH(approver uuid.UUID, at time.Time) error {
	if l.Status != StatusManagerApproved {
		return leaveerrors.ErrNotManagerApproved
	}
	l.Status = StatusRHApproved
	l.RHApprovedBy = &approver
	l.RHApprovedAt = &at
	return nil
}

func (l *LeaveRequest) RejectByRH(reason string) error {
	if l.Status != StatusManagerApproved {
		return leaveerrors.ErrNotManagerApproved
	}
	l.Status = StatusRejected
	l.RHRejectionReason = reason
	return nil
}

// Cancel returns true when the request was RH-approved, meaning the ledger must be recomputed.
func (l *LeaveRequest) Cancel(at time.Time) (bool, error) {
	if l.IsTerminal() {
		return false, leaveerrors.ErrCannotCancel
	}
	wasApproved := l.Status == StatusRHApproved
	l.Status = StatusCancelled
	l.CancelledAt = &at
	return wasApproved, nil
}
