package leavebalance

import (
	"fmt"
	"strings"

	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
)

// InsufficientBalanceError is returned when an approval would overdraw a tracked leave type.
type InsufficientBalanceError struct {
	LeaveType string
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient %s leave balance: %d day(s) available, %d requested",
		strings.ToLower(e.LeaveType), e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return leavebalanceerrors.ErrInsufficientBalance
}

func (e *InsufficientBalanceError) ErrorDetails() any {
	return map[string]any{
		"leave_type": e.LeaveType,
		"available":  e.Available,
		"requested":  e.Requested,
	}
}
