package events

import "time"

const LeaveBalanceTopic = "hr.leave.balance.v1"

const EventLeaveBalanceInsufficient = "leave_balance_insufficient"

type LeaveBalanceInsufficientEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	LeaveType      string    `json:"leave_type"`
	Available      int       `json:"available"`
	Requested      int       `json:"requested"`
	DeniedBy       string    `json:"denied_by,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
