// Package notification turns lifecycle events into messages for HR staff.
// Delivery (email, chat) is not implemented; LogNotifier records what would be sent.
package notification

import (
	"context"

	"go-hrms/internal/events"

	"go.uber.org/zap"
)

type Notifier interface {
	EmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
	ContractRenewalCreated(ctx context.Context, event events.ContractRenewalCreatedEvent) error
	ContractExpired(ctx context.Context, event events.ContractExpiredEvent) error
	LeaveBalanceInsufficient(ctx context.Context, event events.LeaveBalanceInsufficientEvent) error
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) EmployeeCreated(_ context.Context, event events.EmployeeCreatedEvent) error {
	n.logger.Info("notify employee onboarding",
		zap.String("employee_id", event.EmployeeID),
		zap.String("full_name", event.FullName),
		zap.String("hire_date", event.HireDate),
	)
	return nil
}

func (n *LogNotifier) ContractRenewalCreated(_ context.Context, event events.ContractRenewalCreatedEvent) error {
	endDate := "open-ended"
	if event.EndDate != nil {
		endDate = *event.EndDate
	}
	n.logger.Info("notify contract renewal drafted",
		zap.String("contract_id", event.ContractID),
		zap.String("renewal_id", event.RenewalID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("start_date", event.StartDate),
		zap.String("end_date", endDate),
		zap.Bool("auto_renewal", event.AutoRenewal),
	)
	return nil
}

func (n *LogNotifier) ContractExpired(_ context.Context, event events.ContractExpiredEvent) error {
	n.logger.Warn("notify contract expired",
		zap.String("contract_id", event.ContractID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("end_date", event.EndDate),
	)
	return nil
}

func (n *LogNotifier) LeaveBalanceInsufficient(_ context.Context, event events.LeaveBalanceInsufficientEvent) error {
	n.logger.Warn("notify leave approval denied for insufficient balance",
		zap.String("leave_request_id", event.LeaveRequestID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("leave_type", event.LeaveType),
		zap.Int("available", event.Available),
		zap.Int("requested", event.Requested),
	)
	return nil
}
