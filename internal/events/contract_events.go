package events

import "time"

const ContractLifecycleTopic = "hr.contract.lifecycle.v1"

const (
	EventContractRenewalCreated = "contract_renewal_created"
	EventContractExpired        = "contract_expired"
)

type ContractRenewalCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	ContractID   string    `json:"contract_id"`
	RenewalID    string    `json:"renewal_id"`
	EmployeeID   string    `json:"employee_id"`
	ContractType string    `json:"contract_type"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date,omitempty"`
	CreatedBy    string    `json:"created_by,omitempty"`
	AutoRenewal  bool      `json:"auto_renewal"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type ContractExpiredEvent struct {
	EventType  string    `json:"event_type"`
	ContractID string    `json:"contract_id"`
	EmployeeID string    `json:"employee_id"`
	EndDate    string    `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
