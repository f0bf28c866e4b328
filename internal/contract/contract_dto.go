package contract

type CreateContractRequest struct {
	EmployeeID        string  `json:"employee_id" binding:"required,uuid"`
	ContractType      string  `json:"contract_type" binding:"required,oneof=CDI CDD STAGE INTERIM"`
	Position          string  `json:"position" binding:"max=100"`
	StartDate         string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate           *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Salary            string  `json:"salary" binding:"required"`
	AutoRenewal       bool    `json:"auto_renewal"`
	RenewalNoticeDays *int    `json:"renewal_notice_days" binding:"omitempty,min=0"`
	Notes             string  `json:"notes"`
}

type UpdateContractRequest struct {
	ContractType      string  `json:"contract_type" binding:"required,oneof=CDI CDD STAGE INTERIM"`
	Position          string  `json:"position" binding:"max=100"`
	StartDate         string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate           *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Salary            string  `json:"salary" binding:"required"`
	AutoRenewal       bool    `json:"auto_renewal"`
	RenewalNoticeDays *int    `json:"renewal_notice_days" binding:"omitempty,min=0"`
	Notes             string  `json:"notes"`
}

type RenewContractRequest struct {
	NewStartDate *string `json:"new_start_date" binding:"omitempty,datetime=2006-01-02"`
	NewEndDate   *string `json:"new_end_date" binding:"omitempty,datetime=2006-01-02"`
	NewSalary    *string `json:"new_salary"`
}

type ListFilter struct {
	EmployeeID   string
	Status       string
	ContractType string
	NeedsRenewal *bool
}

type ContractResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	ContractType      string  `json:"contract_type"`
	Position          string  `json:"position"`
	StartDate         string  `json:"start_date"`
	EndDate           *string `json:"end_date"`
	Salary            string  `json:"salary"`
	Status            string  `json:"status"`
	NeedsRenewal      bool    `json:"needs_renewal"`
	AutoRenewal       bool    `json:"auto_renewal"`
	RenewalNoticeDays int     `json:"renewal_notice_days"`
	ParentContractID  *string `json:"parent_contract_id"`
	SignedByEmployee  bool    `json:"signed_by_employee"`
	SignedByCompany   bool    `json:"signed_by_company"`
	SignedDate        *string `json:"signed_date"`
	Notes             string  `json:"notes,omitempty"`
	DaysUntilExpiry   *int    `json:"days_until_expiry"`
	AlertLevel        *string `json:"alert_level"`
	IsExpiringSoon    bool    `json:"is_expiring_soon"`
	IsExpired         bool    `json:"is_expired"`
}

type ToggleAutoRenewalResponse struct {
	ID          string `json:"id"`
	AutoRenewal bool   `json:"auto_renewal"`
}

type AlertItem struct {
	Contract        ContractResponse `json:"contract"`
	DaysUntilExpiry int              `json:"days_until_expiry"`
	Message         string           `json:"message"`
}

type AlertGroups struct {
	Critical []AlertItem `json:"critical"`
	Warning  []AlertItem `json:"warning"`
	Info     []AlertItem `json:"info"`
	Expired  []AlertItem `json:"expired"`
}

type AlertsResponse struct {
	Alerts        AlertGroups `json:"alerts"`
	Total         int         `json:"total"`
	CriticalCount int         `json:"critical_count"`
	WarningCount  int         `json:"warning_count"`
	InfoCount     int         `json:"info_count"`
}

// EvaluationReport summarizes an EvaluateAll pass.
type EvaluationReport struct {
	Evaluated int `json:"evaluated"`
	Expired   int `json:"expired"`
	Flagged   int `json:"flagged"`
	Failed    int `json:"failed"`
}

type SweepFailure struct {
	ContractID string `json:"contract_id"`
	Error      string `json:"error"`
}

// SweepReport summarizes an AutoRenew pass. A failed contract never stops the others.
type SweepReport struct {
	Renewed    int            `json:"renewed"`
	Skipped    int            `json:"skipped"`
	Failed     int            `json:"failed"`
	RenewalIDs []string       `json:"renewal_ids"`
	Failures   []SweepFailure `json:"failures,omitempty"`
}
