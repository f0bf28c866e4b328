package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=ANNUAL SICK PERSONAL MATERNITY PATERNITY UNPAID"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Days       *int   `json:"days" binding:"omitempty,min=1"`
	Reason     string `json:"reason"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

type ListFilter struct {
	EmployeeID string
	Status     string
}

type LeaveResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             string  `json:"employee_id"`
	LeaveType              string  `json:"leave_type"`
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
	Days                   int     `json:"days"`
	Reason                 string  `json:"reason"`
	Status                 string  `json:"status"`
	ManagerApprovedBy      *string `json:"manager_approved_by,omitempty"`
	ManagerApprovedAt      *string `json:"manager_approved_at,omitempty"`
	ManagerRejectionReason string  `json:"manager_rejection_reason,omitempty"`
	RHApprovedBy           *string `json:"rh_approved_by,omitempty"`
	RHApprovedAt           *string `json:"rh_approved_at,omitempty"`
	RHRejectionReason      string  `json:"rh_rejection_reason,omitempty"`
	IsCurrent              bool    `json:"is_current"`
	IsUpcoming             bool    `json:"is_upcoming"`
	IsPast                 bool    `json:"is_past"`
	CreatedAt              string  `json:"created_at"`
}
