package leavebalance

type UpdateAllocationRequest struct {
	AnnualLeave *int `json:"annual_leave" binding:"required,min=0"`
	SickLeave   *int `json:"sick_leave" binding:"required,min=0"`
}

type LeaveBalanceResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	AnnualLeave     int    `json:"annual_leave"`
	SickLeave       int    `json:"sick_leave"`
	UsedAnnual      int    `json:"used_annual"`
	UsedSick        int    `json:"used_sick"`
	RemainingAnnual int    `json:"remaining_annual"`
	RemainingSick   int    `json:"remaining_sick"`
	TotalRemaining  int    `json:"total_remaining"`
	UpdatedAt       string `json:"updated_at"`
}

type RecalculateAllResponse struct {
	UpdatedCount int `json:"updated_count"`
	FailedCount  int `json:"failed_count"`
}
