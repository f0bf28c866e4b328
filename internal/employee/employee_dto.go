package employee

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	HireDate string `json:"hire_date" binding:"required,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	HireDate string `json:"hire_date" binding:"required,datetime=2006-01-02"`
}

type DeactivateEmployeeRequest struct {
	ExitDate string `json:"exit_date" binding:"omitempty,datetime=2006-01-02"`
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	IsActive bool    `json:"is_active"`
	HireDate string  `json:"hire_date"`
	ExitDate *string `json:"exit_date,omitempty"`
}
