package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName  string     `gorm:"not null"`
	Email     string     `gorm:"uniqueIndex:uq_employee_email"`
	IsActive  bool       `gorm:"not null;default:true"`
	HireDate  time.Time  `gorm:"type:date;not null"`
	ExitDate  *time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is the read-only view other features rely on.
type Snapshot struct {
	ID       string     `json:"id"`
	FullName string     `json:"full_name"`
	IsActive bool       `json:"is_active"`
	HireDate time.Time  `json:"hire_date"`
	ExitDate *time.Time `json:"exit_date,omitempty"`
}

func (e Employee) Snapshot() Snapshot {
	return Snapshot{
		ID:       e.ID.String(),
		FullName: e.FullName,
		IsActive: e.IsActive,
		HireDate: e.HireDate,
		ExitDate: e.ExitDate,
	}
}
