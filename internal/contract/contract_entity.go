package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeCDI     = "CDI"
	TypeCDD     = "CDD"
	TypeStage   = "STAGE"
	TypeInterim = "INTERIM"
)

const (
	StatusDraft   = "DRAFT"
	StatusPending = "PENDING"
	StatusSigned  = "SIGNED"
	StatusExpired = "EXPIRED"
)

const DefaultRenewalNoticeDays = 30

// RenewableTypes are the fixed-term types the auto-renewal sweep handles.
var RenewableTypes = []string{TypeCDD, TypeStage, TypeInterim}

type Contract struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_contracts_employee"`
	ContractType string     `gorm:"type:varchar(20);not null"`
	Position     string     `gorm:"type:varchar(100)"`
	StartDate    time.Time  `gorm:"type:date;not null"`
	EndDate      *time.Time `gorm:"type:date;index:idx_contracts_status_end"`

	Salary decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Status            string `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_contracts_status_end"`
	NeedsRenewal      bool   `gorm:"not null;default:false"`
	AutoRenewal       bool   `gorm:"not null;default:false"`
	RenewalNoticeDays int    `gorm:"not null;default:30"`

	// ParentContractID links a renewal back to the contract it renews.
	ParentContractID *uuid.UUID `gorm:"type:uuid;index:idx_contracts_parent"`

	SignedByEmployee bool       `gorm:"not null;default:false"`
	SignedByCompany  bool       `gorm:"not null;default:false"`
	SignedDate       *time.Time `gorm:"type:date"`

	Notes     string     `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Contract) TableName() string {
	return "contracts"
}

func IsValidType(t string) bool {
	switch t {
	case TypeCDI, TypeCDD, TypeStage, TypeInterim:
		return true
	}
	return false
}

func IsRenewableType(t string) bool {
	for _, rt := range RenewableTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// IsEditable is true while the contract has not been signed.
func (c Contract) IsEditable() bool {
	return c.Status == StatusDraft || c.Status == StatusPending
}
