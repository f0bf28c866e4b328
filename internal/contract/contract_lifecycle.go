package contract

import (
	"time"

	"go-hrms/internal/calendar"
	contracterrors "go-hrms/internal/contract/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Party string

const (
	PartyEmployee Party = "employee"
	PartyCompany  Party = "company"
)

type AlertLevel string

const (
	AlertNone     AlertLevel = ""
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
	AlertInfo     AlertLevel = "info"
)

// Evaluation reports what Evaluate changed.
type Evaluation struct {
	Expired            bool
	RenewalFlagged     bool
	RenewalFlagCleared bool
	EndDateCleared     bool
}

func (e Evaluation) Changed() bool {
	return e.Expired || e.RenewalFlagged || e.RenewalFlagCleared || e.EndDateCleared
}

// DaysUntilExpiry is negative once end_date has passed. ok is false without an end_date.
func (c Contract) DaysUntilExpiry(today time.Time) (days int, ok bool) {
	if c.EndDate == nil {
		return 0, false
	}
	return calendar.DaysBetween(today, *c.EndDate), true
}

// Evaluate normalizes CDI contracts, expires signed contracts past their end
// date and refreshes needs_renewal, in that order. The renewal step repeats
// the expiry check for days < 0.
func (c *Contract) Evaluate(today time.Time) Evaluation {
	var res Evaluation

	if c.ContractType == TypeCDI {
		if c.EndDate != nil {
			c.EndDate = nil
			res.EndDateCleared = true
		}
		if c.NeedsRenewal {
			c.NeedsRenewal = false
			res.RenewalFlagCleared = true
		}
		return res
	}

	if c.EndDate == nil || c.Status != StatusSigned {
		return res
	}

	days, _ := c.DaysUntilExpiry(today)
	if days < 0 {
		c.Status = StatusExpired
		res.Expired = true
	}

	if c.Status == StatusSigned {
		switch {
		case days >= 0 && days <= c.RenewalNoticeDays:
			res.RenewalFlagged = !c.NeedsRenewal
			c.NeedsRenewal = true
		case days < 0:
			res.RenewalFlagged = !c.NeedsRenewal
			c.NeedsRenewal = true
			if c.Status != StatusExpired {
				c.Status = StatusExpired
				res.Expired = true
			}
		default:
			res.RenewalFlagCleared = c.NeedsRenewal
			c.NeedsRenewal = false
		}
	}

	return res
}

// Sign records one party's signature. When both parties have signed a draft
// or pending contract it becomes SIGNED with signed_date = today. Re-signing is a no-op.
func (c *Contract) Sign(party Party, today time.Time) error {
	if c.Status == StatusExpired {
		return contracterrors.ErrContractExpired
	}

	switch party {
	case PartyEmployee:
		c.SignedByEmployee = true
	case PartyCompany:
		c.SignedByCompany = true
	default:
		return contracterrors.ErrInvalidParty
	}

	if c.SignedByEmployee && c.SignedByCompany && c.IsEditable() {
		c.Status = StatusSigned
		signed := today
		c.SignedDate = &signed
	}
	return nil
}

func (c *Contract) Submit() error {
	if c.Status != StatusDraft {
		return contracterrors.ErrNotDraft
	}
	c.Status = StatusPending
	return nil
}

func (c Contract) IsExpiringSoon(today time.Time) bool {
	if c.Status != StatusSigned {
		return false
	}
	days, ok := c.DaysUntilExpiry(today)
	return ok && days >= 0 && days <= c.RenewalNoticeDays
}

func (c Contract) IsExpired(today time.Time) bool {
	if c.Status != StatusSigned {
		return false
	}
	days, ok := c.DaysUntilExpiry(today)
	return ok && days < 0
}

// AlertLevel classifies signed contracts with an end date by how close expiry is.
func (c Contract) AlertLevel(today time.Time) AlertLevel {
	if c.Status != StatusSigned {
		return AlertNone
	}
	days, ok := c.DaysUntilExpiry(today)
	if !ok {
		return AlertNone
	}
	return AlertLevelForDays(days)
}

func AlertLevelForDays(days int) AlertLevel {
	switch {
	case days <= 7:
		return AlertCritical
	case days <= 30:
		return AlertWarning
	case days <= 60:
		return AlertInfo
	default:
		return AlertNone
	}
}

type RenewalOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	Salary    *decimal.Decimal
	CreatedBy *uuid.UUID
	Notes     string
}

// NewRenewal derives the DRAFT contract that renews c and clears c.NeedsRenewal.
// It does not reject CDI contracts; callers decide that policy.
func (c *Contract) NewRenewal(opts RenewalOptions, today time.Time) *Contract {
	start := today
	if opts.StartDate != nil {
		start = *opts.StartDate
	} else if c.EndDate != nil {
		start = c.EndDate.AddDate(0, 0, 1)
	}

	end := opts.EndDate
	if end == nil && c.ContractType != TypeCDI && c.EndDate != nil {
		duration := calendar.DaysBetween(c.StartDate, *c.EndDate)
		e := start.AddDate(0, 0, duration)
		end = &e
	}

	salary := c.Salary
	if opts.Salary != nil {
		salary = *opts.Salary
	}

	parentID := c.ID
	renewal := &Contract{
		ID:                uuid.New(),
		EmployeeID:        c.EmployeeID,
		ContractType:      c.ContractType,
		Position:          c.Position,
		StartDate:         start,
		EndDate:           end,
		Salary:            salary,
		Status:            StatusDraft,
		AutoRenewal:       c.AutoRenewal,
		RenewalNoticeDays: c.RenewalNoticeDays,
		ParentContractID:  &parentID,
		CreatedBy:         opts.CreatedBy,
		Notes:             opts.Notes,
	}

	c.NeedsRenewal = false
	return renewal
}
