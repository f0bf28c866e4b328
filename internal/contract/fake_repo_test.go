package contract_test

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"go-hrms/internal/contract"

	"gorm.io/gorm"
)

// memoryRepo keeps contracts in insertion order so sweeps visit them deterministically.
type memoryRepo struct {
	contracts map[string]*contract.Contract
	order     []string
	createErr map[string]error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		contracts: map[string]*contract.Contract{},
		createErr: map[string]error{},
	}
}

func (m *memoryRepo) put(c contract.Contract) {
	id := c.ID.String()
	if _, ok := m.contracts[id]; !ok {
		m.order = append(m.order, id)
	}
	m.contracts[id] = &c
}

func (m *memoryRepo) all() []contract.Contract {
	res := make([]contract.Contract, 0, len(m.order))
	for _, id := range m.order {
		res = append(res, *m.contracts[id])
	}
	return res
}

func (m *memoryRepo) WithTx(*sql.Tx) contract.Repository { return m }

func (m *memoryRepo) Create(_ context.Context, c *contract.Contract) error {
	if c.ParentContractID != nil {
		if err := m.createErr[c.ParentContractID.String()]; err != nil {
			return err
		}
	}
	m.put(*c)
	return nil
}

func (m *memoryRepo) Update(_ context.Context, c *contract.Contract) error {
	m.put(*c)
	return nil
}

func (m *memoryRepo) FindAll(_ context.Context, filter contract.ListFilter) ([]contract.Contract, error) {
	var res []contract.Contract
	for _, c := range m.all() {
		if filter.EmployeeID != "" && c.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.ContractType != "" && c.ContractType != filter.ContractType {
			continue
		}
		if filter.NeedsRenewal != nil && c.NeedsRenewal != *filter.NeedsRenewal {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func (m *memoryRepo) FindByID(_ context.Context, id string) (*contract.Contract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memoryRepo) FindByIDForUpdate(ctx context.Context, id string) (*contract.Contract, error) {
	return m.FindByID(ctx, id)
}

func (m *memoryRepo) FindRenewals(_ context.Context, parentID string) ([]contract.Contract, error) {
	var res []contract.Contract
	for _, c := range m.all() {
		if c.ParentContractID != nil && c.ParentContractID.String() == parentID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (m *memoryRepo) HasRenewal(ctx context.Context, parentID string) (bool, error) {
	renewals, err := m.FindRenewals(ctx, parentID)
	return len(renewals) > 0, err
}

func (m *memoryRepo) FindSignedEndingBetween(_ context.Context, from, to time.Time) ([]contract.Contract, error) {
	return m.signedEnding(func(end time.Time) bool {
		return !end.Before(from) && !end.After(to)
	}), nil
}

func (m *memoryRepo) FindSignedEndingBefore(_ context.Context, to time.Time) ([]contract.Contract, error) {
	return m.signedEnding(func(end time.Time) bool { return !end.After(to) }), nil
}

func (m *memoryRepo) signedEnding(match func(end time.Time) bool) []contract.Contract {
	var res []contract.Contract
	for _, c := range m.all() {
		if c.Status == contract.StatusSigned && c.EndDate != nil && match(*c.EndDate) {
			res = append(res, c)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].EndDate.Before(*res[j].EndDate) })
	return res
}

func (m *memoryRepo) FindExpired(_ context.Context, today time.Time) ([]contract.Contract, error) {
	var res []contract.Contract
	for _, c := range m.all() {
		if c.Status != contract.StatusSigned && c.Status != contract.StatusExpired {
			continue
		}
		if c.EndDate != nil && c.EndDate.Before(today) {
			res = append(res, c)
		}
	}
	return res, nil
}

func (m *memoryRepo) FindNeedsRenewal(_ context.Context) ([]contract.Contract, error) {
	var res []contract.Contract
	for _, c := range m.all() {
		if c.Status == contract.StatusSigned && c.NeedsRenewal {
			res = append(res, c)
		}
	}
	return res, nil
}

func (m *memoryRepo) FindEvaluationCandidateIDs(_ context.Context) ([]string, error) {
	var ids []string
	for _, c := range m.all() {
		if c.EndDate == nil {
			continue
		}
		if c.Status == contract.StatusSigned || c.ContractType == contract.TypeCDI {
			ids = append(ids, c.ID.String())
		}
	}
	return ids, nil
}

func (m *memoryRepo) FindAutoRenewCandidateIDs(_ context.Context) ([]string, error) {
	var ids []string
	for _, c := range m.all() {
		if c.AutoRenewal && c.NeedsRenewal && c.Status == contract.StatusSigned && contract.IsRenewableType(c.ContractType) {
			ids = append(ids, c.ID.String())
		}
	}
	return ids, nil
}

var errDiskFull = errors.New("disk full")
