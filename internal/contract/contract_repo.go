package contract

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Contract) error
	Update(ctx context.Context, c *Contract) error
	FindAll(ctx context.Context, filter ListFilter) ([]Contract, error)
	FindByID(ctx context.Context, id string) (*Contract, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Contract, error)
	FindRenewals(ctx context.Context, parentID string) ([]Contract, error)
	HasRenewal(ctx context.Context, parentID string) (bool, error)
	FindSignedEndingBetween(ctx context.Context, from, to time.Time) ([]Contract, error)
	FindSignedEndingBefore(ctx context.Context, to time.Time) ([]Contract, error)
	FindExpired(ctx context.Context, today time.Time) ([]Contract, error)
	FindNeedsRenewal(ctx context.Context) ([]Contract, error)
	FindEvaluationCandidateIDs(ctx context.Context) ([]string, error)
	FindAutoRenewCandidateIDs(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, c *Contract) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Contract) error {
	return r.conn(ctx).Save(c).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Contract, error) {
	db := r.conn(ctx).Model(&Contract{})
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.ContractType != "" {
		db = db.Where("contract_type = ?", filter.ContractType)
	}
	if filter.NeedsRenewal != nil {
		db = db.Where("needs_renewal = ?", *filter.NeedsRenewal)
	}

	var contracts []Contract
	err := db.Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Contract, error) {
	var c Contract
	if err := r.conn(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDForUpdate serializes writers of a single contract; nothing locks across contracts.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Contract, error) {
	var c Contract
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindRenewals(ctx context.Context, parentID string) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Where("parent_contract_id = ?", parentID).
		Order("start_date ASC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) HasRenewal(ctx context.Context, parentID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Contract{}).
		Where("parent_contract_id = ?", parentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindSignedEndingBetween(ctx context.Context, from, to time.Time) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Where("status = ?", StatusSigned).
		Where("end_date IS NOT NULL").
		Where("end_date >= ? AND end_date <= ?", from, to).
		Order("end_date ASC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindSignedEndingBefore(ctx context.Context, to time.Time) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Where("status = ?", StatusSigned).
		Where("end_date IS NOT NULL").
		Where("end_date <= ?", to).
		Order("end_date ASC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindExpired(ctx context.Context, today time.Time) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Where("status IN ?", []string{StatusSigned, StatusExpired}).
		Where("end_date < ?", today).
		Order("end_date DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindNeedsRenewal(ctx context.Context) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Where("status = ?", StatusSigned).
		Where("needs_renewal = ?", true).
		Find(&contracts).Error
	return contracts, err
}

// FindEvaluationCandidateIDs returns signed contracts with an end date plus any
// CDI still carrying one, the only rows Evaluate can change.
func (r *repository) FindEvaluationCandidateIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&Contract{}).
		Where("end_date IS NOT NULL").
		Where("status = ? OR contract_type = ?", StatusSigned, TypeCDI).
		Order("end_date ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) FindAutoRenewCandidateIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&Contract{}).
		Where("auto_renewal = ?", true).
		Where("needs_renewal = ?", true).
		Where("status = ?", StatusSigned).
		Where("contract_type IN ?", RenewableTypes).
		Order("end_date ASC").
		Pluck("id", &ids).Error
	return ids, err
}
