package leavebalance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]LeaveBalance, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*LeaveBalance, error)
	FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*LeaveBalance, error)
	CreateIfAbsent(ctx context.Context, b *LeaveBalance) error
	Update(ctx context.Context, b *LeaveBalance) error
	SumApprovedDays(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.conn(ctx).
		Order("created_at ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByEmployeeIDForUpdate holds the row lock until the surrounding transaction ends.
func (r *repository) FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CreateIfAbsent(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoNothing: true,
		}).
		Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).Save(b).Error
}

type approvedDaysRow struct {
	LeaveType string
	Total     int
}

// SumApprovedDays totals days of RH-approved requests starting in [from, to], per leave type.
func (r *repository) SumApprovedDays(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error) {
	var rows []approvedDaysRow
	err := r.conn(ctx).
		Table("leave_requests").
		Select("leave_type, COALESCE(SUM(days), 0) AS total").
		Where("employee_id = ?", employeeID).
		Where("status = ?", ApprovedStatus).
		Where("leave_type IN ?", []string{TypeAnnual, TypeSick}).
		Where("start_date BETWEEN ? AND ?", from, to).
		Group("leave_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.LeaveType] = row.Total
	}
	return totals, nil
}
