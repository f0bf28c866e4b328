package contract

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go-hrms/internal/calendar"
	contracterrors "go-hrms/internal/contract/errors"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultExpiringSoonDays = 30
	DefaultAlertDays        = 90
)

type EmployeeLookup interface {
	Lookup(ctx context.Context, id string) (employee.Snapshot, error)
}

//go:generate mockgen -source=contract_service.go -destination=mock/contract_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateContractRequest) (ContractResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ContractResponse, error)
	GetByID(ctx context.Context, id string) (ContractResponse, error)
	Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error)
	Submit(ctx context.Context, id string) (ContractResponse, error)
	Sign(ctx context.Context, id string, party Party) (ContractResponse, error)
	Renew(ctx context.Context, actorID, id string, req RenewContractRequest) (ContractResponse, error)
	ToggleAutoRenewal(ctx context.Context, id string) (ToggleAutoRenewalResponse, error)
	Renewals(ctx context.Context, id string) ([]ContractResponse, error)
	History(ctx context.Context, id string) ([]ContractResponse, error)
	ExpiringSoon(ctx context.Context, days int) ([]ContractResponse, error)
	Expired(ctx context.Context) ([]ContractResponse, error)
	NeedsRenewal(ctx context.Context) ([]ContractResponse, error)
	Alerts(ctx context.Context, days int) (AlertsResponse, error)
	EvaluateAll(ctx context.Context) (EvaluationReport, error)
	AutoRenew(ctx context.Context) (SweepReport, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeLookup
	outbox    kafka.OutboxRepository
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeLookup,
	outboxRepo kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		clock:     clk,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateContractRequest) (ContractResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create contract requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("contract_type", req.ContractType),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidEmployeeID
	}
	terms, err := parseTerms(req.ContractType, req.StartDate, req.EndDate, req.Salary, req.RenewalNoticeDays)
	if err != nil {
		s.logger.Warn("create contract validation failed", zap.Error(err))
		return ContractResponse{}, err
	}

	var createdBy *uuid.UUID
	if actorID != "" {
		actor, err := uuid.Parse(actorID)
		if err != nil {
			return ContractResponse{}, contracterrors.ErrInvalidActorID
		}
		createdBy = &actor
	}

	if _, err := s.employees.Lookup(ctx, req.EmployeeID); err != nil {
		s.logger.Warn("create contract employee lookup failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return ContractResponse{}, err
	}

	c := &Contract{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Status:       StatusDraft,
		Position:     req.Position,
		AutoRenewal:  req.AutoRenewal,
		Notes:        req.Notes,
		CreatedBy:    createdBy,
		ContractType: terms.contractType,
	}
	terms.apply(c)
	c.Evaluate(s.clock.Today())

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create contract persist failed", zap.Error(err))
		return ContractResponse{}, err
	}

	s.logger.Info("create contract success",
		zap.String("request_id", rid),
		zap.String("contract_id", c.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return s.mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ContractResponse, error) {
	contracts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all contracts failed", zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(contracts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ContractResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error) {
	terms, err := parseTerms(req.ContractType, req.StartDate, req.EndDate, req.Salary, req.RenewalNoticeDays)
	if err != nil {
		s.logger.Warn("update contract validation failed", zap.String("contract_id", id), zap.Error(err))
		return ContractResponse{}, err
	}

	return s.mutate(ctx, "update", id, func(c *Contract, today time.Time) error {
		if !c.IsEditable() {
			return contracterrors.ErrNotEditable
		}
		c.ContractType = terms.contractType
		c.Position = req.Position
		c.AutoRenewal = req.AutoRenewal
		c.Notes = req.Notes
		terms.apply(c)
		return nil
	})
}

func (s *service) Submit(ctx context.Context, id string) (ContractResponse, error) {
	return s.mutate(ctx, "submit", id, func(c *Contract, _ time.Time) error {
		return c.Submit()
	})
}

func (s *service) Sign(ctx context.Context, id string, party Party) (ContractResponse, error) {
	return s.mutate(ctx, "sign "+string(party), id, func(c *Contract, today time.Time) error {
		return c.Sign(party, today)
	})
}

// mutate locks one contract, applies fn, re-evaluates and persists in a single
// transaction. A write that expires the contract also queues contract_expired.
func (s *service) mutate(
	ctx context.Context,
	op string,
	id string,
	fn func(c *Contract, today time.Time) error,
) (ContractResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug(op+" contract requested",
		zap.String("request_id", rid),
		zap.String("contract_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" contract begin tx failed", zap.Error(err))
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	today := s.clock.Today()
	from := c.Status
	if err := fn(c, today); err != nil {
		s.logger.Warn(op+" contract rejected",
			zap.String("contract_id", id),
			zap.String("status", from),
			zap.Error(err),
		)
		return ContractResponse{}, err
	}

	res := c.Evaluate(today)
	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error(op+" contract persist failed", zap.String("contract_id", id), zap.Error(err))
		return ContractResponse{}, err
	}
	if res.Expired {
		if err := s.queueExpired(ctx, tx, c); err != nil {
			return ContractResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(op+" contract commit failed", zap.String("contract_id", id), zap.Error(err))
		return ContractResponse{}, err
	}

	s.logger.Info(op+" contract success",
		zap.String("request_id", rid),
		zap.String("contract_id", id),
		zap.String("from_status", from),
		zap.String("to_status", c.Status),
	)
	return s.mapToResponse(*c), nil
}

// Renew rejects CDI contracts and contracts without an end date before
// deriving the renewal.
func (s *service) Renew(ctx context.Context, actorID, id string, req RenewContractRequest) (ContractResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("renew contract requested",
		zap.String("request_id", rid),
		zap.String("contract_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}
	opts, err := parseRenewalOptions(req)
	if err != nil {
		s.logger.Warn("renew contract validation failed", zap.String("contract_id", id), zap.Error(err))
		return ContractResponse{}, err
	}
	if actorID != "" {
		actor, err := uuid.Parse(actorID)
		if err != nil {
			return ContractResponse{}, contracterrors.ErrInvalidActorID
		}
		opts.CreatedBy = &actor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("renew contract begin tx failed", zap.Error(err))
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	source, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}
	if source.ContractType == TypeCDI {
		return ContractResponse{}, contracterrors.ErrCDIRenewal
	}
	if source.EndDate == nil {
		return ContractResponse{}, contracterrors.ErrNoEndDate
	}

	renewal, err := s.createRenewal(ctx, tx, source, opts, false)
	if err != nil {
		return ContractResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("renew contract commit failed", zap.String("contract_id", id), zap.Error(err))
		return ContractResponse{}, err
	}

	s.logger.Info("renew contract success",
		zap.String("request_id", rid),
		zap.String("contract_id", id),
		zap.String("renewal_id", renewal.ID.String()),
	)
	return s.mapToResponse(*renewal), nil
}

// createRenewal persists the renewal, the cleared flag on the source and the
// renewal_created event inside tx.
func (s *service) createRenewal(ctx context.Context, tx *sql.Tx, source *Contract, opts RenewalOptions, auto bool) (*Contract, error) {
	qtx := s.repo.WithTx(tx)
	today := s.clock.Today()

	renewal := source.NewRenewal(opts, today)
	if renewal.EndDate != nil && renewal.EndDate.Before(renewal.StartDate) {
		return nil, contracterrors.ErrInvalidDateRange
	}
	renewal.Evaluate(today)

	if err := qtx.Create(ctx, renewal); err != nil {
		s.logger.Error("create renewal persist failed", zap.String("contract_id", source.ID.String()), zap.Error(err))
		return nil, err
	}
	if err := qtx.Update(ctx, source); err != nil {
		s.logger.Error("clear renewal flag failed", zap.String("contract_id", source.ID.String()), zap.Error(err))
		return nil, err
	}

	if s.outbox == nil {
		return renewal, nil
	}
	rid := contextutil.GetRequestID(ctx)
	createdBy := ""
	if renewal.CreatedBy != nil {
		createdBy = renewal.CreatedBy.String()
	}
	evt, err := kafka.NewOutboxEvent(rid, "contract", source.ID.String(),
		events.EventContractRenewalCreated, events.ContractLifecycleTopic,
		events.ContractRenewalCreatedEvent{
			EventType:    events.EventContractRenewalCreated,
			RequestID:    rid,
			ContractID:   source.ID.String(),
			RenewalID:    renewal.ID.String(),
			EmployeeID:   renewal.EmployeeID.String(),
			ContractType: renewal.ContractType,
			StartDate:    calendar.FormatDate(renewal.StartDate),
			EndDate:      calendar.FormatDatePtr(renewal.EndDate),
			CreatedBy:    createdBy,
			AutoRenewal:  auto,
			OccurredAt:   s.clock.Now(),
		})
	if err != nil {
		s.logger.Error("marshal renewal event failed", zap.Error(err))
		return nil, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		s.logger.Error("renewal outbox persist failed", zap.String("contract_id", source.ID.String()), zap.Error(err))
		return nil, err
	}
	return renewal, nil
}

func (s *service) queueExpired(ctx context.Context, tx *sql.Tx, c *Contract) error {
	if s.outbox == nil || c.EndDate == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	evt, err := kafka.NewOutboxEvent(rid, "contract", c.ID.String(),
		events.EventContractExpired, events.ContractLifecycleTopic,
		events.ContractExpiredEvent{
			EventType:  events.EventContractExpired,
			ContractID: c.ID.String(),
			EmployeeID: c.EmployeeID.String(),
			EndDate:    calendar.FormatDate(*c.EndDate),
			OccurredAt: s.clock.Now(),
		})
	if err != nil {
		s.logger.Error("marshal expired event failed", zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		s.logger.Error("expired outbox persist failed", zap.String("contract_id", c.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ToggleAutoRenewal(ctx context.Context, id string) (ToggleAutoRenewalResponse, error) {
	resp, err := s.mutate(ctx, "toggle auto renewal", id, func(c *Contract, _ time.Time) error {
		c.AutoRenewal = !c.AutoRenewal
		return nil
	})
	if err != nil {
		return ToggleAutoRenewalResponse{}, err
	}
	return ToggleAutoRenewalResponse{ID: resp.ID, AutoRenewal: resp.AutoRenewal}, nil
}

func (s *service) Renewals(ctx context.Context, id string) ([]ContractResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	contracts, err := s.repo.FindRenewals(ctx, id)
	if err != nil {
		s.logger.Error("find renewals failed", zap.String("contract_id", id), zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(contracts), nil
}

// History walks parent_contract_id up from id and returns the chain oldest first,
// ending with the contract itself.
func (s *service) History(ctx context.Context, id string) ([]ContractResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, contracterrors.ErrInvalidContractID
	}

	var chain []Contract
	visited := make(map[uuid.UUID]bool)
	next := id
	for next != "" {
		c, err := s.repo.FindByID(ctx, next)
		if err != nil {
			if len(chain) > 0 && errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return nil, mapRepositoryError(err)
		}
		if visited[c.ID] {
			s.logger.Warn("contract history cycle detected", zap.String("contract_id", c.ID.String()))
			break
		}
		visited[c.ID] = true
		chain = append(chain, *c)

		next = ""
		if c.ParentContractID != nil {
			next = c.ParentContractID.String()
		}
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return s.mapToListResponse(chain), nil
}

func (s *service) ExpiringSoon(ctx context.Context, days int) ([]ContractResponse, error) {
	if days <= 0 {
		days = DefaultExpiringSoonDays
	}
	today := s.clock.Today()
	contracts, err := s.repo.FindSignedEndingBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		s.logger.Error("find expiring contracts failed", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(contracts, func(i, j int) bool {
		return contracts[i].EndDate.Before(*contracts[j].EndDate)
	})
	return s.mapToListResponse(contracts), nil
}

// Expired lists contracts past their end date, swept or not. They are always critical.
func (s *service) Expired(ctx context.Context) ([]ContractResponse, error) {
	contracts, err := s.repo.FindExpired(ctx, s.clock.Today())
	if err != nil {
		s.logger.Error("find expired contracts failed", zap.Error(err))
		return nil, err
	}

	resp := s.mapToListResponse(contracts)
	critical := string(AlertCritical)
	for i := range resp {
		resp[i].AlertLevel = &critical
		resp[i].IsExpired = true
	}
	return resp, nil
}

func (s *service) NeedsRenewal(ctx context.Context) ([]ContractResponse, error) {
	contracts, err := s.repo.FindNeedsRenewal(ctx)
	if err != nil {
		s.logger.Error("find contracts needing renewal failed", zap.Error(err))
		return nil, err
	}

	resp := s.mapToListResponse(contracts)
	sort.SliceStable(resp, func(i, j int) bool {
		if resp[i].IsExpired != resp[j].IsExpired {
			return resp[i].IsExpired
		}
		return daysOrMax(resp[i].DaysUntilExpiry) < daysOrMax(resp[j].DaysUntilExpiry)
	})
	return resp, nil
}

func (s *service) Alerts(ctx context.Context, days int) (AlertsResponse, error) {
	if days <= 0 {
		days = DefaultAlertDays
	}
	today := s.clock.Today()
	contracts, err := s.repo.FindSignedEndingBefore(ctx, today.AddDate(0, 0, days))
	if err != nil {
		s.logger.Error("find contract alerts failed", zap.Error(err))
		return AlertsResponse{}, err
	}

	groups := AlertGroups{
		Critical: []AlertItem{},
		Warning:  []AlertItem{},
		Info:     []AlertItem{},
		Expired:  []AlertItem{},
	}
	for _, c := range contracts {
		d, ok := c.DaysUntilExpiry(today)
		if !ok {
			continue
		}
		if c.IsExpired(today) {
			groups.Expired = append(groups.Expired, AlertItem{
				Contract:        s.mapToResponse(c),
				DaysUntilExpiry: d,
				Message:         fmt.Sprintf("contract expired %d day(s) ago", -d),
			})
			continue
		}

		item := AlertItem{
			Contract:        s.mapToResponse(c),
			DaysUntilExpiry: d,
			Message:         fmt.Sprintf("contract expires in %d day(s)", d),
		}
		switch c.AlertLevel(today) {
		case AlertCritical:
			groups.Critical = append(groups.Critical, item)
		case AlertWarning:
			groups.Warning = append(groups.Warning, item)
		case AlertInfo:
			groups.Info = append(groups.Info, item)
		}
	}

	return AlertsResponse{
		Alerts:        groups,
		Total:         len(groups.Critical) + len(groups.Warning) + len(groups.Info) + len(groups.Expired),
		CriticalCount: len(groups.Critical) + len(groups.Expired),
		WarningCount:  len(groups.Warning),
		InfoCount:     len(groups.Info),
	}, nil
}

// EvaluateAll re-evaluates every candidate in its own transaction. One failing
// contract is counted and logged; the pass continues.
func (s *service) EvaluateAll(ctx context.Context) (EvaluationReport, error) {
	ids, err := s.repo.FindEvaluationCandidateIDs(ctx)
	if err != nil {
		s.logger.Error("find evaluation candidates failed", zap.Error(err))
		return EvaluationReport{}, err
	}

	var report EvaluationReport
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := s.evaluateOne(ctx, id)
		if err != nil {
			report.Failed++
			s.logger.Error("evaluate contract failed", zap.String("contract_id", id), zap.Error(err))
			continue
		}
		report.Evaluated++
		if res.Expired {
			report.Expired++
		}
		if res.RenewalFlagged {
			report.Flagged++
		}
	}

	s.logger.Info("evaluate contracts done",
		zap.Int("evaluated", report.Evaluated),
		zap.Int("expired", report.Expired),
		zap.Int("flagged", report.Flagged),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *service) evaluateOne(ctx context.Context, id string) (Evaluation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Evaluation{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}

	res := c.Evaluate(s.clock.Today())
	if !res.Changed() {
		return res, tx.Commit()
	}
	if err := qtx.Update(ctx, c); err != nil {
		return Evaluation{}, err
	}
	if res.Expired {
		if err := s.queueExpired(ctx, tx, c); err != nil {
			return Evaluation{}, err
		}
	}
	return res, tx.Commit()
}

// AutoRenew renews every signed, flagged, auto-renewing fixed-term contract
// that has no renewal yet. Re-running it skips contracts already renewed.
func (s *service) AutoRenew(ctx context.Context) (SweepReport, error) {
	ids, err := s.repo.FindAutoRenewCandidateIDs(ctx)
	if err != nil {
		s.logger.Error("find auto renew candidates failed", zap.Error(err))
		return SweepReport{}, err
	}

	report := SweepReport{RenewalIDs: []string{}}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		renewalID, err := s.autoRenewOne(ctx, id)
		switch {
		case err != nil:
			report.Failed++
			report.Failures = append(report.Failures, SweepFailure{ContractID: id, Error: err.Error()})
			s.logger.Error("auto renew contract failed", zap.String("contract_id", id), zap.Error(err))
		case renewalID == "":
			report.Skipped++
			s.logger.Info("auto renew contract skipped", zap.String("contract_id", id))
		default:
			report.Renewed++
			report.RenewalIDs = append(report.RenewalIDs, renewalID)
			s.logger.Info("auto renew contract success",
				zap.String("contract_id", id),
				zap.String("renewal_id", renewalID),
			)
		}
	}

	s.logger.Info("auto renew done",
		zap.Int("renewed", report.Renewed),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// autoRenewOne returns "" when the contract no longer qualifies or already has a renewal.
func (s *service) autoRenewOne(ctx context.Context, id string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}
	if !c.AutoRenewal || !c.NeedsRenewal || c.Status != StatusSigned || !IsRenewableType(c.ContractType) {
		return "", nil
	}

	exists, err := qtx.HasRenewal(ctx, id)
	if err != nil {
		return "", err
	}
	if exists {
		return "", nil
	}

	renewal, err := s.createRenewal(ctx, tx, c, RenewalOptions{}, true)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return renewal.ID.String(), nil
}

type contractTerms struct {
	contractType string
	startDate    time.Time
	endDate      *time.Time
	salary       decimal.Decimal
	noticeDays   int
}

func (t contractTerms) apply(c *Contract) {
	c.StartDate = t.startDate
	c.EndDate = t.endDate
	c.Salary = t.salary
	c.RenewalNoticeDays = t.noticeDays
}

func parseTerms(contractType, start string, end *string, salary string, noticeDays *int) (contractTerms, error) {
	if !IsValidType(contractType) {
		return contractTerms{}, contracterrors.ErrInvalidContractType
	}
	startDate, err := calendar.ParseDate(start)
	if err != nil {
		return contractTerms{}, contracterrors.ErrInvalidDateFormat
	}

	var endDate *time.Time
	if end != nil && *end != "" {
		e, err := calendar.ParseDate(*end)
		if err != nil {
			return contractTerms{}, contracterrors.ErrInvalidDateFormat
		}
		if e.Before(startDate) {
			return contractTerms{}, contracterrors.ErrInvalidDateRange
		}
		endDate = &e
	}
	if endDate == nil && contractType != TypeCDI {
		return contractTerms{}, contracterrors.ErrEndDateRequired
	}

	amount, err := parseSalary(salary)
	if err != nil {
		return contractTerms{}, err
	}

	notice := DefaultRenewalNoticeDays
	if noticeDays != nil {
		if *noticeDays < 0 {
			return contractTerms{}, contracterrors.ErrInvalidNoticeDays
		}
		notice = *noticeDays
	}

	return contractTerms{
		contractType: contractType,
		startDate:    startDate,
		endDate:      endDate,
		salary:       amount,
		noticeDays:   notice,
	}, nil
}

func parseSalary(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, contracterrors.ErrInvalidSalary
	}
	return amount.Round(2), nil
}

func parseRenewalOptions(req RenewContractRequest) (RenewalOptions, error) {
	var opts RenewalOptions
	if req.NewStartDate != nil && *req.NewStartDate != "" {
		d, err := calendar.ParseDate(*req.NewStartDate)
		if err != nil {
			return RenewalOptions{}, contracterrors.ErrInvalidDateFormat
		}
		opts.StartDate = &d
	}
	if req.NewEndDate != nil && *req.NewEndDate != "" {
		d, err := calendar.ParseDate(*req.NewEndDate)
		if err != nil {
			return RenewalOptions{}, contracterrors.ErrInvalidDateFormat
		}
		opts.EndDate = &d
	}
	if opts.StartDate != nil && opts.EndDate != nil && opts.EndDate.Before(*opts.StartDate) {
		return RenewalOptions{}, contracterrors.ErrInvalidDateRange
	}
	if req.NewSalary != nil && *req.NewSalary != "" {
		amount, err := parseSalary(*req.NewSalary)
		if err != nil {
			return RenewalOptions{}, err
		}
		opts.Salary = &amount
	}
	return opts, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contracterrors.ErrContractNotFound
	}
	return err
}

func daysOrMax(d *int) int {
	if d == nil {
		return math.MaxInt
	}
	return *d
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func (s *service) mapToResponse(c Contract) ContractResponse {
	today := s.clock.Today()
	resp := ContractResponse{
		ID:                c.ID.String(),
		EmployeeID:        c.EmployeeID.String(),
		ContractType:      c.ContractType,
		Position:          c.Position,
		StartDate:         calendar.FormatDate(c.StartDate),
		EndDate:           calendar.FormatDatePtr(c.EndDate),
		Salary:            c.Salary.StringFixed(2),
		Status:            c.Status,
		NeedsRenewal:      c.NeedsRenewal,
		AutoRenewal:       c.AutoRenewal,
		RenewalNoticeDays: c.RenewalNoticeDays,
		ParentContractID:  uuidPtrString(c.ParentContractID),
		SignedByEmployee:  c.SignedByEmployee,
		SignedByCompany:   c.SignedByCompany,
		SignedDate:        calendar.FormatDatePtr(c.SignedDate),
		Notes:             c.Notes,
		IsExpiringSoon:    c.IsExpiringSoon(today),
		IsExpired:         c.IsExpired(today),
	}
	if d, ok := c.DaysUntilExpiry(today); ok {
		resp.DaysUntilExpiry = &d
	}
	if level := c.AlertLevel(today); level != AlertNone {
		v := string(level)
		resp.AlertLevel = &v
	}
	return resp
}

func (s *service) mapToListResponse(contracts []Contract) []ContractResponse {
	resp := make([]ContractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = s.mapToResponse(c)
	}
	return resp
}
