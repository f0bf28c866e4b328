package contract_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-hrms/internal/contract"
	contracterrors "go-hrms/internal/contract/errors"
	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var today = d(2024, 5, 15)

type fakeEmployeeLookup struct {
	LookupFn func(ctx context.Context, id string) (employee.Snapshot, error)
}

func (f *fakeEmployeeLookup) Lookup(ctx context.Context, id string) (employee.Snapshot, error) {
	return f.LookupFn(ctx, id)
}

type contractServiceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   contract.Service
	repo      *memoryRepo
	outbox    *kafkaMock.MockOutboxRepository
	employees *fakeEmployeeLookup
}

func setupContractServiceTest(t *testing.T) *contractServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	repo := newMemoryRepo()
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()
	employees := &fakeEmployeeLookup{
		LookupFn: func(_ context.Context, id string) (employee.Snapshot, error) {
			return employee.Snapshot{ID: id, IsActive: true, HireDate: d(2020, 1, 6)}, nil
		},
	}

	svc := contract.NewService(db, repo, employees, outbox, clock.Fixed(today))

	return &contractServiceDeps{
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outbox,
		employees: employees,
	}
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string {
	return &s
}

func TestContractService_Create(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-create")
	actor := uuid.NewString()

	t.Run("success - fixed term draft", func(t *testing.T) {
		deps := setupContractServiceTest(t)

		res, err := deps.service.Create(ctx, actor, contract.CreateContractRequest{
			EmployeeID:   uuid.NewString(),
			ContractType: contract.TypeCDD,
			Position:     "Accountant",
			StartDate:    "2024-06-01",
			EndDate:      strPtr("2024-11-30"),
			Salary:       "2500.5",
		})

		require.NoError(t, err)
		assert.Equal(t, contract.StatusDraft, res.Status)
		assert.Equal(t, "2500.50", res.Salary)
		assert.Equal(t, contract.DefaultRenewalNoticeDays, res.RenewalNoticeDays)
		assert.Equal(t, "2024-11-30", *res.EndDate)
		assert.Nil(t, res.AlertLevel)
		assert.Len(t, deps.repo.contracts, 1)
	})

	t.Run("success - CDI end date is dropped", func(t *testing.T) {
		deps := setupContractServiceTest(t)

		res, err := deps.service.Create(ctx, actor, contract.CreateContractRequest{
			EmployeeID:   uuid.NewString(),
			ContractType: contract.TypeCDI,
			StartDate:    "2024-06-01",
			EndDate:      strPtr("2025-06-01"),
			Salary:       "4100",
		})

		require.NoError(t, err)
		assert.Nil(t, res.EndDate)
		assert.Nil(t, res.DaysUntilExpiry)
		assert.False(t, res.NeedsRenewal)
	})

	tests := []struct {
		name    string
		req     contract.CreateContractRequest
		wantErr error
	}{
		{
			name:    "negative - missing end date on CDD",
			req:     contract.CreateContractRequest{EmployeeID: uuid.NewString(), ContractType: contract.TypeCDD, StartDate: "2024-06-01", Salary: "2000"},
			wantErr: contracterrors.ErrEndDateRequired,
		},
		{
			name:    "negative - end before start",
			req:     contract.CreateContractRequest{EmployeeID: uuid.NewString(), ContractType: contract.TypeStage, StartDate: "2024-06-01", EndDate: strPtr("2024-05-01"), Salary: "900"},
			wantErr: contracterrors.ErrInvalidDateRange,
		},
		{
			name:    "negative - zero salary",
			req:     contract.CreateContractRequest{EmployeeID: uuid.NewString(), ContractType: contract.TypeCDI, StartDate: "2024-06-01", Salary: "0"},
			wantErr: contracterrors.ErrInvalidSalary,
		},
		{
			name:    "negative - unknown type",
			req:     contract.CreateContractRequest{EmployeeID: uuid.NewString(), ContractType: "FREELANCE", StartDate: "2024-06-01", Salary: "900"},
			wantErr: contracterrors.ErrInvalidContractType,
		},
		{
			name:    "negative - invalid employee id",
			req:     contract.CreateContractRequest{EmployeeID: "nope", ContractType: contract.TypeCDI, StartDate: "2024-06-01", Salary: "900"},
			wantErr: contracterrors.ErrInvalidEmployeeID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupContractServiceTest(t)

			_, err := deps.service.Create(ctx, actor, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, deps.repo.contracts)
		})
	}

	t.Run("negative - unknown employee", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		deps.employees.LookupFn = func(context.Context, string) (employee.Snapshot, error) {
			return employee.Snapshot{}, employeeerrors.ErrEmployeeNotFound
		}

		_, err := deps.service.Create(ctx, actor, contract.CreateContractRequest{
			EmployeeID: uuid.NewString(), ContractType: contract.TypeCDI, StartDate: "2024-06-01", Salary: "900",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestContractService_Sign(t *testing.T) {
	ctx := context.Background()

	t.Run("success - second signature signs the contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		c := signedContract(contract.TypeCDD, d(2024, 6, 1), datePtr(d(2024, 12, 31)))
		c.Status = contract.StatusPending
		c.SignedByEmployee, c.SignedByCompany = false, false
		deps.repo.put(c)
		expectTx(deps.sqlMock, true)
		expectTx(deps.sqlMock, true)

		res, err := deps.service.Sign(ctx, c.ID.String(), contract.PartyEmployee)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusPending, res.Status)

		res, err = deps.service.Sign(ctx, c.ID.String(), contract.PartyCompany)
		require.NoError(t, err)
		assert.Equal(t, contract.StatusSigned, res.Status)
		assert.Equal(t, "2024-05-15", *res.SignedDate)
		assert.Equal(t, contract.StatusSigned, deps.repo.contracts[c.ID.String()].Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - signing a lapsed contract expires it and queues an event", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		c := signedContract(contract.TypeCDD, d(2024, 1, 1), datePtr(d(2024, 4, 30)))
		c.Status = contract.StatusPending
		c.SignedByCompany = false
		deps.repo.put(c)
		expectTx(deps.sqlMock, true)

		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.EventContractExpired, evt.EventType)
				assert.Equal(t, events.ContractLifecycleTopic, evt.Topic)
				assert.Equal(t, c.ID.String(), evt.AggregateID)
				return nil
			})

		res, err := deps.service.Sign(ctx, c.ID.String(), contract.PartyCompany)

		require.NoError(t, err)
		assert.Equal(t, contract.StatusExpired, res.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - expired contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		c := signedContract(contract.TypeCDD, d(2023, 1, 1), datePtr(d(2023, 12, 31)))
		c.Status = contract.StatusExpired
		deps.repo.put(c)
		expectTx(deps.sqlMock, false)

		_, err := deps.service.Sign(ctx, c.ID.String(), contract.PartyEmployee)

		assert.ErrorIs(t, err, contracterrors.ErrContractExpired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		expectTx(deps.sqlMock, false)

		_, err := deps.service.Sign(ctx, uuid.NewString(), contract.PartyEmployee)

		assert.ErrorIs(t, err, contracterrors.ErrContractNotFound)
	})
}

func TestContractService_Update(t *testing.T) {
	ctx := context.Background()
	req := contract.UpdateContractRequest{
		ContractType: contract.TypeCDD,
		Position:     "Lead Accountant",
		StartDate:    "2024-07-01",
		EndDate:      strPtr("2024-12-31"),
		Salary:       "2750.00",
	}

	t.Run("success - pending contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		c := signedContract(contract.TypeCDD, d(2024, 6, 1), datePtr(d(2024, 11, 30)))
		c.Status = contract.StatusPending
		deps.repo.put(c)
		expectTx(deps.sqlMock, true)

		res, err := deps.service.Update(ctx, c.ID.String(), req)

		require.NoError(t, err)
		assert.Equal(t, "Lead Accountant", res.Position)
		assert.Equal(t, "2024-07-01", res.StartDate)
		assert.Equal(t, "2750.00", res.Salary)
	})

	t.Run("negative - signed contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		c := signedContract(contract.TypeCDD, d(2024, 6, 1), datePtr(d(2024, 11, 30)))
		deps.repo.put(c)
		expectTx(deps.sqlMock, false)

		_, err := deps.service.Update(ctx, c.ID.String(), req)

		assert.ErrorIs(t, err, contracterrors.ErrNotEditable)
		assert.Equal(t, "Backend Engineer", deps.repo.contracts[c.ID.String()].Position)
	})
}

func TestContractService_Renew(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-renew")
	actor := uuid.NewString()

	t.Run("success - default dates and renewal event", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		src := signedContract(contract.TypeCDD, d(2024, 1, 1), datePtr(d(2024, 6, 30)))
		src.NeedsRenewal = true
		deps.repo.put(src)
		expectTx(deps.sqlMock, true)

		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.EventContractRenewalCreated, evt.EventType)
				assert.Equal(t, "req-renew", evt.RequestID)

				var payload events.ContractRenewalCreatedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, src.ID.String(), payload.ContractID)
				assert.Equal(t, "2024-07-01", payload.StartDate)
				assert.Equal(t, actor, payload.CreatedBy)
				assert.False(t, payload.AutoRenewal)
				return nil
			})

		res, err := deps.service.Renew(ctx, actor, src.ID.String(), contract.RenewContractRequest{})

		require.NoError(t, err)
		assert.Equal(t, contract.StatusDraft, res.Status)
		assert.Equal(t, "2024-07-01", res.StartDate)
		assert.Equal(t, "2024-12-29", *res.EndDate)
		assert.Equal(t, src.ID.String(), *res.ParentContractID)
		assert.Equal(t, "3200.00", res.Salary)
		assert.False(t, deps.repo.contracts[src.ID.String()].NeedsRenewal)
		assert.Len(t, deps.repo.contracts, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - explicit salary", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		src := signedContract(contract.TypeStage, d(2024, 1, 1), datePtr(d(2024, 6, 30)))
		deps.repo.put(src)
		expectTx(deps.sqlMock, true)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.service.Renew(ctx, actor, src.ID.String(), contract.RenewContractRequest{
			NewSalary:  strPtr("1200"),
			NewEndDate: strPtr("2024-08-31"),
		})

		require.NoError(t, err)
		assert.Equal(t, "1200.00", res.Salary)
		assert.Equal(t, "2024-08-31", *res.EndDate)
	})

	t.Run("negative - CDI", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		src := signedContract(contract.TypeCDI, d(2020, 1, 1), nil)
		deps.repo.put(src)
		expectTx(deps.sqlMock, false)

		_, err := deps.service.Renew(ctx, actor, src.ID.String(), contract.RenewContractRequest{})

		assert.ErrorIs(t, err, contracterrors.ErrCDIRenewal)
		assert.Len(t, deps.repo.contracts, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - no end date", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		src := signedContract(contract.TypeInterim, d(2024, 1, 1), nil)
		deps.repo.put(src)
		expectTx(deps.sqlMock, false)

		_, err := deps.service.Renew(ctx, actor, src.ID.String(), contract.RenewContractRequest{})

		assert.ErrorIs(t, err, contracterrors.ErrNoEndDate)
	})

	t.Run("negative - invalid new dates are rejected before the transaction", func(t *testing.T) {
		deps := setupContractServiceTest(t)

		_, err := deps.service.Renew(ctx, actor, uuid.NewString(), contract.RenewContractRequest{
			NewStartDate: strPtr("2024-09-01"),
			NewEndDate:   strPtr("2024-08-01"),
		})

		assert.ErrorIs(t, err, contracterrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestContractService_AutoRenew(t *testing.T) {
	ctx := context.Background()

	flagged := func(contractType string) contract.Contract {
		c := signedContract(contractType, d(2024, 1, 1), datePtr(d(2024, 5, 31)))
		c.AutoRenewal = true
		c.NeedsRenewal = true
		return c
	}

	t.Run("failures are isolated and existing renewals skipped", func(t *testing.T) {
		deps := setupContractServiceTest(t)

		ok := flagged(contract.TypeCDD)
		alreadyRenewed := flagged(contract.TypeStage)
		broken := flagged(contract.TypeInterim)
		permanent := flagged(contract.TypeCDI)
		manual := flagged(contract.TypeCDD)
		manual.AutoRenewal = false

		deps.repo.put(ok)
		deps.repo.put(alreadyRenewed)
		deps.repo.put(broken)
		deps.repo.put(permanent)
		deps.repo.put(manual)
		deps.repo.put(*alreadyRenewed.NewRenewal(contract.RenewalOptions{}, today))
		deps.repo.contracts[alreadyRenewed.ID.String()].NeedsRenewal = true
		deps.repo.createErr[broken.ID.String()] = errDiskFull

		expectTx(deps.sqlMock, true)
		expectTx(deps.sqlMock, false)
		expectTx(deps.sqlMock, false)

		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
				var payload events.ContractRenewalCreatedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, ok.ID.String(), payload.ContractID)
				assert.True(t, payload.AutoRenewal)
				return nil
			})

		report, err := deps.service.AutoRenew(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Renewed)
		assert.Equal(t, 1, report.Skipped)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, broken.ID.String(), report.Failures[0].ContractID)
		assert.Contains(t, report.Failures[0].Error, "disk full")
		require.Len(t, report.RenewalIDs, 1)

		renewal := deps.repo.contracts[report.RenewalIDs[0]]
		assert.Equal(t, ok.ID, *renewal.ParentContractID)
		assert.Equal(t, d(2024, 6, 1), renewal.StartDate)
		assert.False(t, deps.repo.contracts[ok.ID.String()].NeedsRenewal)
		assert.True(t, deps.repo.contracts[broken.ID.String()].NeedsRenewal)
		assert.True(t, deps.repo.contracts[permanent.ID.String()].NeedsRenewal)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("re-running the sweep creates no duplicate", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		c := flagged(contract.TypeCDD)
		deps.repo.put(c)

		expectTx(deps.sqlMock, true)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		first, err := deps.service.AutoRenew(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Renewed)

		deps.repo.contracts[c.ID.String()].NeedsRenewal = true
		expectTx(deps.sqlMock, false)

		second, err := deps.service.AutoRenew(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Renewed)
		assert.Equal(t, 1, second.Skipped)

		renewals, _ := deps.repo.FindRenewals(ctx, c.ID.String())
		assert.Len(t, renewals, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestContractService_EvaluateAll(t *testing.T) {
	ctx := context.Background()
	deps := setupContractServiceTest(t)

	lapsed := signedContract(contract.TypeCDD, d(2024, 1, 1), datePtr(d(2024, 5, 14)))
	soon := signedContract(contract.TypeStage, d(2024, 1, 1), datePtr(d(2024, 5, 25)))
	later := signedContract(contract.TypeCDD, d(2024, 1, 1), datePtr(d(2024, 12, 31)))
	cdi := signedContract(contract.TypeCDI, d(2024, 1, 1), datePtr(d(2024, 12, 31)))
	cdi.Status = contract.StatusDraft
	deps.repo.put(lapsed)
	deps.repo.put(soon)
	deps.repo.put(later)
	deps.repo.put(cdi)

	for i := 0; i < 4; i++ {
		expectTx(deps.sqlMock, true)
	}
	deps.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
			var payload events.ContractExpiredEvent
			assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
			assert.Equal(t, lapsed.ID.String(), payload.ContractID)
			assert.Equal(t, "2024-05-14", payload.EndDate)
			return nil
		})

	report, err := deps.service.EvaluateAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, contract.EvaluationReport{Evaluated: 4, Expired: 1, Flagged: 1}, report)
	assert.Equal(t, contract.StatusExpired, deps.repo.contracts[lapsed.ID.String()].Status)
	assert.True(t, deps.repo.contracts[soon.ID.String()].NeedsRenewal)
	assert.False(t, deps.repo.contracts[later.ID.String()].NeedsRenewal)
	assert.Nil(t, deps.repo.contracts[cdi.ID.String()].EndDate)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestContractService_Listings(t *testing.T) {
	ctx := context.Background()

	seed := func(deps *contractServiceDeps, offsets ...int) []contract.Contract {
		var res []contract.Contract
		for _, off := range offsets {
			c := signedContract(contract.TypeCDD, d(2023, 1, 1), datePtr(today.AddDate(0, 0, off)))
			c.NeedsRenewal = off <= contract.DefaultRenewalNoticeDays
			deps.repo.put(c)
			res = append(res, c)
		}
		return res
	}

	t.Run("alerts grouped by level", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		seed(deps, -3, 5, 20, 45, 75, 120)

		res, err := deps.service.Alerts(ctx, 0)

		require.NoError(t, err)
		assert.Len(t, res.Alerts.Expired, 1)
		assert.Len(t, res.Alerts.Critical, 1)
		assert.Len(t, res.Alerts.Warning, 1)
		assert.Len(t, res.Alerts.Info, 1)
		assert.Equal(t, 4, res.Total)
		assert.Equal(t, 2, res.CriticalCount)
		assert.Equal(t, 1, res.WarningCount)
		assert.Equal(t, 1, res.InfoCount)
		assert.Equal(t, "contract expired 3 day(s) ago", res.Alerts.Expired[0].Message)
		assert.Equal(t, "contract expires in 5 day(s)", res.Alerts.Critical[0].Message)
	})

	t.Run("expiring soon uses the requested horizon", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		seed(deps, 40, -1, 10, 2)

		res, err := deps.service.ExpiringSoon(ctx, 0)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, 2, *res[0].DaysUntilExpiry)
		assert.Equal(t, 10, *res[1].DaysUntilExpiry)

		res, err = deps.service.ExpiringSoon(ctx, 45)
		require.NoError(t, err)
		assert.Len(t, res, 3)
	})

	t.Run("expired are always critical", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		contracts := seed(deps, -10, 10)
		swept := contracts[0]
		swept.Status = contract.StatusExpired
		deps.repo.put(swept)

		res, err := deps.service.Expired(ctx)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "critical", *res[0].AlertLevel)
		assert.True(t, res[0].IsExpired)
	})

	t.Run("needs renewal lists lapsed first", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		seed(deps, 12, -2, 3, 90)

		res, err := deps.service.NeedsRenewal(ctx)

		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.True(t, res[0].IsExpired)
		assert.Equal(t, 3, *res[1].DaysUntilExpiry)
		assert.Equal(t, 12, *res[2].DaysUntilExpiry)
	})
}

func TestContractService_History(t *testing.T) {
	ctx := context.Background()
	deps := setupContractServiceTest(t)

	first := signedContract(contract.TypeCDD, d(2023, 1, 1), datePtr(d(2023, 6, 30)))
	second := *first.NewRenewal(contract.RenewalOptions{}, today)
	third := *second.NewRenewal(contract.RenewalOptions{}, today)
	deps.repo.put(first)
	deps.repo.put(second)
	deps.repo.put(third)

	history, err := deps.service.History(ctx, third.ID.String())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, first.ID.String(), history[0].ID)
	assert.Equal(t, second.ID.String(), history[1].ID)
	assert.Equal(t, third.ID.String(), history[2].ID)

	renewals, err := deps.service.Renewals(ctx, first.ID.String())
	require.NoError(t, err)
	require.Len(t, renewals, 1)
	assert.Equal(t, second.ID.String(), renewals[0].ID)

	_, err = deps.service.History(ctx, uuid.NewString())
	assert.ErrorIs(t, err, contracterrors.ErrContractNotFound)
}

func TestContractService_ToggleAutoRenewal(t *testing.T) {
	deps := setupContractServiceTest(t)
	c := signedContract(contract.TypeCDD, d(2024, 1, 1), datePtr(d(2024, 12, 31)))
	deps.repo.put(c)
	expectTx(deps.sqlMock, true)

	res, err := deps.service.ToggleAutoRenewal(context.Background(), c.ID.String())

	require.NoError(t, err)
	assert.True(t, res.AutoRenewal)
	assert.True(t, deps.repo.contracts[c.ID.String()].AutoRenewal)
}
