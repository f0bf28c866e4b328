package contract_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/contract"
	contracterrors "go-hrms/internal/contract/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeContractService struct {
	contract.Service

	CreateFn func(ctx context.Context, actorID string, req contract.CreateContractRequest) (contract.ContractResponse, error)
	GetAllFn func(ctx context.Context, filter contract.ListFilter) ([]contract.ContractResponse, error)
	SignFn   func(ctx context.Context, id string, party contract.Party) (contract.ContractResponse, error)
	RenewFn  func(ctx context.Context, actorID, id string, req contract.RenewContractRequest) (contract.ContractResponse, error)
	AlertsFn func(ctx context.Context, days int) (contract.AlertsResponse, error)
}

func (f *fakeContractService) Create(ctx context.Context, actorID string, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	return f.CreateFn(ctx, actorID, req)
}
func (f *fakeContractService) GetAll(ctx context.Context, filter contract.ListFilter) ([]contract.ContractResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeContractService) Sign(ctx context.Context, id string, party contract.Party) (contract.ContractResponse, error) {
	return f.SignFn(ctx, id, party)
}
func (f *fakeContractService) Renew(ctx context.Context, actorID, id string, req contract.RenewContractRequest) (contract.ContractResponse, error) {
	return f.RenewFn(ctx, actorID, id, req)
}
func (f *fakeContractService) Alerts(ctx context.Context, days int) (contract.AlertsResponse, error) {
	return f.AlertsFn(ctx, days)
}

func newTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func TestContractHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actor := uuid.NewString()
		svc := &fakeContractService{
			CreateFn: func(_ context.Context, actorID string, req contract.CreateContractRequest) (contract.ContractResponse, error) {
				assert.Equal(t, actor, actorID)
				assert.Equal(t, contract.TypeCDD, req.ContractType)
				assert.Equal(t, "2024-12-31", *req.EndDate)
				return contract.ContractResponse{ID: uuid.NewString(), Status: contract.StatusDraft, Salary: "2500.00"}, nil
			},
		}
		body := `{"employee_id":"` + uuid.NewString() + `","contract_type":"CDD","start_date":"2024-06-01","end_date":"2024-12-31","salary":"2500"}`
		c, w := newTestContext(http.MethodPost, "/api/v1/contracts", body)
		c.Set("employee_id", actor)

		contract.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"DRAFT"`)
		assert.Contains(t, w.Body.String(), `"salary":"2500.00"`)
	})

	t.Run("validation error - unknown contract type", func(t *testing.T) {
		body := `{"employee_id":"` + uuid.NewString() + `","contract_type":"FREELANCE","start_date":"2024-06-01","salary":"2500"}`
		c, w := newTestContext(http.MethodPost, "/api/v1/contracts", body)

		contract.NewHandler(&fakeContractService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestContractHandler_GetAll(t *testing.T) {
	t.Run("needs_renewal filter", func(t *testing.T) {
		svc := &fakeContractService{
			GetAllFn: func(_ context.Context, filter contract.ListFilter) ([]contract.ContractResponse, error) {
				assert.NotNil(t, filter.NeedsRenewal)
				assert.True(t, *filter.NeedsRenewal)
				assert.Equal(t, contract.StatusSigned, filter.Status)
				return []contract.ContractResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
			},
		}
		c, w := newTestContext(http.MethodGet, "/api/v1/contracts?needs_renewal=true&status=SIGNED&page=2&page_size=2", "")

		contract.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"c"`)
		assert.NotContains(t, w.Body.String(), `"id":"a"`)
		assert.Contains(t, w.Body.String(), `"total":3`)
	})

	t.Run("invalid needs_renewal", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/api/v1/contracts?needs_renewal=maybe", "")

		contract.NewHandler(&fakeContractService{}).GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContractHandler_Sign(t *testing.T) {
	t.Run("company party", func(t *testing.T) {
		svc := &fakeContractService{
			SignFn: func(_ context.Context, id string, party contract.Party) (contract.ContractResponse, error) {
				assert.Equal(t, "c-1", id)
				assert.Equal(t, contract.PartyCompany, party)
				return contract.ContractResponse{ID: id, Status: contract.StatusSigned}, nil
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/contracts/c-1/sign-company", "")
		c.Params = gin.Params{{Key: "id", Value: "c-1"}}

		contract.NewHandler(svc).SignCompany(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired contract conflicts", func(t *testing.T) {
		svc := &fakeContractService{
			SignFn: func(context.Context, string, contract.Party) (contract.ContractResponse, error) {
				return contract.ContractResponse{}, contracterrors.ErrContractExpired
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/contracts/c-1/sign-employee", "")

		contract.NewHandler(svc).SignEmployee(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestContractHandler_Renew(t *testing.T) {
	t.Run("empty body uses defaults", func(t *testing.T) {
		svc := &fakeContractService{
			RenewFn: func(_ context.Context, _, _ string, req contract.RenewContractRequest) (contract.ContractResponse, error) {
				assert.Nil(t, req.NewStartDate)
				assert.Nil(t, req.NewSalary)
				return contract.ContractResponse{Status: contract.StatusDraft}, nil
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/contracts/c-1/renew", "")

		contract.NewHandler(svc).Renew(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CDI renewal rejected", func(t *testing.T) {
		svc := &fakeContractService{
			RenewFn: func(context.Context, string, string, contract.RenewContractRequest) (contract.ContractResponse, error) {
				return contract.ContractResponse{}, contracterrors.ErrCDIRenewal
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/contracts/c-1/renew", `{"new_salary":"4000"}`)

		contract.NewHandler(svc).Renew(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "CDI")
	})
}

func TestContractHandler_Alerts(t *testing.T) {
	t.Run("default horizon", func(t *testing.T) {
		svc := &fakeContractService{
			AlertsFn: func(_ context.Context, days int) (contract.AlertsResponse, error) {
				assert.Equal(t, contract.DefaultAlertDays, days)
				return contract.AlertsResponse{Total: 2, CriticalCount: 1}, nil
			},
		}
		c, w := newTestContext(http.MethodGet, "/api/v1/contracts/alerts", "")

		contract.NewHandler(svc).Alerts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"critical_count":1`)
	})

	t.Run("invalid days", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/api/v1/contracts/alerts?days=-4", "")

		contract.NewHandler(&fakeContractService{}).Alerts(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
