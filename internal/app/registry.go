package app

import (
	"database/sql"

	"go-hrms/internal/contract"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// services holds the domain services shared by the API, the worker and the
// one-shot contract check.
type services struct {
	employee     employee.Service
	leave        leave.Service
	leaveBalance leavebalance.Service
	contract     contract.Service
}

func buildServices(
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) *services {
	clk := clock.System()
	alloc := leavebalance.Allocation{
		Annual: cfg.Leave.DefaultAnnual,
		Sick:   cfg.Leave.DefaultSick,
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	balanceRepo := leavebalance.NewRepository(gormDB)
	contractRepo := contract.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, outboxRepo, rdb, clk, logger)
	ledger := leavebalance.NewLedger(balanceRepo, clk, alloc)

	return &services{
		employee:     employeeService,
		leave:        leave.NewService(db, leaveRepo, ledger, employeeService, outboxRepo, clk, logger),
		leaveBalance: leavebalance.NewService(db, balanceRepo, ledger, employeeService, logger),
		contract:     contract.NewService(db, contractRepo, employeeService, outboxRepo, clk, logger),
	}
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	svc *services,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(gormDB), enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(svc.employee, logger)
	leaveHandler := leave.NewHandler(svc.leave, logger)
	balanceHandler := leavebalance.NewHandler(svc.leaveBalance, logger)
	contractHandler := contract.NewHandler(svc.contract, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	auth := middleware.AuthMiddleware(cfg.JWTSecret)
	idempotency := middleware.Idempotency(rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, auth, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, auth, idempotency, logger)
		leavebalance.RegisterRoutes(api, balanceHandler, rbacService, auth, logger)
		contract.RegisterRoutes(api, contractHandler, rbacService, auth, idempotency, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, auth, logger)
	}

	return nil
}
