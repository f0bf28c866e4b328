package leavebalance

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	balances := r.Group("/leave-balances")
	balances.Use(auth)
	balances.Use(middleware.ContextLogger(logger))
	{
		balances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveBalance, rbac.ActionRead),
			handler.GetAll,
		)
		balances.GET("/employees/:employee_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveBalance, rbac.ActionRead),
			handler.GetByEmployee,
		)
		balances.PUT("/employees/:employee_id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveBalance, rbac.ActionUpdate),
			handler.UpdateAllocation,
		)
		balances.POST("/employees/:employee_id/recalculate",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveBalance, rbac.ActionUpdate),
			handler.Recalculate,
		)
		balances.POST("/recalculate-all",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveBalance, rbac.ActionManage),
			handler.RecalculateAll,
		)
	}
}
