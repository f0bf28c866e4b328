package contract

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
	idempotency gin.HandlerFunc,
	logger *zap.Logger,
) {
	contracts := r.Group("/contracts")
	contracts.Use(auth)
	contracts.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionRead)

		contracts.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
		contracts.GET("/expiring-soon", middleware.RateLimitByUser(3, 10), read, handler.ExpiringSoon)
		contracts.GET("/expired", middleware.RateLimitByUser(3, 10), read, handler.Expired)
		contracts.GET("/needs-renewal", middleware.RateLimitByUser(3, 10), read, handler.NeedsRenewal)
		contracts.GET("/alerts", middleware.RateLimitByUser(3, 10), read, handler.Alerts)
		contracts.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)
		contracts.GET("/:id/renewals", middleware.RateLimitByUser(3, 10), read, handler.Renewals)
		contracts.GET("/:id/history", middleware.RateLimitByUser(3, 10), read, handler.History)

		contracts.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionCreate),
			idempotency,
			handler.Create,
		)
		contracts.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionUpdate),
			handler.Update,
		)
		contracts.POST("/:id/submit",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionUpdate),
			handler.Submit,
		)
		contracts.POST("/:id/sign-employee",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionSign),
			handler.SignEmployee,
		)
		contracts.POST("/:id/sign-company",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionSign),
			handler.SignCompany,
		)
		contracts.POST("/:id/renew",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionRenew),
			idempotency,
			handler.Renew,
		)
		contracts.POST("/:id/toggle-auto-renewal",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceContract, rbac.ActionUpdate),
			handler.ToggleAutoRenewal,
		)
	}
}
