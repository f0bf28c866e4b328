package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	service Service,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	group := r.Group("/rbac")
	group.Use(auth)
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/roles", middleware.RBACAuthorize(service, ResourceRole, ActionRead), handler.ListRoles)
		group.GET("/permissions", middleware.RBACAuthorize(service, ResourceRole, ActionRead), handler.ListPermissions)
	}
}
