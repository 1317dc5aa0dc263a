package application

import (
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/domain"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceApplication, domain.ActionRead), handler.GetAll)
		apps.GET("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceApplication, domain.ActionRead), handler.GetById)
		apps.GET("/period-status", middleware.RBACAuthorize(rbacService, domain.ResourceApplication, domain.ActionRead), handler.PeriodStatus)
		apps.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceApplication, domain.ActionCreate), handler.Create)
		apps.POST("/:id/approve", middleware.RBACAuthorize(rbacService, domain.ResourceApplication, domain.ActionApprove), handler.Approve)
		apps.POST("/:id/reject", middleware.RBACAuthorize(rbacService, domain.ResourceApplication, domain.ActionApprove), handler.Reject)
	}
}
