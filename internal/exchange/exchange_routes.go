package exchange

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
	exchanges := r.Group("/exchanges")
	exchanges.Use(middleware.AuthMiddleware())
	{
		exchanges.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceExchange, domain.ActionRead), handler.GetAll)
		exchanges.GET("/awaiting-admin", middleware.RBACAuthorize(rbacService, domain.ResourceExchange, domain.ActionApprove), handler.ListAwaitingAdmin)
		exchanges.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceExchange, domain.ActionCreate), handler.Create)
		exchanges.POST("/:id/target-response", middleware.RBACAuthorize(rbacService, domain.ResourceExchange, domain.ActionRespond), handler.TargetRespond)
		exchanges.POST("/:id/admin-response", middleware.RBACAuthorize(rbacService, domain.ResourceExchange, domain.ActionApprove), handler.AdminRespond)
	}
}
