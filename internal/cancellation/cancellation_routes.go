package cancellation

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
	cancellations := r.Group("/cancellations")
	cancellations.Use(middleware.AuthMiddleware())
	{
		cancellations.POST("/applications/:application_id", middleware.RBACAuthorize(rbacService, domain.ResourceCancellation, domain.ActionCreate), handler.Request)
		cancellations.GET("/pending", middleware.RBACAuthorize(rbacService, domain.ResourceCancellation, domain.ActionApprove), handler.ListPending)
		cancellations.POST("/:id/approve", middleware.RBACAuthorize(rbacService, domain.ResourceCancellation, domain.ActionApprove), handler.Approve)
		cancellations.POST("/:id/reject", middleware.RBACAuthorize(rbacService, domain.ResourceCancellation, domain.ActionApprove), handler.Reject)
	}
}
