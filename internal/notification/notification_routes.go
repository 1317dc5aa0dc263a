package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceNotification, domain.ActionRead), handler.ListPending)
		notifications.POST("/:id/ack", middleware.RBACAuthorize(rbacService, domain.ResourceNotification, domain.ActionRespond), handler.Acknowledge)
	}
}
