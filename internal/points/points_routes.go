package points

import (
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	points := r.Group("/points")
	points.Use(middleware.AuthMiddleware())
	{
		points.GET("/summary", handler.Summary)
	}
}
