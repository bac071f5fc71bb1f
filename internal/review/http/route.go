package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/reviews")
	{
		group.GET("", h.ListByRoom)
		group.POST("", authMiddleware, h.Create)
	}

	admin := g.Group("/admin/reviews")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.ListAll)
	}
}
