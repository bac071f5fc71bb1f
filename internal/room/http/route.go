package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	group := g.Group("/rooms")
	{
		group.GET("", h.ListAvailable)
		group.GET("/:id", h.Get)
	}

	// === Admin Routes ===
	admin := g.Group("/admin/rooms")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.POST("/:id/features", h.AddFeature)
		admin.POST("/:id/services", h.AddService)
	}
}
