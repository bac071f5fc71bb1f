package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Invoicing is an admin operation.
	group := g.Group("/admin/invoices")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Generate)
	}
}
