package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Site control stays reachable while the site is in maintenance mode,
	// otherwise an admin could never turn it back on.
	group := g.Group("/admin/site")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("/status", h.Status)
		group.POST("/shutdown", h.Shutdown)
		group.POST("/start", h.Start)
	}
}
