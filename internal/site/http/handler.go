package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/site"
)

type Handler struct {
	service site.Service
}

func NewHandler(service site.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Status(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get site status"})
		return
	}
	c.JSON(http.StatusOK, NewStatusResponse(s))
}

// Shutdown puts the site into maintenance mode.
func (h *Handler) Shutdown(c *gin.Context) {
	if err := h.service.SetActive(c.Request.Context(), false); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to shutdown site"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "website shutdown"})
}

// Start takes the site out of maintenance mode.
func (h *Handler) Start(c *gin.Context) {
	if err := h.service.SetActive(c.Request.Context(), true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start site"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "website started"})
}
