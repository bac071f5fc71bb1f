package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/site"
)

type StatusResponse struct {
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStatusResponse(s *site.Setting) StatusResponse {
	return StatusResponse{
		IsActive:  s.IsActive,
		UpdatedAt: s.UpdatedAt,
	}
}
