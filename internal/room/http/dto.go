package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

// CreateRoomRequest defines the payload for adding a room to the catalog.
type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Price      float64 `json:"price" binding:"min=0"`
}

// AddFeatureRequest defines the payload for tagging a room with a feature.
type AddFeatureRequest struct {
	Feature string `json:"feature" binding:"required"`
}

// AddServiceRequest defines the payload for tagging a room with a service.
type AddServiceRequest struct {
	Service string `json:"service" binding:"required"`
}

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
}

// RoomResponse is the shape of room data returned in API responses.
type RoomResponse struct {
	ID          string    `json:"id"`
	RoomNumber  string    `json:"room_number"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"is_available"`
	Features    []string  `json:"features"`
	Services    []string  `json:"services"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomTag is a brief representation of a room.
type RoomTag struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	services := r.Services
	if services == nil {
		services = []string{}
	}

	return RoomResponse{
		ID:          r.ID,
		RoomNumber:  r.RoomNumber,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		Features:    features,
		Services:    services,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
