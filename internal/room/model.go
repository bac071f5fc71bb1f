package room

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.NotFound("room not found")
	ErrNumberTaken     = apperror.Conflict("room number already exists")
	ErrNumberRequired  = apperror.BadRequest("room number is required")
	ErrNegativePrice   = apperror.BadRequest("price must be non-negative")
	ErrFeatureRequired = apperror.BadRequest("feature is required")
	ErrServiceRequired = apperror.BadRequest("service is required")
)

// Room represents a bookable hotel room.
//
// IsAvailable is owned by the booking ledger: it flips inside booking
// transactions only, and this package exposes no way to set it.
type Room struct {
	ID          string
	RoomNumber  string
	Price       float64
	IsAvailable bool
	Features    []string
	Services    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	OnlyAvailable bool
	Page          int
	PageSize      int
}
