package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrRoomNotFound     = apperror.NotFound("room not found")
	ErrRoomUnavailable  = apperror.Conflict("room is not available")
	ErrAlreadyCancelled = apperror.Conflict("booking is already cancelled")
	ErrInvalidDateRange = apperror.BadRequest("check-out must be after check-in")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

// Booking represents a reservation of a single room.
// Lifecycle: booked -> cancelled. Cancelled is terminal.
type Booking struct {
	ID         string
	UserID     string
	UserName   string
	RoomID     string
	RoomNumber string
	CheckIn    time.Time // calendar date, no time-of-day
	CheckOut   time.Time
	// PriceAtBooking snapshots the room price at creation so invoices are
	// stable against later price changes.
	PriceAtBooking float64
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID   string
	RoomID   string
	Status   string
	Page     int
	PageSize int
}
