package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
	userHttp "github.com/nekogravitycat/hotel-booking-backend/internal/user/http"
)

// CreateBookingRequest defines the payload for reserving a room.
// Check-in and check-out are calendar dates without time-of-day.
type CreateBookingRequest struct {
	RoomID   string `json:"room_id" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

// Dates parses the request's date strings. Binding has already validated
// their format.
func (r *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return
	}
	checkOut, err = time.Parse(time.DateOnly, r.CheckOut)
	return
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	RoomID string `form:"room_id" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=booked cancelled"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type BookingResponse struct {
	ID             string           `json:"id"`
	Room           roomHttp.RoomTag `json:"room"`
	User           userHttp.UserTag `json:"user"`
	CheckIn        string           `json:"check_in"`
	CheckOut       string           `json:"check_out"`
	PriceAtBooking float64          `json:"price_at_booking"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		Room:           roomHttp.RoomTag{ID: b.RoomID, RoomNumber: b.RoomNumber},
		User:           userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		CheckIn:        b.CheckIn.Format(time.DateOnly),
		CheckOut:       b.CheckOut.Format(time.DateOnly),
		PriceAtBooking: b.PriceAtBooking,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
