package invoice

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.NotFound("invoice not found")
	ErrBookingNotFound = apperror.NotFound("booking not found")
	ErrAlreadyInvoiced = apperror.Conflict("booking already has an invoice")
)

const StatusPaid = "paid"

// Invoice is a billing record derived from a booking. It is immutable once
// created, and a booking has at most one.
type Invoice struct {
	ID        string
	BookingID string
	Amount    float64
	Status    string
	CreatedAt time.Time
}

// Filter defines parameters for listing invoices.
type Filter struct {
	BookingID string
	Page      int
	PageSize  int
}
