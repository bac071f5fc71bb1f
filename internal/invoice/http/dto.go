package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/invoice"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
)

// GenerateInvoiceRequest defines the payload for invoicing a booking.
type GenerateInvoiceRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}

// ListInvoicesRequest defines query parameters for listing invoices.
type ListInvoicesRequest struct {
	request.ListParams
	BookingID string `form:"booking_id" binding:"omitempty,uuid"`
}

type InvoiceResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		BookingID: inv.BookingID,
		Amount:    inv.Amount,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}
}
