package invoice

import (
	"context"
	"errors"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
)

type Service interface {
	// Generate creates the invoice for a booking. The amount is the price
	// snapshot taken when the booking was created, so later room price
	// changes do not affect it.
	Generate(ctx context.Context, bookingID string) (*Invoice, error)
	GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error)
	List(ctx context.Context, filter Filter) ([]*Invoice, int, error)
}

type service struct {
	repo           Repository
	bookingService booking.Service
}

func NewService(repo Repository, bookingService booking.Service) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
	}
}

func (s *service) Generate(ctx context.Context, bookingID string) (*Invoice, error) {
	b, err := s.bookingService.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	inv := &Invoice{
		BookingID: b.ID,
		Amount:    b.PriceAtBooking,
		Status:    StatusPaid,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *service) GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error) {
	return s.repo.GetByBookingID(ctx, bookingID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Invoice, int, error) {
	return s.repo.List(ctx, filter)
}
