package booking

import (
	"context"
	"time"
)

type CreateRequest struct {
	UserID   string
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Cancel(ctx context.Context, id string, callerUserID string, isAdmin bool) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidDateRange
	}

	b := &Booking{
		UserID:   req.UserID,
		RoomID:   req.RoomID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   StatusBooked,
	}

	// Room existence and availability are checked inside the booking
	// transaction itself. Checking here first would reintroduce the
	// check-then-act race between concurrent creates.
	if err := s.repo.Book(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, callerUserID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && b.UserID != callerUserID {
		return nil, ErrPermissionDenied
	}

	// Status is re-checked under the row lock; a concurrent cancel loses
	// there, not here.
	if err := s.repo.Cancel(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}
