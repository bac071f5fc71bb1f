package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	RoomNumber string
	Price      float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	AddFeature(ctx context.Context, roomID, feature string) (*Room, error)
	AddService(ctx context.Context, roomID, service string) (*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return nil, ErrNumberRequired
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}

	rm := &Room{
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		Price:      req.Price,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) AddFeature(ctx context.Context, roomID, feature string) (*Room, error) {
	if strings.TrimSpace(feature) == "" {
		return nil, ErrFeatureRequired
	}
	if _, err := s.repo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	if err := s.repo.AddFeature(ctx, roomID, strings.TrimSpace(feature)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, roomID)
}

func (s *service) AddService(ctx context.Context, roomID, svc string) (*Room, error) {
	if strings.TrimSpace(svc) == "" {
		return nil, ErrServiceRequired
	}
	if _, err := s.repo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	if err := s.repo.AddService(ctx, roomID, strings.TrimSpace(svc)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, roomID)
}
