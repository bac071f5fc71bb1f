package review

import (
	"context"
	"errors"
	"strings"

	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

type CreateRequest struct {
	UserID  string
	RoomID  string
	Rating  int
	Comment string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
}

type service struct {
	repo        Repository
	roomService room.Service
}

func NewService(repo Repository, roomService room.Service) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrCommentRequired
	}

	// A review must reference an existing room.
	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	rev := &Review{
		UserID:  req.UserID,
		RoomID:  req.RoomID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	return s.repo.List(ctx, filter)
}
