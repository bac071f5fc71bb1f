package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

type fakeRepo struct {
	reviews []*Review
}

func (r *fakeRepo) Create(ctx context.Context, rev *Review) error {
	rev.ID = "review-1"
	saved := *rev
	r.reviews = append(r.reviews, &saved)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	var out []*Review
	for _, rev := range r.reviews {
		if filter.RoomID != "" && rev.RoomID != filter.RoomID {
			continue
		}
		copied := *rev
		out = append(out, &copied)
	}
	return out, len(out), nil
}

// fakeRoomService knows a single room.
type fakeRoomService struct {
	roomID string
}

func (s *fakeRoomService) GetByID(ctx context.Context, id string) (*room.Room, error) {
	if id != s.roomID {
		return nil, room.ErrNotFound
	}
	return &room.Room{ID: id, RoomNumber: "101"}, nil
}

func (s *fakeRoomService) Create(ctx context.Context, req room.CreateRequest) (*room.Room, error) {
	panic("not used")
}

func (s *fakeRoomService) List(ctx context.Context, filter room.Filter) ([]*room.Room, int, error) {
	panic("not used")
}

func (s *fakeRoomService) AddFeature(ctx context.Context, roomID, feature string) (*room.Room, error) {
	panic("not used")
}

func (s *fakeRoomService) AddService(ctx context.Context, roomID, service string) (*room.Room, error) {
	panic("not used")
}

func TestCreateReview(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeRoomService{roomID: "room-1"})

	rev, err := svc.Create(context.Background(), CreateRequest{
		UserID:  "user-1",
		RoomID:  "room-1",
		Rating:  5,
		Comment: "  great stay  ",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, rev.Rating)
	assert.Equal(t, "great stay", rev.Comment)
}

func TestCreateReviewValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeRoomService{roomID: "room-1"})
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, CreateRequest{UserID: "user-1", RoomID: "room-1", Rating: rating, Comment: "ok"})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	_, err := svc.Create(ctx, CreateRequest{UserID: "user-1", RoomID: "room-1", Rating: 3, Comment: "   "})
	assert.ErrorIs(t, err, ErrCommentRequired)
}

func TestCreateReviewRoomNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeRoomService{roomID: "room-1"})

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:  "user-1",
		RoomID:  "missing",
		Rating:  4,
		Comment: "nice",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
