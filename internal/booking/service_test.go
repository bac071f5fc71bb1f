package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo mimics the transactional booking repository in memory. The mutex
// stands in for the database row lock, so Book and Cancel stay atomic under
// concurrent callers.
type fakeRepo struct {
	mu       sync.Mutex
	rooms    map[string]*fakeRoom
	bookings map[string]*Booking
	nextID   int
}

type fakeRoom struct {
	number    string
	price     float64
	available bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rooms:    make(map[string]*fakeRoom),
		bookings: make(map[string]*Booking),
	}
}

func (r *fakeRepo) addRoom(id, number string, price float64) {
	r.rooms[id] = &fakeRoom{number: number, price: price, available: true}
}

func (r *fakeRepo) Book(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[b.RoomID]
	if !ok {
		return ErrRoomNotFound
	}
	if !rm.available {
		return ErrRoomUnavailable
	}
	rm.available = false

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.RoomNumber = rm.number
	b.PriceAtBooking = rm.price
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	saved := *b
	r.bookings[b.ID] = &saved
	return nil
}

func (r *fakeRepo) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	if b.Status != StatusBooked {
		return ErrAlreadyCancelled
	}
	b.Status = StatusCancelled
	b.UpdatedAt = time.Now()
	if rm, ok := r.rooms[b.RoomID]; ok {
		rm.available = true
	}
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 3),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusBooked, b.Status)
	assert.Equal(t, "101", b.RoomNumber)
	assert.Equal(t, 100.0, b.PriceAtBooking)
	assert.False(t, repo.rooms["room-1"].available)
}

func TestCreateBookingInvalidDates(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)
	ctx := context.Background()

	// check-out equal to check-in
	_, err := svc.Create(ctx, CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// check-out before check-in
	_, err = svc.Create(ctx, CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 3),
		CheckOut: date(2026, 9, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// nothing should have been booked
	assert.True(t, repo.rooms["room-1"].available)
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:   "user-1",
		RoomID:   "missing",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 3),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateBookingRoomUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)
	ctx := context.Background()

	req := CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 3),
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req.UserID = "user-2"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCancelBookingRestoresRoom(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 3),
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, b.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.True(t, repo.rooms["room-1"].available)

	// room is bookable again
	_, err = svc.Create(ctx, CreateRequest{
		UserID:   "user-2",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 5),
		CheckOut: date(2026, 9, 7),
	})
	assert.NoError(t, err)
}

func TestCancelBookingTwice(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 3),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, "user-1", false)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, "user-1", false)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelBookingPermissions(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(2026, 9, 1),
		CheckOut: date(2026, 9, 3),
	})
	require.NoError(t, err)

	// another user cannot cancel
	_, err = svc.Cancel(ctx, b.ID, "user-2", false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// an admin can
	cancelled, err := svc.Cancel(ctx, b.ID, "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Cancel(context.Background(), "missing", "user-1", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestConcurrentCreatesSingleWinner fires N creates for the same room at once
// and expects exactly one of them to win; every loser must see the
// room-unavailable conflict.
func TestConcurrentCreatesSingleWinner(t *testing.T) {
	repo := newFakeRepo()
	repo.addRoom("room-1", "101", 100)
	svc := NewService(repo)

	const n = 16
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), CreateRequest{
				UserID:   fmt.Sprintf("user-%d", i),
				RoomID:   "room-1",
				CheckIn:  date(2026, 9, 1),
				CheckOut: date(2026, 9, 3),
			})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrRoomUnavailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, lost)
	assert.Len(t, repo.bookings, 1)
}
