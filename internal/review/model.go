package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("review not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentRequired = errors.New("comment is required")
)

// Review is a guest's rating of a room.
type Review struct {
	ID        string
	UserID    string
	UserName  string
	RoomID    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Filter defines parameters for listing reviews.
type Filter struct {
	RoomID   string
	UserID   string
	Page     int
	PageSize int
}
