package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/review"
	userHttp "github.com/nekogravitycat/hotel-booking-backend/internal/user/http"
)

// CreateReviewRequest defines the payload for reviewing a room.
type CreateReviewRequest struct {
	RoomID  string `json:"room_id" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ListReviewsRequest defines query parameters for listing reviews.
type ListReviewsRequest struct {
	request.ListParams
	RoomID string `form:"room_id" binding:"omitempty,uuid"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type ReviewResponse struct {
	ID        string           `json:"id"`
	User      userHttp.UserTag `json:"user"`
	RoomID    string           `json:"room_id"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewReviewResponse(rev *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        rev.ID,
		User:      userHttp.UserTag{ID: rev.UserID, Name: rev.UserName},
		RoomID:    rev.RoomID,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt,
	}
}
