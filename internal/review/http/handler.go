package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/hotel-booking-backend/internal/review"
)

type Handler struct {
	service review.Service
}

func NewHandler(service review.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rev, err := h.service.Create(c.Request.Context(), review.CreateRequest{
		UserID:  userID,
		RoomID:  body.RoomID,
		Rating:  body.Rating,
		Comment: body.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, review.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrInvalidRating), errors.Is(err, review.ErrCommentRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewReviewResponse(rev))
}

// ListByRoom returns reviews for one room. Public.
func (h *Handler) ListByRoom(c *gin.Context) {
	var query ListReviewsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if query.RoomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id is required"})
		return
	}

	h.list(c, query)
}

// ListAll returns reviews across all rooms. Admin only.
func (h *Handler) ListAll(c *gin.Context) {
	var query ListReviewsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	h.list(c, query)
}

func (h *Handler) list(c *gin.Context, query ListReviewsRequest) {
	query.Normalize()

	filter := review.Filter{
		RoomID:   query.RoomID,
		UserID:   query.UserID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	reviews, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	items := make([]ReviewResponse, len(reviews))
	for i, rev := range reviews {
		items[i] = NewReviewResponse(rev)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}
