package photo

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.NotFound("photo not found")
	ErrRoomNotFound = apperror.NotFound("room not found")
	ErrNotAnImage   = apperror.BadRequest("uploaded file must be an image")
	ErrNoThumbnail  = apperror.NotFound("thumbnail not available")
)

// Photo is an image attached to a room.
type Photo struct {
	ID            string    `json:"id"`
	RoomID        string    `json:"room_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// PhotoURL returns the public URL for accessing a photo by its ID.
func PhotoURL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public URL for accessing a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
