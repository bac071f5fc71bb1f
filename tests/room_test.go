package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	reviewHttp "github.com/nekogravitycat/hotel-booking-backend/internal/review/http"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
)

func TestRoomCatalog(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@rooms.com", "pass", true)
	guest := createTestUser(t, "guest@rooms.com", "pass", false)

	adminToken := generateToken(admin.ID, admin.Email)
	guestToken := generateToken(guest.ID, guest.Email)

	var roomID string

	t.Run("Create room", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/rooms", roomHttp.CreateRoomRequest{
			RoomNumber: "301",
			Price:      220.5,
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var room roomHttp.RoomResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
		assert.Equal(t, 220.5, room.Price)
		assert.Empty(t, room.Features)
		roomID = room.ID
	})

	t.Run("Duplicate room number is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/rooms", roomHttp.CreateRoomRequest{
			RoomNumber: "301",
			Price:      100,
		}, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Add features and services", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/rooms/"+roomID+"/features", roomHttp.AddFeatureRequest{
			Feature: "sea view",
		}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = executeRequest("POST", "/v1/admin/rooms/"+roomID+"/services", roomHttp.AddServiceRequest{
			Service: "breakfast",
		}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var room roomHttp.RoomResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
		assert.Equal(t, []string{"breakfast"}, room.Services)
	})

	t.Run("Public room detail includes tags", func(t *testing.T) {
		w := executeRequest("GET", "/v1/rooms/"+roomID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var room roomHttp.RoomResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
		assert.Equal(t, []string{"sea view"}, room.Features)
		assert.Equal(t, []string{"breakfast"}, room.Services)
	})

	t.Run("Unknown room returns not found", func(t *testing.T) {
		w := executeRequest("GET", "/v1/rooms/00000000-0000-0000-0000-000000000000", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Guest reviews the room", func(t *testing.T) {
		w := executeRequest("POST", "/v1/reviews", reviewHttp.CreateReviewRequest{
			RoomID:  roomID,
			Rating:  5,
			Comment: "spotless",
		}, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = executeRequest("GET", "/v1/reviews?room_id="+roomID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[reviewHttp.ReviewResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, 5, page.Items[0].Rating)
	})

	t.Run("Review with bad rating is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/reviews", reviewHttp.CreateReviewRequest{
			RoomID:  roomID,
			Rating:  9,
			Comment: "??",
		}, guestToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
