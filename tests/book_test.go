package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
	invoiceHttp "github.com/nekogravitycat/hotel-booking-backend/internal/invoice/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
)

func TestBookingLifecycle(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@hotel.com", "pass", true)
	guest := createTestUser(t, "guest@hotel.com", "pass", false)
	rival := createTestUser(t, "rival@hotel.com", "pass", false)

	adminToken := generateToken(admin.ID, admin.Email)
	guestToken := generateToken(guest.ID, guest.Email)
	rivalToken := generateToken(rival.ID, rival.Email)

	var roomID string
	var bookingID string

	t.Run("Admin creates room", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/rooms", roomHttp.CreateRoomRequest{
			RoomNumber: "101",
			Price:      100,
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var room roomHttp.RoomResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
		assert.Equal(t, "101", room.RoomNumber)
		assert.True(t, room.IsAvailable)
		roomID = room.ID
	})

	t.Run("Guest cannot create room", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/rooms", roomHttp.CreateRoomRequest{
			RoomNumber: "102",
			Price:      100,
		}, guestToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Room appears in available list", func(t *testing.T) {
		w := executeRequest("GET", "/v1/rooms", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[roomHttp.RoomResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, roomID, page.Items[0].ID)
	})

	t.Run("Guest books the room", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			RoomID:   roomID,
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-03",
		}, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var b bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
		assert.Equal(t, "booked", b.Status)
		assert.Equal(t, 100.0, b.PriceAtBooking)
		assert.Equal(t, "101", b.Room.RoomNumber)
		bookingID = b.ID
	})

	t.Run("Booked room leaves the available list", func(t *testing.T) {
		w := executeRequest("GET", "/v1/rooms", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[roomHttp.RoomResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Empty(t, page.Items)
	})

	t.Run("Second booking is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			RoomID:   roomID,
			CheckIn:  "2026-09-05",
			CheckOut: "2026-09-07",
		}, rivalToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid date range is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			RoomID:   roomID,
			CheckIn:  "2026-09-03",
			CheckOut: "2026-09-03",
		}, rivalToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Stranger cannot view the booking", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/"+bookingID, nil, rivalToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Stranger cannot cancel the booking", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings/"+bookingID+"/cancel", nil, rivalToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin generates the invoice", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/invoices", invoiceHttp.GenerateInvoiceRequest{
			BookingID: bookingID,
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var inv invoiceHttp.InvoiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
		assert.Equal(t, bookingID, inv.BookingID)
		assert.Equal(t, 100.0, inv.Amount)
		assert.Equal(t, "paid", inv.Status)
	})

	t.Run("Invoicing twice is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/invoices", invoiceHttp.GenerateInvoiceRequest{
			BookingID: bookingID,
		}, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Guest cancels the booking", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings/"+bookingID+"/cancel", nil, guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var b bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
		assert.Equal(t, "cancelled", b.Status)
	})

	t.Run("Cancelling twice is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings/"+bookingID+"/cancel", nil, guestToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Room is bookable again after cancel", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			RoomID:   roomID,
			CheckIn:  "2026-09-10",
			CheckOut: "2026-09-12",
		}, rivalToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestBookingVisibility(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@vis.com", "pass", true)
	alice := createTestUser(t, "alice@vis.com", "pass", false)
	bob := createTestUser(t, "bob@vis.com", "pass", false)

	adminToken := generateToken(admin.ID, admin.Email)
	aliceToken := generateToken(alice.ID, alice.Email)
	bobToken := generateToken(bob.ID, bob.Email)

	// Two rooms, one booking each.
	for i, token := range []string{aliceToken, bobToken} {
		number := []string{"201", "202"}[i]
		w := executeRequest("POST", "/v1/admin/rooms", roomHttp.CreateRoomRequest{
			RoomNumber: number,
			Price:      150,
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var room roomHttp.RoomResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))

		w = executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			RoomID:   room.ID,
			CheckIn:  "2026-10-01",
			CheckOut: "2026-10-02",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	t.Run("Guests only see their own bookings", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings", nil, aliceToken)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[bookingHttp.BookingResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, alice.ID, page.Items[0].User.ID)
	})

	t.Run("Admin sees all bookings", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[bookingHttp.BookingResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page.Items, 2)
	})

	t.Run("Unauthenticated booking is rejected", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
