package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// The handlers parse and validate identifiers and bodies before touching the
// service, so a nil service is enough for the rejection paths.
func newBookingTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings", CreateBooking(nil))
	r.GET("/bookings/:id", GetBooking(nil))
	r.GET("/bookings/user/:email", GetUserBookings(nil))
	r.PATCH("/bookings/:id/status", UpdateBookingStatus(nil))
	r.POST("/bookings/:id/tracking", AddBookingTracking(nil))
	r.DELETE("/bookings/:id", CancelBooking(nil))
	return r
}

func TestGetBookingRejectsMalformedID(t *testing.T) {
	r := newBookingTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings/not-an-object-id", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid booking ID format") {
		t.Fatalf("expected format message, got %s", w.Body.String())
	}
}

func TestMutationsRejectMalformedID(t *testing.T) {
	r := newBookingTestRouter()

	requests := []*http.Request{
		httptest.NewRequest("PATCH", "/bookings/xyz/status", strings.NewReader(`{"status":"shipped"}`)),
		httptest.NewRequest("POST", "/bookings/xyz/tracking", strings.NewReader(`{"stage":"Shipped"}`)),
		httptest.NewRequest("DELETE", "/bookings/xyz", nil),
	}

	for _, req := range requests {
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", req.Method, req.URL.Path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid booking ID format") {
			t.Fatalf("%s %s: expected format message, got %s", req.Method, req.URL.Path, w.Body.String())
		}
	}
}

func TestCreateBookingRejectsInvalidJSON(t *testing.T) {
	r := newBookingTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid request body") {
		t.Fatalf("expected body message, got %s", w.Body.String())
	}
}

func TestCreateBookingNamesFirstMissingField(t *testing.T) {
	r := newBookingTestRouter()

	// Everything from totalPrice on is absent; the scan order means
	// totalPrice must be the one named.
	body := `{"productId":"64f1c8a9e4b0a1b2c3d4e5f6","productName":"Shirt","pricePerPiece":25,"quantity":2}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "totalPrice is required") {
		t.Fatalf("expected totalPrice named, got %s", w.Body.String())
	}
}

func TestGetUserBookingsRejectsBadPagination(t *testing.T) {
	r := newBookingTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings/user/a@x.com?page=0&limit=10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid pagination params") {
		t.Fatalf("expected pagination message, got %s", w.Body.String())
	}
}
