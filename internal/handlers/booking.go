package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"garmentgrid/internal/bookings"
	"garmentgrid/internal/models"
)

type createBookingRequest struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	PricePerPiece   float64 `json:"pricePerPiece"`
	Quantity        int     `json:"quantity"`
	TotalPrice      float64 `json:"totalPrice"`
	Email           string  `json:"email"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ContactNumber   string  `json:"contactNumber"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type trackingRequest struct {
	Stage    string `json:"stage"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

func CreateBooking(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /bookings"
		defer handlePanic(c, route)

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		id, err := svc.Create(c.Request.Context(), bookings.CreateInput(req))
		if err != nil {
			respondServiceError(c, route, err, "Failed to create booking")
			return
		}

		log.Printf("[%s] booking created: %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Booking created successfully",
			"bookingId": id.Hex(),
		})
	}
}

func GetBooking(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /bookings/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid booking ID format")
			return
		}

		booking, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err, "Failed to fetch booking")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    booking,
		})
	}
}

func GetUserBookings(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /bookings/user/:email"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid pagination params")
			return
		}

		email := c.Param("email")
		items, total, err := svc.ListForUser(c.Request.Context(), email, page, limit)
		if err != nil {
			respondServiceError(c, route, err, "Failed to fetch bookings")
			return
		}

		log.Printf("[%s] returning %d bookings for %s", route, len(items), email)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"total":   total,
			"page":    page,
			"limit":   limit,
			"data":    items,
		})
	}
}

func UpdateBookingStatus(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /bookings/:id/status"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid booking ID format")
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		if err := svc.UpdateStatus(c.Request.Context(), id, models.BookingStatus(req.Status)); err != nil {
			respondServiceError(c, route, err, "Failed to update booking status")
			return
		}

		log.Printf("[%s] booking %s -> %s", route, id.Hex(), req.Status)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Booking status updated successfully",
		})
	}
}

func AddBookingTracking(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /bookings/:id/tracking"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid booking ID format")
			return
		}

		var req trackingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		if err := svc.AddTracking(c.Request.Context(), id, req.Stage, req.Location, req.Note); err != nil {
			respondServiceError(c, route, err, "Failed to add tracking info")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Tracking info added successfully",
		})
	}
}

func CancelBooking(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /bookings/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid booking ID format")
			return
		}

		if err := svc.Cancel(c.Request.Context(), id); err != nil {
			respondServiceError(c, route, err, "Failed to cancel booking")
			return
		}

		log.Printf("[%s] booking cancelled: %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Booking cancelled successfully",
		})
	}
}
