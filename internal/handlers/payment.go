package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"garmentgrid/internal/bookings"
	"garmentgrid/internal/payments"
)

type paymentIntentBookingData struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type createPaymentIntentRequest struct {
	Amount      float64                  `json:"amount"`
	Currency    string                   `json:"currency"`
	BookingData paymentIntentBookingData `json:"bookingData"`
}

type paymentConfirmationRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	BookingID       string `json:"bookingId"`
}

func CreatePaymentIntent(gateway payments.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /create-payment-intent"
		defer handlePanic(c, route)

		var req createPaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		if req.Amount <= 0 {
			respondError(c, http.StatusBadRequest, route, "Valid amount is required")
			return
		}

		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		meta := payments.IntentMetadata{
			ProductName:   req.BookingData.ProductName,
			Quantity:      strconv.Itoa(req.BookingData.Quantity),
			CustomerEmail: req.BookingData.Email,
			CustomerName:  strings.TrimSpace(req.BookingData.FirstName + " " + req.BookingData.LastName),
		}

		amountMinor := int64(math.Round(req.Amount * 100))
		clientSecret, err := gateway.CreateIntent(c.Request.Context(), amountMinor, currency, meta)
		if err != nil {
			respondServiceError(c, route, err, "Failed to create payment intent")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"clientSecret": clientSecret,
		})
	}
}

func ConfirmPayment(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /payment-confirmation"
		defer handlePanic(c, route)

		var req paymentConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		bookingID, err := primitive.ObjectIDFromHex(req.BookingID)
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid booking ID format")
			return
		}

		if err := svc.ConfirmPayment(c.Request.Context(), req.PaymentIntentID, bookingID); err != nil {
			respondServiceError(c, route, err, "Failed to confirm payment")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment confirmed successfully",
		})
	}
}
