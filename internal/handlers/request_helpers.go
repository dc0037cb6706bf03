package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"garmentgrid/internal/bookings"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	}
}

func respondError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondServiceError translates the lifecycle error taxonomy to HTTP.
// Validation and payment messages are safe to surface; anything
// unclassified is logged and replaced with the route's generic fallback.
func respondServiceError(c *gin.Context, route string, err error, fallback string) {
	var validationErr bookings.ValidationError
	var notFoundErr bookings.NotFoundError
	var statusErr bookings.InvalidStatusError
	var operationErr bookings.InvalidOperationError
	var paymentErr bookings.PaymentNotSucceededError

	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, route, validationErr.Error())
	case errors.As(err, &notFoundErr):
		respondError(c, http.StatusNotFound, route, notFoundErr.Error())
	case errors.As(err, &statusErr):
		respondError(c, http.StatusBadRequest, route, statusErr.Error())
	case errors.As(err, &operationErr):
		respondError(c, http.StatusBadRequest, route, operationErr.Error())
	case errors.As(err, &paymentErr):
		respondError(c, http.StatusBadRequest, route, paymentErr.Error())
	default:
		log.Printf("[%s] unexpected error: %v", route, err)
		respondError(c, http.StatusInternalServerError, route, fallback)
	}
}
