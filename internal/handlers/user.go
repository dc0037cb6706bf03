package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"garmentgrid/internal/bookings"
	"garmentgrid/internal/store"
)

// SaveUser upserts a profile by email: an existing document is patched in
// place, a new one is inserted with fresh timestamps.
func SaveUser(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users"
		defer handlePanic(c, route)

		var doc bson.M
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		email, _ := doc["email"].(string)
		if email == "" {
			respondError(c, http.StatusBadRequest, route, "Email is required")
			return
		}

		existing, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			log.Printf("[%s] lookup failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to save user")
			return
		}

		if existing != nil {
			if _, err := users.UpdateByEmail(c.Request.Context(), email, doc); err != nil {
				log.Printf("[%s] update failed: %v", route, err)
				respondError(c, http.StatusInternalServerError, route, "Failed to save user")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "User updated successfully",
			})
			return
		}

		id, err := users.Insert(c.Request.Context(), doc)
		if err != nil {
			log.Printf("[%s] insert failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to save user")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "User created successfully",
			"insertedId": id.Hex(),
		})
	}
}

func GetUser(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/:email"
		defer handlePanic(c, route)

		user, err := users.FindByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			log.Printf("[%s] lookup failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch user")
			return
		}
		if user == nil {
			respondError(c, http.StatusNotFound, route, "User not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    user,
		})
	}
}

func UpdateUser(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /users/:email"
		defer handlePanic(c, route)

		var doc bson.M
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		matched, err := users.UpdateByEmail(c.Request.Context(), c.Param("email"), doc)
		if err != nil {
			log.Printf("[%s] update failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to update user")
			return
		}
		if !matched {
			respondError(c, http.StatusNotFound, route, "User not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User updated successfully",
		})
	}
}

func GetUserStats(svc *bookings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/:email/stats"
		defer handlePanic(c, route)

		stats, err := svc.UserStats(c.Request.Context(), c.Param("email"))
		if err != nil {
			respondServiceError(c, route, err, "Failed to fetch user stats")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    stats,
		})
	}
}
