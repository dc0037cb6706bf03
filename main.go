package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"garmentgrid/internal/bookings"
	"garmentgrid/internal/config"
	"garmentgrid/internal/database"
	"garmentgrid/internal/handlers"
	"garmentgrid/internal/middleware"
	"garmentgrid/internal/payments"
	"garmentgrid/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureBookingIndexes(db); err != nil {
		log.Printf("booking index warning: %v", err)
	}

	bookingStore := store.NewBookings(db)
	productStore := store.NewProducts(db)
	userStore := store.NewUsers(db)

	gateway := payments.NewStripeGateway(config.AppEnv.StripeSecretKey)
	lifecycle := bookings.NewService(bookingStore, productStore, gateway)

	r := gin.Default()
	r.Use(middleware.CORS(config.AppEnv.AllowedOrigins))

	r.GET("/", handlers.Home())

	r.POST("/users", handlers.SaveUser(userStore))
	r.GET("/users/:email", handlers.GetUser(userStore))
	r.PATCH("/users/:email", handlers.UpdateUser(userStore))
	r.GET("/users/:email/stats", handlers.GetUserStats(lifecycle))

	r.POST("/products", handlers.CreateProduct(productStore))
	r.GET("/products", handlers.GetProducts(productStore))
	r.GET("/products/:id", handlers.GetProduct(productStore))

	r.POST("/bookings", handlers.CreateBooking(lifecycle))
	r.GET("/bookings/:id", handlers.GetBooking(lifecycle))
	r.GET("/bookings/user/:email", handlers.GetUserBookings(lifecycle))

	r.POST("/create-payment-intent", handlers.CreatePaymentIntent(gateway))
	r.POST("/payment-confirmation", handlers.ConfirmPayment(lifecycle))

	admin := r.Group("/bookings")
	admin.Use(middleware.AdminAuth(config.AppEnv.AdminJWTSecret))
	{
		admin.PATCH("/:id/status", handlers.UpdateBookingStatus(lifecycle))
		admin.POST("/:id/tracking", handlers.AddBookingTracking(lifecycle))
		admin.DELETE("/:id", handlers.CancelBooking(lifecycle))
	}

	r.Run(":" + config.AppEnv.Port)
}
