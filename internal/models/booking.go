package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackingEvent is a single fulfillment note in a booking's history.
// The tracking array is append-only; insertion order is chronological.
type TrackingEvent struct {
	Stage    string    `bson:"stage" json:"stage"`
	Location string    `bson:"location" json:"location"`
	Note     string    `bson:"note,omitempty" json:"note,omitempty"`
	Date     time.Time `bson:"date" json:"date"`
}

// Booking defines the persisted order document.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName" json:"productName"`
	PricePerPiece   float64            `bson:"pricePerPiece" json:"pricePerPiece"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	Email           string             `bson:"email" json:"email"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	ContactNumber   string             `bson:"contactNumber" json:"contactNumber"`
	DeliveryAddress string             `bson:"deliveryAddress" json:"deliveryAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	Status          BookingStatus      `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
	Tracking        []TrackingEvent    `bson:"tracking" json:"tracking"`
}
