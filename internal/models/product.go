package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inventory is the nested stock sub-record of a product.
type Inventory struct {
	Available int `bson:"available" json:"available"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	PricePerPiece float64            `bson:"pricePerPiece,omitempty" json:"pricePerPiece,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Inventory     Inventory          `bson:"inventory" json:"inventory"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
